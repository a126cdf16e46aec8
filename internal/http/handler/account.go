package handler

import (
	"encoding/json"
	"errors"
	"favourites/internal/core"
	"favourites/internal/http/handler/middleware"
	"favourites/internal/http/payload"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	RegisterPath   = "/api/user/register"
	LoginPath      = "/api/user/login"
	FavouritesPath = "/api/user/favourites"
	FavouritePath  = "/api/user/favourites/{id}"

	itemIDParam = "id"
)

type AccountHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	accounts         AccountService
}

func NewAccountHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, accountService AccountService) *AccountHandler {
	return &AccountHandler{
		logs:             logger,
		requestValidator: requestValidator,
		accounts:         accountService,
	}
}

func (h *AccountHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	var req payload.RegisterRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusUnprocessableEntity, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", RegisterPath,
			"request_id", requestId)
		return
	}

	msg, err := h.accounts.Register(r.Context(), req.ToMessage())
	if err != nil {
		h.respondError(w, err, false, RegisterPath, requestId)
		return
	}

	h.respond(w, Response{Message: msg}, http.StatusOK, requestId)
}

func (h *AccountHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	var req payload.LoginRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusUnprocessableEntity, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", LoginPath,
			"request_id", requestId)
		return
	}

	token, err := h.accounts.Login(r.Context(), req.ToMessage())
	if err != nil {
		h.respondError(w, err, false, LoginPath, requestId)
		return
	}

	h.respond(w, LoginResponse{
		Message: "login successful",
		Token:   token,
	}, http.StatusOK, requestId)
}

func (h *AccountHandler) HandleGetFavourites(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	identity, ok := h.identity(w, r, requestId)
	if !ok {
		return
	}

	favourites, err := h.accounts.GetFavourites(r.Context(), identity.UserID)
	if err != nil {
		h.respondError(w, err, true, FavouritesPath, requestId)
		return
	}

	h.respond(w, favourites, http.StatusOK, requestId)
}

func (h *AccountHandler) HandleAddFavourite(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	identity, ok := h.identity(w, r, requestId)
	if !ok {
		return
	}

	itemID := chi.URLParam(r, itemIDParam)
	favourites, err := h.accounts.AddFavourite(r.Context(), identity.UserID, itemID)
	if err != nil {
		h.respondError(w, err, true, FavouritePath, requestId)
		return
	}

	h.logs.Infow("favourite added",
		"userId", identity.UserID,
		"itemId", itemID,
		"request_id", requestId)
	h.respond(w, favourites, http.StatusOK, requestId)
}

func (h *AccountHandler) HandleRemoveFavourite(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	identity, ok := h.identity(w, r, requestId)
	if !ok {
		return
	}

	itemID := chi.URLParam(r, itemIDParam)
	favourites, err := h.accounts.RemoveFavourite(r.Context(), identity.UserID, itemID)
	if err != nil {
		h.respondError(w, err, true, FavouritePath, requestId)
		return
	}

	h.logs.Infow("favourite removed",
		"userId", identity.UserID,
		"itemId", itemID,
		"request_id", requestId)
	h.respond(w, favourites, http.StatusOK, requestId)
}

func (h *AccountHandler) identity(w http.ResponseWriter, r *http.Request, requestId string) (middleware.Identity, bool) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok || identity.UserID == "" {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		h.logs.Errorw("request reached a protected handler without identity", "request_id", requestId)
		return middleware.Identity{}, false
	}
	return identity, true
}

// respondError writes domain failures as 422 with their message and anything
// else as 500. Favourites routes carry the text under "error", account routes
// under "message".
func (h *AccountHandler) respondError(w http.ResponseWriter, err error, asError bool, handler, requestId string) {
	code := http.StatusUnprocessableEntity
	text := oopsErr

	var domainErr *core.Error
	if errors.As(err, &domainErr) {
		text = domainErr.Message
	} else {
		code = http.StatusInternalServerError
	}

	resp := Response{Message: text}
	if asError {
		resp = Response{Error: text}
	}

	h.respond(w, resp, code, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

func (h *AccountHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
