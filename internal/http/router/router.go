package router

import (
	"favourites/internal/http/handler"
	"favourites/internal/http/handler/middleware"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const HealthPath = "/health"

// New wires the account routes behind the shared middleware chain. Favourites
// routes additionally require a valid token.
func New(logger *zap.SugaredLogger, accounts *handler.AccountHandler, auth *middleware.Auth) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)
	r.Use(chimiddleware.Recoverer)

	r.Post(handler.RegisterPath, accounts.HandleRegister)
	r.Post(handler.LoginPath, accounts.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(auth.Authenticate)
		r.Get(handler.FavouritesPath, accounts.HandleGetFavourites)
		r.Put(handler.FavouritePath, accounts.HandleAddFavourite)
		r.Delete(handler.FavouritePath, accounts.HandleRemoveFavourite)
	})

	r.Get(HealthPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Errorw("failed to write health check response", "error", err)
		}
	})

	return r
}
