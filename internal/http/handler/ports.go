package handler

import (
	"context"
	"favourites/internal/core"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AccountService . AccountService
type AccountService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (string, error)
	Login(ctx context.Context, msg core.CredentialsMessage) (string, error)
	GetFavourites(ctx context.Context, userID string) ([]string, error)
	AddFavourite(ctx context.Context, userID, itemID string) ([]string, error)
	RemoveFavourite(ctx context.Context, userID, itemID string) ([]string, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
