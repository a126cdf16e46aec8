package core

import (
	"context"
	"favourites/internal/repository"
	tokenIssuer "favourites/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, userName, passwordHash string) (repository.User, error)
	GetUserByName(ctx context.Context, userName string) (repository.User, error)
	GetUserByID(ctx context.Context, userID string) (repository.User, error)
	AddFavourite(ctx context.Context, userID, itemID string, limit int) ([]string, error)
	RemoveFavourite(ctx context.Context, userID, itemID string) ([]string, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
}
