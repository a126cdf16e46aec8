package middleware

import (
	"context"
	tokenIssuer "favourites/pkg/jwt"
	"net/http"

	"go.uber.org/zap"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Validate(token string) (*tokenIssuer.Claims, error)
}

const identityKey contextKey = "identity"

// Identity is the authenticated caller taken from a verified token.
type Identity struct {
	UserID   string
	UserName string
}

type Auth struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
	scheme    string
}

func NewAuth(logger *zap.SugaredLogger, validator TokenValidator) *Auth {
	return &Auth{
		logs:      logger,
		validator: validator,
		scheme:    tokenIssuer.DefaultScheme,
	}
}

// Authenticate rejects requests without a valid "JWT <token>" authorization
// header with 401. Accepted requests carry the caller's Identity in their context.
func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := GetRequestID(r.Context())

		token, err := tokenIssuer.ExtractToken(r.Header.Get("Authorization"), a.scheme)
		if err != nil {
			a.logs.Infow("request rejected", "error", err, "request_id", requestId)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		claims, err := a.validator.Validate(token)
		if err != nil {
			a.logs.Infow("request rejected", "error", err, "request_id", requestId)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := WithIdentity(r.Context(), Identity{
			UserID:   claims.ID,
			UserName: claims.UserName,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the caller placed in ctx by Authenticate.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}
