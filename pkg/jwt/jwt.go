package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

// DefaultScheme is the authorization scheme clients put in front of the token.
const DefaultScheme = "JWT"

var TimeNow = time.Now
var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")
var ErrMissingToken error = errors.New("no auth token")

type TokenInfo struct {
	UserID     string
	UserName   string
	Expiration time.Duration
}

// Claims is the token payload. Only the user identity is carried besides the timestamps.
type Claims struct {
	ID       string `json:"_id"`
	UserName string `json:"userName"`
	jwt.StandardClaims
}

type JWTService struct {
	secret []byte
}

func NewJWTService(jwtSecret []byte) *JWTService {
	return &JWTService{
		secret: jwtSecret,
	}
}

func (gen *JWTService) Generate(data TokenInfo) *jwt.Token {
	now := TimeNow()
	claims := Claims{
		ID:       data.UserID,
		UserName: data.UserName,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(data.Expiration).Unix(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
}

func (gen *JWTService) Sign(token *jwt.Token) (string, error) {
	tokenStr, err := token.SignedString(gen.secret)
	if err != nil {
		return "", fmt.Errorf("get signing string: %w", err)
	}
	return tokenStr, nil
}

func (gen *JWTService) Validate(token string) (*Claims, error) {
	claims := &Claims{}
	jwtToken, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return gen.secret, nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, fmt.Errorf("jwt parse: %w", ErrTokenExpired)
		}
		return nil, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	if !jwtToken.Valid {
		return nil, ErrTokenNotValid
	}

	if claims.ID == "" {
		return nil, fmt.Errorf("missing _id claim: %w", ErrTokenNotValid)
	}

	return claims, nil
}

// ExtractToken returns the token from an Authorization header value of the form "<scheme> <token>".
// The scheme is matched case-insensitively.
func ExtractToken(header, scheme string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], scheme) {
		return "", ErrMissingToken
	}
	return parts[1], nil
}
