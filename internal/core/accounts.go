package core

import (
	"context"
	"errors"
	"favourites/internal/repository"
	tokenIssuer "favourites/pkg/jwt"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	// FavouritesLimit is the maximum number of items a user can keep.
	FavouritesLimit = 50
	TokenTTL        = time.Hour
	bcryptCost      = 10
)

// AccountStore owns user accounts and their favourites lists.
type AccountStore struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
}

// NewAccountStore is a constructor function for the AccountStore type.
func NewAccountStore(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer) *AccountStore {
	return &AccountStore{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
	}
}

// Register creates a new user with an empty favourites list and returns a confirmation message.
func (a *AccountStore) Register(ctx context.Context, msg RegisterMessage) (string, error) {
	if msg.Password != msg.Password2 {
		return "", newError(ErrValidation, "Passwords do not match")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcryptCost)
	if err != nil {
		return "", newError(ErrPersistence, fmt.Sprintf("There was an error creating the user: %s", err))
	}

	user, err := a.repo.CreateUser(ctx, msg.UserName, string(hash))
	if err != nil {
		if errors.Is(err, repository.ErrUserNameTaken) {
			return "", newError(ErrConflict, "User Name already taken")
		}
		a.logs.Errorw("creating user", "userName", msg.UserName, "error", err)
		return "", newError(ErrPersistence, fmt.Sprintf("There was an error creating the user: %s", err))
	}

	a.logs.Infow("user registered", "userId", user.ID, "userName", user.UserName)
	return fmt.Sprintf("User %s successfully registered", msg.UserName), nil
}

// Authenticate checks the credentials and returns the matching user.
func (a *AccountStore) Authenticate(ctx context.Context, msg CredentialsMessage) (repository.User, error) {
	user, err := a.repo.GetUserByName(ctx, msg.UserName)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			a.logs.Errorw("looking up user", "userName", msg.UserName, "error", err)
		}
		return repository.User{}, newError(ErrNotFound, fmt.Sprintf("Unable to find user %s", msg.UserName))
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return repository.User{}, newError(ErrInvalidCredentials, fmt.Sprintf("Incorrect password for user %s", msg.UserName))
	}

	return user, nil
}

// Login authenticates the user and issues a signed token carrying its id and name.
func (a *AccountStore) Login(ctx context.Context, msg CredentialsMessage) (string, error) {
	user, err := a.Authenticate(ctx, msg)
	if err != nil {
		return "", err
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserID:     user.ID,
		UserName:   user.UserName,
		Expiration: TokenTTL,
	}
	token := a.jwtIssuer.Generate(tokenInfo)
	signed, err := a.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	a.logs.Infow("user logged in", "userId", user.ID)
	return signed, nil
}

func (a *AccountStore) GetFavourites(ctx context.Context, userID string) ([]string, error) {
	user, err := a.repo.GetUserByID(ctx, userID)
	if err != nil {
		msg := fmt.Sprintf("Unable to get favourites for user with id: %s", userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, newError(ErrNotFound, msg)
		}
		a.logs.Errorw("getting favourites", "userId", userID, "error", err)
		return nil, newError(ErrPersistence, msg)
	}

	return user.Favourites, nil
}

// AddFavourite adds itemID to the user's list unless it is already there.
// A list holding FavouritesLimit items rejects any add.
func (a *AccountStore) AddFavourite(ctx context.Context, userID, itemID string) ([]string, error) {
	favourites, err := a.repo.AddFavourite(ctx, userID, itemID, FavouritesLimit)
	if err != nil {
		return nil, a.updateError(userID, err)
	}

	return favourites, nil
}

// RemoveFavourite removes itemID from the user's list. Removing an absent item is not an error.
func (a *AccountStore) RemoveFavourite(ctx context.Context, userID, itemID string) ([]string, error) {
	favourites, err := a.repo.RemoveFavourite(ctx, userID, itemID)
	if err != nil {
		return nil, a.updateError(userID, err)
	}

	return favourites, nil
}

func (a *AccountStore) updateError(userID string, err error) error {
	msg := fmt.Sprintf("Unable to update favourites for user with id: %s", userID)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return newError(ErrNotFound, msg)
	case errors.Is(err, repository.ErrFavouritesFull):
		return newError(ErrCapacity, msg)
	default:
		a.logs.Errorw("updating favourites", "userId", userID, "error", err)
		return newError(ErrPersistence, msg)
	}
}
