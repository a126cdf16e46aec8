package repository

import (
	"context"
	"errors"
	"favourites/internal/db"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUserNameTaken error = errors.New("user name already taken")
var ErrFavouritesFull error = errors.New("favourites list is full")

type UserRepository struct {
	db Storage
}

func NewUserRepository(db Storage) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, userName, passwordHash string) (User, error) {
	user := User{
		ID:           uuid.NewString(),
		UserName:     userName,
		PasswordHash: passwordHash,
		Favourites:   []string{},
	}

	err := r.db.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return User{}, ErrUserNameTaken
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetUserByName(ctx context.Context, userName string) (User, error) {
	return r.getUserBy(ctx, "user_name", userName)
}

func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (User, error) {
	return r.getUserBy(ctx, "id", userID)
}

// AddFavourite appends itemID unless it is already present. The capacity check
// comes first, so a full list rejects even an item it already holds.
func (r *UserRepository) AddFavourite(ctx context.Context, userID, itemID string, limit int) ([]string, error) {
	var user User
	err := r.db.UpdateOneBy(ctx, "id", userID, &user, func() (bool, error) {
		if len(user.Favourites) >= limit {
			return false, ErrFavouritesFull
		}
		if slices.Contains(user.Favourites, itemID) {
			return false, nil
		}
		user.Favourites = append(user.Favourites, itemID)
		return true, nil
	})
	if err != nil {
		return nil, r.mapUpdateError(err)
	}

	return normalize(user.Favourites), nil
}

func (r *UserRepository) RemoveFavourite(ctx context.Context, userID, itemID string) ([]string, error) {
	var user User
	err := r.db.UpdateOneBy(ctx, "id", userID, &user, func() (bool, error) {
		idx := slices.Index(user.Favourites, itemID)
		if idx < 0 {
			return false, nil
		}
		user.Favourites = slices.Delete(user.Favourites, idx, idx+1)
		return true, nil
	})
	if err != nil {
		return nil, r.mapUpdateError(err)
	}

	return normalize(user.Favourites), nil
}

func (r *UserRepository) getUserBy(ctx context.Context, column, value string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, column, value, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by %s: %w", column, err)
	}

	user.Favourites = normalize(user.Favourites)
	return user, nil
}

func (r *UserRepository) mapUpdateError(err error) error {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, ErrFavouritesFull):
		return ErrFavouritesFull
	default:
		return fmt.Errorf("update favourites: %w", err)
	}
}

func normalize(favourites []string) []string {
	if favourites == nil {
		return []string{}
	}
	return favourites
}
