package repository_test

import (
	"context"
	"errors"
	"favourites/internal/db"
	"favourites/internal/repository"
	"favourites/internal/repository/fake"
	"fmt"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UserRepository", func() {
	var (
		repo        *repository.UserRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
		stored      repository.User
	)

	// loads stored into the entity and runs mutate the way the database does
	updateStub := func(ctx context.Context, column string, value any, entity any, mutate func() (bool, error)) error {
		user := entity.(*repository.User)
		*user = stored
		user.Favourites = append([]string(nil), stored.Favourites...)
		changed, err := mutate()
		if err != nil {
			return err
		}
		if changed {
			stored = *user
		}
		return nil
	}

	BeforeEach(func() {
		ctx = context.Background()
		fakeStorage = new(fake.Storage)
		repo = repository.NewUserRepository(fakeStorage)
		fakeErr = errors.New("fake error")
		stored = repository.User{
			ID:           uuid.NewString(),
			UserName:     "alice",
			PasswordHash: "hash",
			Favourites:   []string{"movie1"},
		}
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.CreateUser(ctx, "alice", "hash")
		})

		When("create succeeds", func() {
			It("should persist a user with an id and no favourites", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(uuid.Validate(user.ID)).To(Succeed())
				Expect(user.UserName).To(Equal("alice"))
				Expect(user.PasswordHash).To(Equal("hash"))
				Expect(user.Favourites).To(BeEmpty())
				Expect(user.Favourites).NotTo(BeNil())

				Expect(fakeStorage.CreateCallCount()).To(Equal(1))
				_, record := fakeStorage.CreateArgsForCall(0)
				Expect(record).To(BeAssignableToTypeOf(&repository.User{}))
			})
		})

		When("user name is already taken", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(fmt.Errorf("insert to table: %w", db.ErrDuplicateKey))
			})

			It("should return user name taken error", func() {
				Expect(err).To(MatchError(repository.ErrUserNameTaken))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(repository.ErrUserNameTaken))
			})
		})
	})

	Describe("GetUserByName", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserByName(ctx, "alice")
		})

		When("user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					user := dest.(*repository.User)
					*user = stored
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(stored))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("user_name"))
				Expect(val).To(Equal("alice"))
			})
		})

		When("user doesn't exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserByID", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserByID(ctx, stored.ID)
		})

		When("user has no favourites column value", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					user := dest.(*repository.User)
					*user = stored
					user.Favourites = nil
					return nil
				}
			})

			It("should return an empty list", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Favourites).To(Equal([]string{}))

				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal(stored.ID))
			})
		})

		When("user doesn't exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("AddFavourite", func() {
		var (
			itemID     string
			limit      int
			favourites []string
			err        error
		)

		BeforeEach(func() {
			itemID = "movie42"
			limit = 50
			fakeStorage.UpdateOneByStub = updateStub
		})

		JustBeforeEach(func() {
			favourites, err = repo.AddFavourite(ctx, stored.ID, itemID, limit)
		})

		When("item is new", func() {
			It("should append it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(favourites).To(Equal([]string{"movie1", "movie42"}))
				Expect(stored.Favourites).To(Equal([]string{"movie1", "movie42"}))

				_, col, val, entity, _ := fakeStorage.UpdateOneByArgsForCall(0)
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal(stored.ID))
				Expect(entity).To(BeAssignableToTypeOf(&repository.User{}))
			})
		})

		When("item is already present", func() {
			BeforeEach(func() {
				itemID = "movie1"
			})

			It("should keep a single copy", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(favourites).To(Equal([]string{"movie1"}))
			})
		})

		When("the list is full", func() {
			BeforeEach(func() {
				limit = 1
			})

			It("should return favourites full error without changing the list", func() {
				Expect(err).To(MatchError(repository.ErrFavouritesFull))
				Expect(favourites).To(BeNil())
				Expect(stored.Favourites).To(Equal([]string{"movie1"}))
			})
		})

		When("the list is full and the item is already present", func() {
			BeforeEach(func() {
				limit = 1
				itemID = "movie1"
			})

			It("should still report the list as full", func() {
				Expect(err).To(MatchError(repository.ErrFavouritesFull))
			})
		})

		When("user doesn't exist", func() {
			BeforeEach(func() {
				fakeStorage.UpdateOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.UpdateOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).To(MatchError(ContainSubstring("update favourites")))
			})
		})
	})

	Describe("RemoveFavourite", func() {
		var (
			itemID     string
			favourites []string
			err        error
		)

		BeforeEach(func() {
			itemID = "movie1"
			fakeStorage.UpdateOneByStub = updateStub
		})

		JustBeforeEach(func() {
			favourites, err = repo.RemoveFavourite(ctx, stored.ID, itemID)
		})

		When("item is present", func() {
			It("should remove it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(favourites).To(Equal([]string{}))
				Expect(stored.Favourites).To(BeEmpty())
			})
		})

		When("item is absent", func() {
			BeforeEach(func() {
				itemID = "movie99"
			})

			It("should return the unchanged list", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(favourites).To(Equal([]string{"movie1"}))
			})
		})

		When("user doesn't exist", func() {
			BeforeEach(func() {
				fakeStorage.UpdateOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})
})
