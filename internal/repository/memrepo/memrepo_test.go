package memrepo_test

import (
	"context"
	"errors"
	"favourites/internal/db"
	"favourites/internal/repository"
	"favourites/internal/repository/memrepo"
	"fmt"
	"sync"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MemoryDB", func() {
	var (
		store *memrepo.MemoryDB
		repo  *repository.UserRepository
		ctx   context.Context
		alice repository.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = memrepo.New()
		repo = repository.NewUserRepository(store)

		var err error
		alice, err = repo.CreateUser(ctx, "alice", "hash")
		Expect(err).NotTo(HaveOccurred())
	})

	It("should connect without error", func() {
		Expect(store.Connect(ctx)).To(Succeed())
	})

	Describe("Create", func() {
		It("should reject a taken user name", func() {
			_, err := repo.CreateUser(ctx, "alice", "other")
			Expect(err).To(MatchError(repository.ErrUserNameTaken))
		})

		It("should set timestamps", func() {
			Expect(alice.CreatedAt).NotTo(BeZero())
			Expect(alice.UpdatedAt).To(Equal(alice.CreatedAt))
		})

		It("should reject unknown entities", func() {
			Expect(store.Create(ctx, &struct{}{})).To(MatchError(ContainSubstring("unsupported entity type")))
		})
	})

	Describe("GetOneBy", func() {
		It("should find users by name and id", func() {
			byName, err := repo.GetUserByName(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(byName.ID).To(Equal(alice.ID))

			byID, err := repo.GetUserByID(ctx, alice.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(byID.UserName).To(Equal("alice"))
			Expect(byID.Favourites).To(Equal([]string{}))
		})

		It("should return not found for unknown users", func() {
			var user repository.User
			Expect(store.GetOneBy(ctx, "user_name", "bob", &user)).To(MatchError(db.ErrNotFound))

			_, err := repo.GetUserByID(ctx, "missing")
			Expect(err).To(MatchError(repository.ErrUserNotFound))
		})

		It("should reject unknown columns", func() {
			var user repository.User
			Expect(store.GetOneBy(ctx, "email", "x", &user)).To(MatchError(ContainSubstring("unsupported column")))
		})

		It("should hand out copies", func() {
			_, err := repo.AddFavourite(ctx, alice.ID, "movie1", 50)
			Expect(err).NotTo(HaveOccurred())

			user, err := repo.GetUserByID(ctx, alice.ID)
			Expect(err).NotTo(HaveOccurred())
			user.Favourites[0] = "changed"

			again, err := repo.GetUserByID(ctx, alice.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(again.Favourites).To(Equal([]string{"movie1"}))
		})
	})

	Describe("favourites", func() {
		It("should add, dedupe and remove items in order", func() {
			favourites, err := repo.AddFavourite(ctx, alice.ID, "movie1", 50)
			Expect(err).NotTo(HaveOccurred())
			Expect(favourites).To(Equal([]string{"movie1"}))

			favourites, err = repo.AddFavourite(ctx, alice.ID, "movie2", 50)
			Expect(err).NotTo(HaveOccurred())
			Expect(favourites).To(Equal([]string{"movie1", "movie2"}))

			favourites, err = repo.AddFavourite(ctx, alice.ID, "movie1", 50)
			Expect(err).NotTo(HaveOccurred())
			Expect(favourites).To(Equal([]string{"movie1", "movie2"}))

			favourites, err = repo.RemoveFavourite(ctx, alice.ID, "movie1")
			Expect(err).NotTo(HaveOccurred())
			Expect(favourites).To(Equal([]string{"movie2"}))

			favourites, err = repo.RemoveFavourite(ctx, alice.ID, "movie1")
			Expect(err).NotTo(HaveOccurred())
			Expect(favourites).To(Equal([]string{"movie2"}))
		})

		It("should reject adds on a full list without changing it", func() {
			for i := 0; i < 50; i++ {
				_, err := repo.AddFavourite(ctx, alice.ID, fmt.Sprintf("item%d", i), 50)
				Expect(err).NotTo(HaveOccurred())
			}

			_, err := repo.AddFavourite(ctx, alice.ID, "item50", 50)
			Expect(err).To(MatchError(repository.ErrFavouritesFull))

			_, err = repo.AddFavourite(ctx, alice.ID, "item0", 50)
			Expect(err).To(MatchError(repository.ErrFavouritesFull))

			user, err := repo.GetUserByID(ctx, alice.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Favourites).To(HaveLen(50))
			Expect(user.Favourites).NotTo(ContainElement("item50"))
		})

		It("should never exceed the limit under concurrent adds", func() {
			var (
				wg        sync.WaitGroup
				succeeded atomic.Int32
				rejected  atomic.Int32
			)
			for i := 0; i < 80; i++ {
				i := i
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, err := repo.AddFavourite(ctx, alice.ID, fmt.Sprintf("item%d", i), 50)
					if err == nil {
						succeeded.Add(1)
					} else if errors.Is(err, repository.ErrFavouritesFull) {
						rejected.Add(1)
					}
				}()
			}
			wg.Wait()

			Expect(succeeded.Load()).To(Equal(int32(50)))
			Expect(rejected.Load()).To(Equal(int32(30)))

			user, err := repo.GetUserByID(ctx, alice.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Favourites).To(HaveLen(50))
		})

		It("should return not found for unknown users", func() {
			_, err := repo.AddFavourite(ctx, "missing", "movie1", 50)
			Expect(err).To(MatchError(repository.ErrUserNotFound))

			_, err = repo.RemoveFavourite(ctx, "missing", "movie1")
			Expect(err).To(MatchError(repository.ErrUserNotFound))
		})
	})
})
