package core_test

import (
	"context"
	"favourites/internal/core"
	"favourites/internal/repository"
	"favourites/internal/repository/memrepo"
	tokenIssuer "favourites/pkg/jwt"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("AccountStore over the memory store", func() {
	var (
		store      *core.AccountStore
		jwtService *tokenIssuer.JWTService
		ctx        context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		jwtService = tokenIssuer.NewJWTService([]byte("test-secret"))
		repo := repository.NewUserRepository(memrepo.New())
		store = core.NewAccountStore(zap.NewNop().Sugar(), repo, jwtService)

		_, err := store.Register(ctx, core.RegisterMessage{UserName: "alice", Password: "p1", Password2: "p1"})
		Expect(err).NotTo(HaveOccurred())
	})

	It("should authenticate a fresh user with an empty list", func() {
		user, err := store.Authenticate(ctx, core.CredentialsMessage{UserName: "alice", Password: "p1"})
		Expect(err).NotTo(HaveOccurred())
		Expect(user.UserName).To(Equal("alice"))
		Expect(user.Favourites).To(Equal([]string{}))
	})

	It("should issue a token that verifies to the same identity", func() {
		user, err := store.Authenticate(ctx, core.CredentialsMessage{UserName: "alice", Password: "p1"})
		Expect(err).NotTo(HaveOccurred())

		token, err := store.Login(ctx, core.CredentialsMessage{UserName: "alice", Password: "p1"})
		Expect(err).NotTo(HaveOccurred())

		claims, err := jwtService.Validate(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims.ID).To(Equal(user.ID))
		Expect(claims.UserName).To(Equal("alice"))
		Expect(claims.ExpiresAt - claims.IssuedAt).To(Equal(int64(3600)))
	})

	It("should reject the second registration of a name", func() {
		_, err := store.Register(ctx, core.RegisterMessage{UserName: "alice", Password: "p2", Password2: "p2"})
		Expect(err).To(MatchError(core.ErrConflict))
	})

	It("should enforce the favourites rules", func() {
		user, err := store.Authenticate(ctx, core.CredentialsMessage{UserName: "alice", Password: "p1"})
		Expect(err).NotTo(HaveOccurred())

		for i := 0; i < core.FavouritesLimit; i++ {
			_, err := store.AddFavourite(ctx, user.ID, fmt.Sprintf("item%d", i))
			Expect(err).NotTo(HaveOccurred())
		}

		_, err = store.AddFavourite(ctx, user.ID, "item50")
		Expect(err).To(MatchError(core.ErrCapacity))

		favourites, err := store.RemoveFavourite(ctx, user.ID, "absent")
		Expect(err).NotTo(HaveOccurred())
		Expect(favourites).To(HaveLen(core.FavouritesLimit))

		_, err = store.GetFavourites(ctx, "missing")
		Expect(err).To(MatchError(core.ErrNotFound))
		_, err = store.AddFavourite(ctx, "missing", "item1")
		Expect(err).To(MatchError(core.ErrNotFound))
		_, err = store.RemoveFavourite(ctx, "missing", "item1")
		Expect(err).To(MatchError(core.ErrNotFound))
	})
})
