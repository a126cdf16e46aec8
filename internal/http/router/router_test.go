package router_test

import (
	"encoding/json"
	"favourites/internal/core"
	"favourites/internal/http/handler"
	"favourites/internal/http/handler/middleware"
	"favourites/internal/http/payload"
	"favourites/internal/http/router"
	"favourites/internal/repository"
	"favourites/internal/repository/memrepo"
	tokenIssuer "favourites/pkg/jwt"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Router", func() {
	var (
		server     *httptest.Server
		jwtService *tokenIssuer.JWTService
	)

	BeforeEach(func() {
		logger := zap.NewNop().Sugar()
		jwtService = tokenIssuer.NewJWTService([]byte("test-secret"))

		repo := repository.NewUserRepository(memrepo.New())
		accounts := core.NewAccountStore(logger, repo, jwtService)
		accountHandler := handler.NewAccountHandler(logger, payload.DecodeValidator{}, accounts)
		auth := middleware.NewAuth(logger, jwtService)

		server = httptest.NewServer(router.New(logger, accountHandler, auth))
		DeferCleanup(server.Close)
	})

	do := func(method, path, token, body string) (int, string) {
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		req, err := http.NewRequest(method, server.URL+path, reader)
		Expect(err).NotTo(HaveOccurred())
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		if token != "" {
			req.Header.Set("Authorization", "JWT "+token)
		}

		resp, err := http.DefaultClient.Do(req)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		return resp.StatusCode, string(raw)
	}

	register := func(userName string) {
		code, body := do(http.MethodPost, handler.RegisterPath, "",
			fmt.Sprintf(`{"userName":%q,"password":"secret1","password2":"secret1"}`, userName))
		Expect(code).To(Equal(http.StatusOK), body)
	}

	login := func(userName string) string {
		code, body := do(http.MethodPost, handler.LoginPath, "",
			fmt.Sprintf(`{"userName":%q,"password":"secret1"}`, userName))
		Expect(code).To(Equal(http.StatusOK), body)

		var resp map[string]string
		Expect(json.Unmarshal([]byte(body), &resp)).To(Succeed())
		Expect(resp["message"]).To(Equal("login successful"))
		return resp["token"]
	}

	It("should run the whole favourites flow", func() {
		code, body := do(http.MethodPost, handler.RegisterPath, "",
			`{"userName":"alice","password":"secret1","password2":"secret1"}`)
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"message":"User alice successfully registered"}`))

		token := login("alice")
		claims, err := jwtService.Validate(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims.UserName).To(Equal("alice"))
		Expect(claims.ID).NotTo(BeEmpty())

		code, body = do(http.MethodGet, handler.FavouritesPath, token, "")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`[]`))

		code, body = do(http.MethodPut, "/api/user/favourites/movie42", token, "")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`["movie42"]`))

		code, body = do(http.MethodPut, "/api/user/favourites/movie42", token, "")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`["movie42"]`))

		code, body = do(http.MethodDelete, "/api/user/favourites/movie42", token, "")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`[]`))
	})

	It("should keep lists separate per user", func() {
		register("alice")
		register("bob")
		aliceToken := login("alice")
		bobToken := login("bob")

		code, _ := do(http.MethodPut, "/api/user/favourites/movie1", aliceToken, "")
		Expect(code).To(Equal(http.StatusOK))

		_, body := do(http.MethodGet, handler.FavouritesPath, bobToken, "")
		Expect(body).To(MatchJSON(`[]`))
	})

	It("should reject a second registration of the same name", func() {
		register("alice")

		code, body := do(http.MethodPost, handler.RegisterPath, "",
			`{"userName":"alice","password":"other","password2":"other"}`)
		Expect(code).To(Equal(http.StatusUnprocessableEntity))
		Expect(body).To(MatchJSON(`{"message":"User Name already taken"}`))
	})

	It("should reject mismatched passwords", func() {
		code, body := do(http.MethodPost, handler.RegisterPath, "",
			`{"userName":"alice","password":"a","password2":"b"}`)
		Expect(code).To(Equal(http.StatusUnprocessableEntity))
		Expect(body).To(MatchJSON(`{"message":"Passwords do not match"}`))
	})

	It("should reject bad credentials", func() {
		register("alice")

		code, body := do(http.MethodPost, handler.LoginPath, "", `{"userName":"alice","password":"wrong"}`)
		Expect(code).To(Equal(http.StatusUnprocessableEntity))
		Expect(body).To(MatchJSON(`{"message":"Incorrect password for user alice"}`))

		code, body = do(http.MethodPost, handler.LoginPath, "", `{"userName":"nobody","password":"secret1"}`)
		Expect(code).To(Equal(http.StatusUnprocessableEntity))
		Expect(body).To(MatchJSON(`{"message":"Unable to find user nobody"}`))
	})

	It("should cap the list at fifty items", func() {
		register("alice")
		token := login("alice")

		for i := 0; i < core.FavouritesLimit; i++ {
			code, _ := do(http.MethodPut, fmt.Sprintf("/api/user/favourites/item%d", i), token, "")
			Expect(code).To(Equal(http.StatusOK))
		}

		code, body := do(http.MethodPut, "/api/user/favourites/item50", token, "")
		Expect(code).To(Equal(http.StatusUnprocessableEntity))
		Expect(body).To(ContainSubstring(`"error":"Unable to update favourites for user with id: `))

		_, body = do(http.MethodGet, handler.FavouritesPath, token, "")
		var list []string
		Expect(json.Unmarshal([]byte(body), &list)).To(Succeed())
		Expect(list).To(HaveLen(core.FavouritesLimit))
	})

	It("should require a token on favourites routes", func() {
		code, body := do(http.MethodGet, handler.FavouritesPath, "", "")
		Expect(code).To(Equal(http.StatusUnauthorized))
		Expect(body).To(Equal("Unauthorized\n"))

		code, _ = do(http.MethodPut, "/api/user/favourites/movie1", "not.a.token", "")
		Expect(code).To(Equal(http.StatusUnauthorized))
	})

	It("should answer preflight requests", func() {
		req, err := http.NewRequest(http.MethodOptions, server.URL+"/api/user/favourites/movie1", nil)
		Expect(err).NotTo(HaveOccurred())
		req.Header.Set("Origin", "http://example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPut)

		resp, err := http.DefaultClient.Do(req)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		Expect(resp.StatusCode).To(Equal(http.StatusNoContent))
		Expect(resp.Header.Get("Access-Control-Allow-Origin")).To(Equal("*"))
	})

	It("should report health", func() {
		code, body := do(http.MethodGet, router.HealthPath, "", "")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(Equal("OK"))
	})
})
