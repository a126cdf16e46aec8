package jwt_test

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	tokenIssuer "favourites/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			UserID:     "5f2b1c7e-0000-4000-8000-000000000001",
			UserName:   "alice",
			Expiration: time.Hour,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	Describe("Generate and Sign", func() {
		var signed string

		JustBeforeEach(func() {
			var err error
			signed, err = service.Sign(service.Generate(info))
			Expect(err).NotTo(HaveOccurred())
		})

		It("should embed only the identity and timestamps", func() {
			parts := strings.Split(signed, ".")
			Expect(parts).To(HaveLen(3))

			raw, err := base64.RawURLEncoding.DecodeString(parts[1])
			Expect(err).NotTo(HaveOccurred())

			var payload map[string]any
			Expect(json.Unmarshal(raw, &payload)).To(Succeed())
			Expect(payload).To(HaveLen(4))
			Expect(payload).To(HaveKeyWithValue("_id", info.UserID))
			Expect(payload).To(HaveKeyWithValue("userName", info.UserName))
			Expect(payload).To(HaveKey("iat"))
			Expect(payload).To(HaveKey("exp"))
			Expect(payload["exp"].(float64) - payload["iat"].(float64)).To(Equal(float64(3600)))
		})

		It("should round trip through Validate", func() {
			claims, err := service.Validate(signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.ID).To(Equal(info.UserID))
			Expect(claims.UserName).To(Equal(info.UserName))
		})
	})

	Describe("Validate", func() {
		var (
			token  string
			claims *tokenIssuer.Claims
			err    error
		)

		JustBeforeEach(func() {
			claims, err = service.Validate(token)
		})

		When("the token is expired", func() {
			BeforeEach(func() {
				tokenIssuer.TimeNow = func() time.Time {
					return time.Now().Add(-2 * time.Hour)
				}
				token, _ = service.Sign(service.Generate(info))
			})

			It("should return token expired error", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
				Expect(claims).To(BeNil())
			})
		})

		When("the token is signed with another secret", func() {
			BeforeEach(func() {
				other := tokenIssuer.NewJWTService([]byte("other-secret"))
				token, _ = other.Sign(other.Generate(info))
			})

			It("should return token not valid error", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token uses the none algorithm", func() {
			BeforeEach(func() {
				unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
					"_id":      info.UserID,
					"userName": info.UserName,
				})
				token, _ = unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
			})

			It("should reject it", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token is garbage", func() {
			BeforeEach(func() {
				token = "not.a.token"
			})

			It("should return token not valid error", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token has no _id claim", func() {
			BeforeEach(func() {
				info.UserID = ""
				token, _ = service.Sign(service.Generate(info))
			})

			It("should return token not valid error", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})
	})

	DescribeTable("ExtractToken",
		func(header string, expected string, expectedErr error) {
			token, err := tokenIssuer.ExtractToken(header, tokenIssuer.DefaultScheme)
			if expectedErr != nil {
				Expect(err).To(MatchError(expectedErr))
				return
			}
			Expect(err).NotTo(HaveOccurred())
			Expect(token).To(Equal(expected))
		},
		Entry("scheme and token", "JWT abc.def.ghi", "abc.def.ghi", nil),
		Entry("lower case scheme", "jwt abc.def.ghi", "abc.def.ghi", nil),
		Entry("bearer scheme", "Bearer abc.def.ghi", "", tokenIssuer.ErrMissingToken),
		Entry("token only", "abc.def.ghi", "", tokenIssuer.ErrMissingToken),
		Entry("empty header", "", "", tokenIssuer.ErrMissingToken),
	)
})
