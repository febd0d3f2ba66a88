package auth_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	errors "github.com/frahmantamala/user-management/internal"
	"github.com/frahmantamala/user-management/internal/auth"
	"github.com/frahmantamala/user-management/internal/identity"
)

func TestAuthService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "AuthService Suite")
}

type mockIdentityReader struct {
	identities map[string]*identity.Identity
}

func (m *mockIdentityReader) GetByEmail(email string) (*identity.Identity, error) {
	for _, ident := range m.identities {
		if ident.Email == email {
			return ident, nil
		}
	}
	return nil, errors.ErrIdentityNotFound
}

func (m *mockIdentityReader) GetByID(id string) (*identity.Identity, error) {
	ident, exists := m.identities[id]
	if !exists {
		return nil, errors.ErrIdentityNotFound
	}
	return ident, nil
}

var _ = Describe("AuthService", func() {
	var (
		reader  *mockIdentityReader
		tokens  *auth.JWTTokenGenerator
		service *auth.Service
	)

	BeforeEach(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())

		reader = &mockIdentityReader{identities: map[string]*identity.Identity{
			"id-1": {
				ID:           "id-1",
				Email:        "user@example.com",
				PasswordHash: string(hash),
				Role:         identity.RoleCustomer,
				ProfileKind:  identity.KindCustomerProfile,
			},
		}}
		tokens = auth.NewJWTTokenGenerator(
			"test-access-secret-test-access-secret",
			"test-refresh-secret-test-refresh-secret",
			15*time.Minute,
			24*time.Hour,
		)
		service = auth.NewService(reader, tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	Describe("Authenticate", func() {
		It("issues a token pair for valid credentials", func() {
			pair, err := service.Authenticate(auth.LoginDTO{Email: "user@example.com", Password: "supersecret"})
			Expect(err).NotTo(HaveOccurred())
			Expect(pair.AccessToken).NotTo(BeEmpty())
			Expect(pair.RefreshToken).NotTo(BeEmpty())

			claims, err := service.ValidateAccessToken(pair.AccessToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.IdentityID).To(Equal("id-1"))
			Expect(claims.Email).To(Equal("user@example.com"))
			Expect(claims.Role).To(Equal(identity.RoleCustomer))
		})

		It("collapses a wrong password into invalid credentials", func() {
			_, err := service.Authenticate(auth.LoginDTO{Email: "user@example.com", Password: "wrong"})
			Expect(err).To(Equal(errors.ErrInvalidCredentials))
		})

		It("collapses an unknown email into invalid credentials", func() {
			_, err := service.Authenticate(auth.LoginDTO{Email: "ghost@example.com", Password: "supersecret"})
			Expect(err).To(Equal(errors.ErrInvalidCredentials))
		})

		It("rejects an empty payload", func() {
			_, err := service.Authenticate(auth.LoginDTO{})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("RefreshTokens", func() {
		It("exchanges a refresh token for a new pair", func() {
			pair, err := service.Authenticate(auth.LoginDTO{Email: "user@example.com", Password: "supersecret"})
			Expect(err).NotTo(HaveOccurred())

			refreshed, err := service.RefreshTokens(pair.RefreshToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(refreshed.AccessToken).NotTo(BeEmpty())
		})

		It("rejects garbage tokens", func() {
			_, err := service.RefreshTokens("not-a-token")
			Expect(err).To(Equal(errors.ErrInvalidToken))
		})
	})

	Describe("JWTTokenGenerator", func() {
		It("rejects an expired token", func() {
			expired := auth.NewJWTTokenGenerator(
				"test-access-secret-test-access-secret",
				"test-refresh-secret-test-refresh-secret",
				-time.Minute,
				-time.Minute,
			)
			token, err := expired.GenerateAccessToken("id-1", "user@example.com", identity.RoleCustomer)
			Expect(err).NotTo(HaveOccurred())

			_, err = expired.ValidateToken(token)
			Expect(err).To(Equal(errors.ErrTokenExpired))
		})

		It("rejects a token signed with a different secret", func() {
			other := auth.NewJWTTokenGenerator(
				"another-secret-entirely-another-secret",
				"another-refresh-entirely-another-refresh",
				15*time.Minute,
				24*time.Hour,
			)
			token, err := other.GenerateAccessToken("id-1", "user@example.com", identity.RoleCustomer)
			Expect(err).NotTo(HaveOccurred())

			_, err = tokens.ValidateToken(token)
			Expect(err).To(Equal(errors.ErrInvalidToken))
		})
	})
})
