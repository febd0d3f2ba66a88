package auth

import (
	"log/slog"

	errors "github.com/frahmantamala/user-management/internal"
	"golang.org/x/crypto/bcrypt"
)

// Service validates credentials against the identity store and issues
// tokens. It reads identities through its own narrow interface so it can see
// the stored credential hash; everything it returns is token material only.
type Service struct {
	identities     IdentityReader
	tokenGenerator TokenGeneratorAPI
	logger         *slog.Logger
}

func NewService(identities IdentityReader, tokenGen TokenGeneratorAPI, logger *slog.Logger) *Service {
	return &Service{
		identities:     identities,
		tokenGenerator: tokenGen,
		logger:         logger,
	}
}

// Authenticate validates credentials and returns a token pair. Lookup
// failures and bad passwords collapse into the same invalid-credentials
// answer.
func (s *Service) Authenticate(dto LoginDTO) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, err
	}

	ident, err := s.identities.GetByEmail(dto.Email)
	if err != nil {
		s.logger.Warn("login failed: identity lookup", "email", dto.Email)
		return AuthTokens{}, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ident.PasswordHash), []byte(dto.Password)); err != nil {
		s.logger.Warn("login failed: password mismatch", "identity_id", ident.ID)
		return AuthTokens{}, errors.ErrInvalidCredentials
	}

	accessToken, err := s.tokenGenerator.GenerateAccessToken(ident.ID, ident.Email, ident.Role)
	if err != nil {
		return AuthTokens{}, errors.NewInternalError("failed to generate access token", err)
	}

	refreshToken, err := s.tokenGenerator.GenerateRefreshToken(ident.ID)
	if err != nil {
		return AuthTokens{}, errors.NewInternalError("failed to generate refresh token", err)
	}

	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshTokens validates a refresh token and returns a new pair.
func (s *Service) RefreshTokens(refreshToken string) (AuthTokens, error) {
	claims, err := s.tokenGenerator.ValidateToken(refreshToken)
	if err != nil {
		return AuthTokens{}, err
	}

	ident, err := s.identities.GetByID(claims.IdentityID)
	if err != nil {
		return AuthTokens{}, errors.ErrInvalidToken
	}

	accessToken, err := s.tokenGenerator.GenerateAccessToken(ident.ID, ident.Email, ident.Role)
	if err != nil {
		return AuthTokens{}, errors.NewInternalError("failed to generate access token", err)
	}

	newRefreshToken, err := s.tokenGenerator.GenerateRefreshToken(ident.ID)
	if err != nil {
		return AuthTokens{}, errors.NewInternalError("failed to generate refresh token", err)
	}

	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}
