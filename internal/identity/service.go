package identity

import (
	"log/slog"

	errors "github.com/frahmantamala/user-management/internal"
	"github.com/frahmantamala/user-management/internal/core/pagination"
	"golang.org/x/crypto/bcrypt"
)

// Repository defines the data access methods for identities. Expected
// conditions (missing id, duplicate email) come back as typed AppErrors;
// anything else is an infrastructure failure and passes through unchanged.
type Repository interface {
	Create(ident *Identity) error
	GetByID(id string) (*Identity, error)
	GetByEmail(email string) (*Identity, error)
	GetByRole(role Role) ([]*Identity, error)
	Update(id string, patch map[string]interface{}) (*Identity, error)
	Delete(id string) (*Identity, error)
	List(query ListQuery) (*pagination.Result[*Identity], error)
}

// ProfileResolver resolves a profile reference into the record it points at.
type ProfileResolver interface {
	Resolve(kind ProfileKind, profileID string) (interface{}, error)
}

// Service handles identity business logic: credential hashing, the
// role/profile-kind invariant, and profile resolution on reads.
type Service struct {
	repo     Repository
	resolver ProfileResolver
	logger   *slog.Logger
}

func NewService(repo Repository, resolver ProfileResolver, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		resolver: resolver,
		logger:   logger,
	}
}

// Create persists a new identity. The profile kind is computed from the role
// before the record ever reaches the store.
func (s *Service) Create(dto CreateIdentityDTO) (*Identity, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("identity validation failed", "error", err, "email", dto.Email)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash credential", err)
	}

	ident := &Identity{
		Email:        dto.Email,
		PasswordHash: string(hash),
		Role:         dto.Role,
		ProfileID:    dto.ProfileID,
		ProfileKind:  KindForRole(dto.Role),
	}

	if err := s.repo.Create(ident); err != nil {
		s.logger.Error("failed to create identity", "error", err, "email", dto.Email)
		return nil, err
	}

	s.logger.Info("identity created",
		"identity_id", ident.ID,
		"role", ident.Role,
		"profile_kind", ident.ProfileKind)

	return s.withProfile(ident)
}

// GetByID returns the identity with its profile reference resolved and the
// credential hash stripped.
func (s *Service) GetByID(id string) (*Identity, error) {
	ident, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.withProfile(ident)
}

// Update applies a partial update. When the patch carries a role the profile
// kind is recomputed in the same write.
func (s *Service) Update(id string, dto UpdateIdentityDTO) (*Identity, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("identity update validation failed", "error", err, "identity_id", id)
		return nil, err
	}

	patch := map[string]interface{}{}
	if dto.Email != nil {
		patch["email"] = *dto.Email
	}
	if dto.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*dto.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.NewInternalError("failed to hash credential", err)
		}
		patch["password_hash"] = string(hash)
	}
	if dto.Role != nil {
		patch["role"] = *dto.Role
		patch["profile_kind"] = KindForRole(*dto.Role)
	}
	if dto.ProfileID != nil {
		patch["profile_id"] = *dto.ProfileID
	}

	if len(patch) == 0 {
		return s.GetByID(id)
	}

	ident, err := s.repo.Update(id, patch)
	if err != nil {
		s.logger.Error("failed to update identity", "error", err, "identity_id", id)
		return nil, err
	}

	return s.withProfile(ident)
}

// Delete removes the identity record only. The referenced profile is left in
// place; its own service owns that lifecycle.
func (s *Service) Delete(id string) (*Identity, error) {
	ident, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("failed to delete identity", "error", err, "identity_id", id)
		return nil, err
	}

	s.logger.Info("identity deleted", "identity_id", id)
	return ident.Sanitize(), nil
}

// List returns one page of identities with totals, every record sanitized
// and its profile resolved.
func (s *Service) List(query ListQuery) (*pagination.Result[*Identity], error) {
	result, err := s.repo.List(query.Normalized())
	if err != nil {
		s.logger.Error("failed to list identities", "error", err)
		return nil, err
	}

	for i, ident := range result.Data {
		clean, err := s.withProfile(ident)
		if err != nil {
			return nil, err
		}
		result.Data[i] = clean
	}

	return result, nil
}

// GetByEmail is an exact-match lookup.
func (s *Service) GetByEmail(email string) (*Identity, error) {
	ident, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	return s.withProfile(ident)
}

func (s *Service) GetByRole(role Role) ([]*Identity, error) {
	idents, err := s.repo.GetByRole(role)
	if err != nil {
		s.logger.Error("failed to list identities by role", "error", err, "role", role)
		return nil, err
	}

	result := make([]*Identity, len(idents))
	for i, ident := range idents {
		clean, err := s.withProfile(ident)
		if err != nil {
			return nil, err
		}
		result[i] = clean
	}
	return result, nil
}

// withProfile sanitizes the identity and attaches its resolved profile. A
// reference that no longer resolves is a normal state: the identity comes
// back with no profile attached. Infrastructure failures propagate.
func (s *Service) withProfile(ident *Identity) (*Identity, error) {
	clean := ident.Sanitize()
	if clean.ProfileID == nil || *clean.ProfileID == "" {
		return clean, nil
	}

	profile, err := s.resolver.Resolve(clean.ProfileKind, *clean.ProfileID)
	if err != nil {
		if appErr, ok := errors.IsAppError(err); ok && appErr.Type == errors.ErrorTypeNotFound {
			s.logger.Warn("profile reference did not resolve",
				"identity_id", clean.ID,
				"profile_kind", clean.ProfileKind,
				"profile_id", *clean.ProfileID)
			return clean, nil
		}
		s.logger.Error("profile resolution failed", "error", err, "identity_id", clean.ID)
		return nil, err
	}

	clean.Profile = profile
	return clean, nil
}
