package identity

import (
	"strings"

	errors "github.com/frahmantamala/user-management/internal"
	"github.com/frahmantamala/user-management/internal/core/common/validation"
)

// CreateIdentityDTO is the request payload for creating an identity. The
// profile reference is optional; callers conventionally create the profile
// first and link it here.
type CreateIdentityDTO struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	Role      Role    `json:"role" validate:"required,oneof=admin customer staff"`
	ProfileID *string `json:"profile_id,omitempty"`
}

func (dto CreateIdentityDTO) Validate() error {
	if err := validation.NewValidator().
		Email("email", dto.Email).
		Password("password", dto.Password).
		Validate(); err != nil {
		return err
	}
	if !dto.Role.Valid() {
		return errors.ErrInvalidRole
	}
	return nil
}

// UpdateIdentityDTO is a partial update; nil fields are left untouched.
type UpdateIdentityDTO struct {
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	Role      *Role   `json:"role,omitempty"`
	ProfileID *string `json:"profile_id,omitempty"`
}

func (dto UpdateIdentityDTO) Validate() error {
	v := validation.NewValidator()
	if dto.Email != nil {
		v.Email("email", *dto.Email)
	}
	if dto.Password != nil {
		v.Password("password", *dto.Password)
	}
	if err := v.Validate(); err != nil {
		return err
	}
	if dto.Role != nil && !dto.Role.Valid() {
		return errors.ErrInvalidRole
	}
	return nil
}

// ListQuery carries the identity listing filters plus pagination. Email
// matches as a case-insensitive substring, role as exact equality.
type ListQuery struct {
	Email     string
	Role      string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

func (q ListQuery) Normalized() ListQuery {
	q.Email = strings.TrimSpace(q.Email)
	q.Role = strings.TrimSpace(q.Role)
	return q
}
