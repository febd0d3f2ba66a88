package admin

import (
	"time"

	errors "github.com/frahmantamala/user-management/internal"
	"github.com/frahmantamala/user-management/internal/core/common/validation"
	"github.com/frahmantamala/user-management/internal/core/datamodel"
)

// CreateAdminDTO is the request payload for creating an admin profile.
// Access level ranges 1-10, 10 being the highest.
type CreateAdminDTO struct {
	Name        string     `json:"name" validate:"required"`
	Phone       *string    `json:"phone,omitempty"`
	Department  *string    `json:"department,omitempty"`
	AdminLevel  *string    `json:"admin_level,omitempty"`
	Permissions []string   `json:"permissions,omitempty"`
	EmployeeID  *string    `json:"employee_id,omitempty"`
	AccessLevel int        `json:"access_level" validate:"min=1,max=10"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
}

func (dto CreateAdminDTO) Validate() error {
	if err := validation.NewValidator().
		RequiredString("name", dto.Name).
		IntRange("access_level", dto.AccessLevel, 1, 10).
		Validate(); err != nil {
		return err
	}
	return nil
}

// UpdateAdminDTO is a partial update; nil fields are left untouched.
type UpdateAdminDTO struct {
	Name        *string    `json:"name,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	Department  *string    `json:"department,omitempty"`
	AdminLevel  *string    `json:"admin_level,omitempty"`
	Permissions []string   `json:"permissions,omitempty"`
	EmployeeID  *string    `json:"employee_id,omitempty"`
	AccessLevel *int       `json:"access_level,omitempty"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
}

func (dto UpdateAdminDTO) Validate() error {
	if dto.Name != nil && *dto.Name == "" {
		return errors.NewValidationFieldError("name", "name must not be empty", errors.ErrCodeValidationFailed)
	}
	if dto.AccessLevel != nil && (*dto.AccessLevel < 1 || *dto.AccessLevel > 10) {
		return errors.NewValidationFieldError("access_level", "access_level must be between 1 and 10", errors.ErrCodeValidationFailed)
	}
	return nil
}

func (dto UpdateAdminDTO) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if dto.Name != nil {
		patch["name"] = *dto.Name
	}
	if dto.Phone != nil {
		patch["phone"] = *dto.Phone
	}
	if dto.Department != nil {
		patch["department"] = *dto.Department
	}
	if dto.AdminLevel != nil {
		patch["admin_level"] = *dto.AdminLevel
	}
	if dto.Permissions != nil {
		patch["permissions"] = datamodel.StringList(dto.Permissions)
	}
	if dto.EmployeeID != nil {
		patch["employee_id"] = *dto.EmployeeID
	}
	if dto.AccessLevel != nil {
		patch["access_level"] = *dto.AccessLevel
	}
	if dto.LastLogin != nil {
		patch["last_login"] = *dto.LastLogin
	}
	if dto.IsActive != nil {
		patch["is_active"] = *dto.IsActive
	}
	return patch
}
