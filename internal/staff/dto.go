package staff

import (
	"time"

	errors "github.com/frahmantamala/user-management/internal"
	"github.com/frahmantamala/user-management/internal/core/common/validation"
	"github.com/frahmantamala/user-management/internal/core/datamodel"
)

// CreateStaffDTO is the request payload for creating a staff profile.
type CreateStaffDTO struct {
	Name              string                      `json:"name" validate:"required"`
	Phone             *string                     `json:"phone,omitempty"`
	Department        *string                     `json:"department,omitempty"`
	Position          *string                     `json:"position,omitempty"`
	EmployeeID        *string                     `json:"employee_id,omitempty"`
	Manager           *string                     `json:"manager,omitempty"`
	HireDate          *time.Time                  `json:"hire_date,omitempty"`
	EmploymentType    *EmploymentType             `json:"employment_type,omitempty"`
	Salary            *float64                    `json:"salary,omitempty"`
	Skills            []string                    `json:"skills,omitempty"`
	Certifications    []string                    `json:"certifications,omitempty"`
	YearsOfExperience int                         `json:"years_of_experience" validate:"min=0"`
	WorkLocation      *string                     `json:"work_location,omitempty"`
	IsActive          *bool                       `json:"is_active,omitempty"`
	EmergencyContact  *datamodel.EmergencyContact `json:"emergency_contact,omitempty"`
	Notes             *string                     `json:"notes,omitempty"`
}

func (dto CreateStaffDTO) Validate() error {
	if err := validation.NewValidator().
		RequiredString("name", dto.Name).
		Validate(); err != nil {
		return err
	}
	if dto.EmploymentType != nil && !dto.EmploymentType.Valid() {
		return errors.NewValidationFieldError("employment_type", "employment_type must be one of full-time, part-time, contract, intern", errors.ErrCodeValidationFailed)
	}
	if dto.Salary != nil && *dto.Salary < 0 {
		return errors.NewValidationFieldError("salary", "salary must not be negative", errors.ErrCodeValidationFailed)
	}
	if dto.YearsOfExperience < 0 {
		return errors.NewValidationFieldError("years_of_experience", "years_of_experience must not be negative", errors.ErrCodeValidationFailed)
	}
	return nil
}

// UpdateStaffDTO is a partial update; nil fields are left untouched.
type UpdateStaffDTO struct {
	Name              *string                     `json:"name,omitempty"`
	Phone             *string                     `json:"phone,omitempty"`
	Department        *string                     `json:"department,omitempty"`
	Position          *string                     `json:"position,omitempty"`
	EmployeeID        *string                     `json:"employee_id,omitempty"`
	Manager           *string                     `json:"manager,omitempty"`
	HireDate          *time.Time                  `json:"hire_date,omitempty"`
	EmploymentType    *EmploymentType             `json:"employment_type,omitempty"`
	Salary            *float64                    `json:"salary,omitempty"`
	Skills            []string                    `json:"skills,omitempty"`
	Certifications    []string                    `json:"certifications,omitempty"`
	YearsOfExperience *int                        `json:"years_of_experience,omitempty"`
	WorkLocation      *string                     `json:"work_location,omitempty"`
	IsActive          *bool                       `json:"is_active,omitempty"`
	EmergencyContact  *datamodel.EmergencyContact `json:"emergency_contact,omitempty"`
	Notes             *string                     `json:"notes,omitempty"`
}

func (dto UpdateStaffDTO) Validate() error {
	if dto.Name != nil && *dto.Name == "" {
		return errors.NewValidationFieldError("name", "name must not be empty", errors.ErrCodeValidationFailed)
	}
	if dto.EmploymentType != nil && !dto.EmploymentType.Valid() {
		return errors.NewValidationFieldError("employment_type", "employment_type must be one of full-time, part-time, contract, intern", errors.ErrCodeValidationFailed)
	}
	if dto.Salary != nil && *dto.Salary < 0 {
		return errors.NewValidationFieldError("salary", "salary must not be negative", errors.ErrCodeValidationFailed)
	}
	if dto.YearsOfExperience != nil && *dto.YearsOfExperience < 0 {
		return errors.NewValidationFieldError("years_of_experience", "years_of_experience must not be negative", errors.ErrCodeValidationFailed)
	}
	return nil
}

func (dto UpdateStaffDTO) Patch() map[string]interface{} {
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
	if dto.Position != nil {
		patch["position"] = *dto.Position
	}
	if dto.EmployeeID != nil {
		patch["employee_id"] = *dto.EmployeeID
	}
	if dto.Manager != nil {
		patch["manager"] = *dto.Manager
	}
	if dto.HireDate != nil {
		patch["hire_date"] = *dto.HireDate
	}
	if dto.EmploymentType != nil {
		patch["employment_type"] = *dto.EmploymentType
	}
	if dto.Salary != nil {
		patch["salary"] = *dto.Salary
	}
	if dto.Skills != nil {
		patch["skills"] = datamodel.StringList(dto.Skills)
	}
	if dto.Certifications != nil {
		patch["certifications"] = datamodel.StringList(dto.Certifications)
	}
	if dto.YearsOfExperience != nil {
		patch["years_of_experience"] = *dto.YearsOfExperience
	}
	if dto.WorkLocation != nil {
		patch["work_location"] = *dto.WorkLocation
	}
	if dto.IsActive != nil {
		patch["is_active"] = *dto.IsActive
	}
	if dto.EmergencyContact != nil {
		patch["emergency_contact"] = *dto.EmergencyContact
	}
	if dto.Notes != nil {
		patch["notes"] = *dto.Notes
	}
	return patch
}
