package staff

import (
	"time"

	"github.com/frahmantamala/user-management/internal/core/datamodel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full-time"
	EmploymentPartTime EmploymentType = "part-time"
	EmploymentContract EmploymentType = "contract"
	EmploymentIntern   EmploymentType = "intern"
)

func (t EmploymentType) Valid() bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentIntern:
		return true
	}
	return false
}

// Profile is the staff profile record.
type Profile struct {
	ID                string                      `json:"id" gorm:"primaryKey"`
	Name              string                      `json:"name" gorm:"not null"`
	Phone             *string                     `json:"phone,omitempty"`
	Department        *string                     `json:"department,omitempty"`
	Position          *string                     `json:"position,omitempty"`
	EmployeeID        *string                     `json:"employee_id,omitempty" gorm:"column:employee_id"`
	Manager           *string                     `json:"manager,omitempty"`
	HireDate          *time.Time                  `json:"hire_date,omitempty" gorm:"column:hire_date"`
	EmploymentType    EmploymentType              `json:"employment_type" gorm:"column:employment_type;default:full-time"`
	Salary            *float64                    `json:"salary,omitempty"`
	Skills            datamodel.StringList        `json:"skills" gorm:"type:text"`
	Certifications    datamodel.StringList        `json:"certifications" gorm:"type:text"`
	YearsOfExperience int                         `json:"years_of_experience" gorm:"column:years_of_experience;default:0"`
	WorkLocation      *string                     `json:"work_location,omitempty" gorm:"column:work_location"`
	IsActive          bool                        `json:"is_active" gorm:"column:is_active;default:true"`
	EmergencyContact  *datamodel.EmergencyContact `json:"emergency_contact,omitempty" gorm:"column:emergency_contact;type:text"`
	Notes             *string                     `json:"notes,omitempty"`
	CreatedAt         time.Time                   `json:"created_at"`
	UpdatedAt         time.Time                   `json:"updated_at"`
}

func (Profile) TableName() string {
	return "staff_profiles"
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func NewProfile(dto CreateStaffDTO) *Profile {
	profile := &Profile{
		Name:              dto.Name,
		Phone:             dto.Phone,
		Department:        dto.Department,
		Position:          dto.Position,
		EmployeeID:        dto.EmployeeID,
		Manager:           dto.Manager,
		HireDate:          dto.HireDate,
		EmploymentType:    EmploymentFullTime,
		Salary:            dto.Salary,
		Skills:            datamodel.StringList(dto.Skills),
		Certifications:    datamodel.StringList(dto.Certifications),
		YearsOfExperience: dto.YearsOfExperience,
		WorkLocation:      dto.WorkLocation,
		IsActive:          true,
		EmergencyContact:  dto.EmergencyContact,
		Notes:             dto.Notes,
	}

	if dto.EmploymentType != nil {
		profile.EmploymentType = *dto.EmploymentType
	}
	if dto.IsActive != nil {
		profile.IsActive = *dto.IsActive
	}

	return profile
}
