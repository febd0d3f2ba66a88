package admin

import (
	"time"

	"github.com/frahmantamala/user-management/internal/core/datamodel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultAdminLevel = "super_admin"

// Profile is the admin profile record.
type Profile struct {
	ID          string               `json:"id" gorm:"primaryKey"`
	Name        string               `json:"name" gorm:"not null"`
	Phone       *string              `json:"phone,omitempty"`
	Department  *string              `json:"department,omitempty"`
	AdminLevel  string               `json:"admin_level" gorm:"column:admin_level;default:super_admin"`
	Permissions datamodel.StringList `json:"permissions" gorm:"type:text"`
	EmployeeID  *string              `json:"employee_id,omitempty" gorm:"column:employee_id"`
	AccessLevel int                  `json:"access_level" gorm:"column:access_level"`
	LastLogin   *time.Time           `json:"last_login,omitempty" gorm:"column:last_login"`
	IsActive    bool                 `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func (Profile) TableName() string {
	return "admin_profiles"
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func NewProfile(dto CreateAdminDTO) *Profile {
	profile := &Profile{
		Name:        dto.Name,
		Phone:       dto.Phone,
		Department:  dto.Department,
		AdminLevel:  DefaultAdminLevel,
		Permissions: datamodel.StringList(dto.Permissions),
		EmployeeID:  dto.EmployeeID,
		AccessLevel: dto.AccessLevel,
		LastLogin:   dto.LastLogin,
		IsActive:    true,
	}

	if dto.AdminLevel != nil {
		profile.AdminLevel = *dto.AdminLevel
	}
	if dto.IsActive != nil {
		profile.IsActive = *dto.IsActive
	}

	return profile
}
