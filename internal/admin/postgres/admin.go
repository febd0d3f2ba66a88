package postgres

import (
	goerrors "errors"

	errors "github.com/frahmantamala/user-management/internal"
	"github.com/frahmantamala/user-management/internal/admin"
	"gorm.io/gorm"
)

// AdminRepository implements the admin.Repository interface using GORM
type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) admin.Repository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(profile *admin.Profile) error {
	return r.db.Create(profile).Error
}

func (r *AdminRepository) GetByID(id string) (*admin.Profile, error) {
	var profile admin.Profile
	err := r.db.Where("id = ?", id).First(&profile).Error
	if err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *AdminRepository) GetAll() ([]*admin.Profile, error) {
	var profiles []*admin.Profile
	err := r.db.Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}

func (r *AdminRepository) GetByDepartment(department string) ([]*admin.Profile, error) {
	var profiles []*admin.Profile
	err := r.db.Where("department = ?", department).
		Order("created_at DESC").
		Find(&profiles).Error
	return profiles, err
}

func (r *AdminRepository) Update(id string, patch map[string]interface{}) (*admin.Profile, error) {
	result := r.db.Model(&admin.Profile{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errors.ErrProfileNotFound
	}
	return r.GetByID(id)
}

func (r *AdminRepository) Delete(id string) (*admin.Profile, error) {
	profile, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&admin.Profile{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return profile, nil
}
