package postgres

import (
	goerrors "errors"

	errors "github.com/frahmantamala/user-management/internal"
	"github.com/frahmantamala/user-management/internal/staff"
	"gorm.io/gorm"
)

// StaffRepository implements the staff.Repository interface using GORM
type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) staff.Repository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) Create(profile *staff.Profile) error {
	return r.db.Create(profile).Error
}

func (r *StaffRepository) GetByID(id string) (*staff.Profile, error) {
	var profile staff.Profile
	err := r.db.Where("id = ?", id).First(&profile).Error
	if err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *StaffRepository) GetAll() ([]*staff.Profile, error) {
	var profiles []*staff.Profile
	err := r.db.Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}

func (r *StaffRepository) GetByDepartment(department string) ([]*staff.Profile, error) {
	var profiles []*staff.Profile
	err := r.db.Where("department = ?", department).
		Order("created_at DESC").
		Find(&profiles).Error
	return profiles, err
}

func (r *StaffRepository) Update(id string, patch map[string]interface{}) (*staff.Profile, error) {
	result := r.db.Model(&staff.Profile{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errors.ErrProfileNotFound
	}
	return r.GetByID(id)
}

func (r *StaffRepository) Delete(id string) (*staff.Profile, error) {
	profile, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&staff.Profile{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return profile, nil
}
