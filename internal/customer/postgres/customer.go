package postgres

import (
	goerrors "errors"

	errors "github.com/frahmantamala/user-management/internal"
	"github.com/frahmantamala/user-management/internal/core/pagination"
	"github.com/frahmantamala/user-management/internal/customer"
	"gorm.io/gorm"
)

var sortColumns = map[string]string{
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
	"name":         "name",
	"company":      "company",
	"loyaltyLevel": "loyalty_level",
	"totalOrders":  "total_orders",
	"totalSpent":   "total_spent",
}

// CustomerRepository implements the customer.Repository interface using GORM
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer profile repository
func NewCustomerRepository(db *gorm.DB) customer.Repository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(profile *customer.Profile) error {
	return r.db.Create(profile).Error
}

func (r *CustomerRepository) GetByID(id string) (*customer.Profile, error) {
	var profile customer.Profile
	err := r.db.Where("id = ?", id).First(&profile).Error
	if err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *CustomerRepository) GetAll() ([]*customer.Profile, error) {
	var profiles []*customer.Profile
	err := r.db.Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}

func (r *CustomerRepository) Update(id string, patch map[string]interface{}) (*customer.Profile, error) {
	result := r.db.Model(&customer.Profile{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errors.ErrProfileNotFound
	}
	return r.GetByID(id)
}

func (r *CustomerRepository) Delete(id string) (*customer.Profile, error) {
	profile, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&customer.Profile{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// List runs the customer listing through the shared pagination engine.
func (r *CustomerRepository) List(query customer.ListQuery) (*pagination.Result[*customer.Profile], error) {
	q := r.db.Model(&customer.Profile{})
	if query.Name != "" {
		q = pagination.Substring(q, "name", query.Name)
	}
	if query.Company != "" {
		q = pagination.Substring(q, "company", query.Company)
	}
	if query.LoyaltyLevel != "" {
		q = q.Where("loyalty_level = ?", query.LoyaltyLevel)
	}

	column, ok := sortColumns[query.SortBy]
	if !ok {
		column = "created_at"
	}

	return pagination.Paginate[*customer.Profile](q, pagination.Params{
		Page:       query.Page,
		Limit:      query.Limit,
		SortColumn: column,
		SortOrder:  query.SortOrder,
	})
}

func (r *CustomerRepository) GetByLoyaltyLevel(level customer.LoyaltyLevel) ([]*customer.Profile, error) {
	var profiles []*customer.Profile
	err := r.db.Where("loyalty_level = ?", level).
		Order("created_at DESC").
		Find(&profiles).Error
	return profiles, err
}

// IncrementOrderStats bumps the order counters in a single UPDATE so
// concurrent postings accumulate correctly.
func (r *CustomerRepository) IncrementOrderStats(id string, orderAmount float64) (*customer.Profile, error) {
	result := r.db.Model(&customer.Profile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_orders": gorm.Expr("total_orders + 1"),
			"total_spent":  gorm.Expr("total_spent + ?", orderAmount),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errors.ErrProfileNotFound
	}
	return r.GetByID(id)
}

func (r *CustomerRepository) GetTopBySpend(limit int) ([]*customer.Profile, error) {
	var profiles []*customer.Profile
	err := r.db.Order("total_spent DESC").
		Limit(limit).
		Find(&profiles).Error
	return profiles, err
}
