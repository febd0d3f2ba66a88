package postgres

import (
	goerrors "errors"

	errors "github.com/frahmantamala/user-management/internal"
	"github.com/frahmantamala/user-management/internal/core/pagination"
	"github.com/frahmantamala/user-management/internal/identity"
	"gorm.io/gorm"
)

// sortColumns maps user-facing sort keys to identity columns. Unknown keys
// fall back to the creation timestamp.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"email":     "email",
	"role":      "role",
}

// IdentityRepository implements the identity.Repository interface using GORM
type IdentityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository creates a new identity repository
func NewIdentityRepository(db *gorm.DB) identity.Repository {
	return &IdentityRepository{db: db}
}

// Create saves a new identity. A unique-constraint violation on email comes
// back as the typed duplicate error so callers can map it distinctly.
func (r *IdentityRepository) Create(ident *identity.Identity) error {
	if err := r.db.Create(ident).Error; err != nil {
		if goerrors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *IdentityRepository) GetByID(id string) (*identity.Identity, error) {
	var ident identity.Identity
	err := r.db.Where("id = ?", id).First(&ident).Error
	if err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrIdentityNotFound
		}
		return nil, err
	}
	return &ident, nil
}

func (r *IdentityRepository) GetByEmail(email string) (*identity.Identity, error) {
	var ident identity.Identity
	err := r.db.Where("email = ?", email).First(&ident).Error
	if err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrIdentityNotFound
		}
		return nil, err
	}
	return &ident, nil
}

func (r *IdentityRepository) GetByRole(role identity.Role) ([]*identity.Identity, error) {
	var idents []*identity.Identity
	err := r.db.Where("role = ?", role).
		Order("created_at DESC").
		Find(&idents).Error
	return idents, err
}

// Update applies a column patch and returns the post-update record.
func (r *IdentityRepository) Update(id string, patch map[string]interface{}) (*identity.Identity, error) {
	result := r.db.Model(&identity.Identity{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		if goerrors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrDuplicateEmail
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errors.ErrIdentityNotFound
	}
	return r.GetByID(id)
}

// Delete removes the identity record only and returns it. The referenced
// profile is untouched.
func (r *IdentityRepository) Delete(id string) (*identity.Identity, error) {
	ident, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&identity.Identity{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return ident, nil
}

// List runs the identity listing through the shared pagination engine.
// Email filters as a case-insensitive substring, role as exact equality.
func (r *IdentityRepository) List(query identity.ListQuery) (*pagination.Result[*identity.Identity], error) {
	q := r.db.Model(&identity.Identity{})
	if query.Email != "" {
		q = pagination.Substring(q, "email", query.Email)
	}
	if query.Role != "" {
		q = q.Where("role = ?", query.Role)
	}

	column, ok := sortColumns[query.SortBy]
	if !ok {
		column = "created_at"
	}

	return pagination.Paginate[*identity.Identity](q, pagination.Params{
		Page:       query.Page,
		Limit:      query.Limit,
		SortColumn: column,
		SortOrder:  query.SortOrder,
	})
}
