package identity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of account roles. Role is fixed at creation; there
// is no role-change endpoint, but updates that carry a role still recompute
// the profile kind so the two can never drift.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCustomer, RoleStaff:
		return true
	}
	return false
}

// ProfileKind tags which profile collection an identity's profile reference
// points into.
type ProfileKind string

const (
	KindAdminProfile    ProfileKind = "AdminProfile"
	KindCustomerProfile ProfileKind = "CustomerProfile"
	KindStaffProfile    ProfileKind = "StaffProfile"
)

// KindForRole maps a role to its profile collection. Total over all inputs:
// unrecognized roles fall back to the customer kind rather than failing.
func KindForRole(role Role) ProfileKind {
	switch role {
	case RoleAdmin:
		return KindAdminProfile
	case RoleCustomer:
		return KindCustomerProfile
	case RoleStaff:
		return KindStaffProfile
	default:
		return KindCustomerProfile
	}
}

// Identity is the role-bearing account record. The password hash is never
// serialized and is cleared from every value the service hands out.
type Identity struct {
	ID           string      `json:"id" gorm:"primaryKey"`
	Email        string      `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string      `json:"-" gorm:"column:password_hash;not null"`
	Role         Role        `json:"role" gorm:"not null;index"`
	ProfileID    *string     `json:"profile_id,omitempty" gorm:"column:profile_id"`
	ProfileKind  ProfileKind `json:"profile_kind" gorm:"column:profile_kind;not null"`
	Profile      interface{} `json:"profile,omitempty" gorm:"-"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (Identity) TableName() string {
	return "identities"
}

// BeforeSave keeps the stored profile kind derived from the role, mirroring
// the invariant the service enforces.
func (i *Identity) BeforeSave(tx *gorm.DB) error {
	if i.Role != "" {
		i.ProfileKind = KindForRole(i.Role)
	}
	return nil
}

func (i *Identity) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// Sanitize returns a copy safe to hand to callers: the credential hash is
// stripped.
func (i *Identity) Sanitize() *Identity {
	clean := *i
	clean.PasswordHash = ""
	return &clean
}
