package customer

import (
	"time"

	"github.com/frahmantamala/user-management/internal/core/datamodel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LoyaltyLevel string

const (
	LoyaltyBronze   LoyaltyLevel = "bronze"
	LoyaltySilver   LoyaltyLevel = "silver"
	LoyaltyGold     LoyaltyLevel = "gold"
	LoyaltyPlatinum LoyaltyLevel = "platinum"
)

func (l LoyaltyLevel) Valid() bool {
	switch l {
	case LoyaltyBronze, LoyaltySilver, LoyaltyGold, LoyaltyPlatinum:
		return true
	}
	return false
}

// Profile is the customer profile record. Order statistics are only ever
// changed through the atomic increment, never by read-modify-write.
type Profile struct {
	ID                     string               `json:"id" gorm:"primaryKey"`
	Name                   string               `json:"name" gorm:"not null"`
	Phone                  *string              `json:"phone,omitempty"`
	Address                *string              `json:"address,omitempty"`
	DateOfBirth            *time.Time           `json:"date_of_birth,omitempty" gorm:"column:date_of_birth"`
	Company                *string              `json:"company,omitempty"`
	LoyaltyLevel           LoyaltyLevel         `json:"loyalty_level" gorm:"column:loyalty_level;default:bronze"`
	TotalOrders            int                  `json:"total_orders" gorm:"column:total_orders;default:0"`
	TotalSpent             float64              `json:"total_spent" gorm:"column:total_spent;default:0"`
	PreferredPaymentMethod *string              `json:"preferred_payment_method,omitempty" gorm:"column:preferred_payment_method"`
	Interests              datamodel.StringList `json:"interests" gorm:"type:text"`
	EmailSubscription      bool                 `json:"email_subscription" gorm:"column:email_subscription;default:true"`
	SmsSubscription        bool                 `json:"sms_subscription" gorm:"column:sms_subscription;default:true"`
	Notes                  *string              `json:"notes,omitempty"`
	CreatedAt              time.Time            `json:"created_at"`
	UpdatedAt              time.Time            `json:"updated_at"`
}

func (Profile) TableName() string {
	return "customer_profiles"
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// NewProfile builds a profile from the create payload with the collection
// defaults applied: bronze loyalty, zero order stats, subscriptions on.
func NewProfile(dto CreateCustomerDTO) *Profile {
	profile := &Profile{
		Name:                   dto.Name,
		Phone:                  dto.Phone,
		Address:                dto.Address,
		DateOfBirth:            dto.DateOfBirth,
		Company:                dto.Company,
		LoyaltyLevel:           LoyaltyBronze,
		PreferredPaymentMethod: dto.PreferredPaymentMethod,
		Interests:              datamodel.StringList(dto.Interests),
		EmailSubscription:      true,
		SmsSubscription:        true,
		Notes:                  dto.Notes,
	}

	if dto.LoyaltyLevel != nil {
		profile.LoyaltyLevel = *dto.LoyaltyLevel
	}
	if dto.EmailSubscription != nil {
		profile.EmailSubscription = *dto.EmailSubscription
	}
	if dto.SmsSubscription != nil {
		profile.SmsSubscription = *dto.SmsSubscription
	}

	return profile
}
