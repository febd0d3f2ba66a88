package customer

import (
	"strings"
	"time"

	errors "github.com/frahmantamala/user-management/internal"
	"github.com/frahmantamala/user-management/internal/core/common/validation"
	"github.com/frahmantamala/user-management/internal/core/datamodel"
)

// CreateCustomerDTO is the request payload for creating a customer profile.
type CreateCustomerDTO struct {
	Name                   string        `json:"name" validate:"required"`
	Phone                  *string       `json:"phone,omitempty"`
	Address                *string       `json:"address,omitempty"`
	DateOfBirth            *time.Time    `json:"date_of_birth,omitempty"`
	Company                *string       `json:"company,omitempty"`
	LoyaltyLevel           *LoyaltyLevel `json:"loyalty_level,omitempty"`
	PreferredPaymentMethod *string       `json:"preferred_payment_method,omitempty"`
	Interests              []string      `json:"interests,omitempty"`
	EmailSubscription      *bool         `json:"email_subscription,omitempty"`
	SmsSubscription        *bool         `json:"sms_subscription,omitempty"`
	Notes                  *string       `json:"notes,omitempty"`
}

func (dto CreateCustomerDTO) Validate() error {
	if err := validation.NewValidator().
		RequiredString("name", dto.Name).
		Validate(); err != nil {
		return err
	}
	if dto.LoyaltyLevel != nil && !dto.LoyaltyLevel.Valid() {
		return errors.ErrInvalidLoyalty
	}
	return nil
}

// UpdateCustomerDTO is a partial update; nil fields are left untouched.
type UpdateCustomerDTO struct {
	Name                   *string       `json:"name,omitempty"`
	Phone                  *string       `json:"phone,omitempty"`
	Address                *string       `json:"address,omitempty"`
	DateOfBirth            *time.Time    `json:"date_of_birth,omitempty"`
	Company                *string       `json:"company,omitempty"`
	LoyaltyLevel           *LoyaltyLevel `json:"loyalty_level,omitempty"`
	PreferredPaymentMethod *string       `json:"preferred_payment_method,omitempty"`
	Interests              []string      `json:"interests,omitempty"`
	EmailSubscription      *bool         `json:"email_subscription,omitempty"`
	SmsSubscription        *bool         `json:"sms_subscription,omitempty"`
	Notes                  *string       `json:"notes,omitempty"`
}

func (dto UpdateCustomerDTO) Validate() error {
	if dto.Name != nil && *dto.Name == "" {
		return errors.NewValidationFieldError("name", "name must not be empty", errors.ErrCodeValidationFailed)
	}
	if dto.LoyaltyLevel != nil && !dto.LoyaltyLevel.Valid() {
		return errors.ErrInvalidLoyalty
	}
	return nil
}

// Patch converts the set fields into a column patch for the repository.
func (dto UpdateCustomerDTO) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if dto.Name != nil {
		patch["name"] = *dto.Name
	}
	if dto.Phone != nil {
		patch["phone"] = *dto.Phone
	}
	if dto.Address != nil {
		patch["address"] = *dto.Address
	}
	if dto.DateOfBirth != nil {
		patch["date_of_birth"] = *dto.DateOfBirth
	}
	if dto.Company != nil {
		patch["company"] = *dto.Company
	}
	if dto.LoyaltyLevel != nil {
		patch["loyalty_level"] = *dto.LoyaltyLevel
	}
	if dto.PreferredPaymentMethod != nil {
		patch["preferred_payment_method"] = *dto.PreferredPaymentMethod
	}
	if dto.Interests != nil {
		patch["interests"] = datamodel.StringList(dto.Interests)
	}
	if dto.EmailSubscription != nil {
		patch["email_subscription"] = *dto.EmailSubscription
	}
	if dto.SmsSubscription != nil {
		patch["sms_subscription"] = *dto.SmsSubscription
	}
	if dto.Notes != nil {
		patch["notes"] = *dto.Notes
	}
	return patch
}

// OrderStatsDTO carries one posted order amount.
type OrderStatsDTO struct {
	OrderAmount float64 `json:"order_amount" validate:"min=0"`
}

func (dto OrderStatsDTO) Validate() error {
	if dto.OrderAmount < 0 {
		return errors.NewValidationFieldError("order_amount", "order amount must not be negative", errors.ErrCodeValidationFailed)
	}
	return nil
}

// UpdateLoyaltyDTO carries the target loyalty level.
type UpdateLoyaltyDTO struct {
	LoyaltyLevel LoyaltyLevel `json:"loyalty_level" validate:"required,oneof=bronze silver gold platinum"`
}

func (dto UpdateLoyaltyDTO) Validate() error {
	if !dto.LoyaltyLevel.Valid() {
		return errors.ErrInvalidLoyalty
	}
	return nil
}

// ListQuery carries the customer listing filters plus pagination. Name and
// company match as case-insensitive substrings, loyalty level exactly.
type ListQuery struct {
	Name         string
	Company      string
	LoyaltyLevel string
	Page         int
	Limit        int
	SortBy       string
	SortOrder    string
}

func (q ListQuery) Normalized() ListQuery {
	q.Name = strings.TrimSpace(q.Name)
	q.Company = strings.TrimSpace(q.Company)
	q.LoyaltyLevel = strings.TrimSpace(q.LoyaltyLevel)
	return q
}
