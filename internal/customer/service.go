package customer

import (
	"log/slog"

	errors "github.com/frahmantamala/user-management/internal"
	"github.com/frahmantamala/user-management/internal/core/pagination"
)

const DefaultTopCustomersLimit = 10

// Repository defines the data access methods for customer profiles.
// IncrementOrderStats must be a single atomic increment at the store so
// concurrent order postings never lose updates.
type Repository interface {
	Create(profile *Profile) error
	GetByID(id string) (*Profile, error)
	GetAll() ([]*Profile, error)
	Update(id string, patch map[string]interface{}) (*Profile, error)
	Delete(id string) (*Profile, error)
	List(query ListQuery) (*pagination.Result[*Profile], error)
	GetByLoyaltyLevel(level LoyaltyLevel) ([]*Profile, error)
	IncrementOrderStats(id string, orderAmount float64) (*Profile, error)
	GetTopBySpend(limit int) ([]*Profile, error)
}

// Service handles customer profile business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) Create(dto CreateCustomerDTO) (*Profile, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("customer validation failed", "error", err)
		return nil, err
	}

	profile := NewProfile(dto)
	if err := s.repo.Create(profile); err != nil {
		s.logger.Error("failed to create customer profile", "error", err)
		return nil, err
	}

	s.logger.Info("customer profile created", "profile_id", profile.ID, "loyalty_level", profile.LoyaltyLevel)
	return profile, nil
}

func (s *Service) GetByID(id string) (*Profile, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetAll() ([]*Profile, error) {
	return s.repo.GetAll()
}

func (s *Service) Update(id string, dto UpdateCustomerDTO) (*Profile, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("customer update validation failed", "error", err, "profile_id", id)
		return nil, err
	}

	patch := dto.Patch()
	if len(patch) == 0 {
		return s.repo.GetByID(id)
	}

	profile, err := s.repo.Update(id, patch)
	if err != nil {
		s.logger.Error("failed to update customer profile", "error", err, "profile_id", id)
		return nil, err
	}
	return profile, nil
}

func (s *Service) Delete(id string) (*Profile, error) {
	profile, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("failed to delete customer profile", "error", err, "profile_id", id)
		return nil, err
	}

	s.logger.Info("customer profile deleted", "profile_id", id)
	return profile, nil
}

// List returns one filtered, sorted page of customer profiles with totals.
func (s *Service) List(query ListQuery) (*pagination.Result[*Profile], error) {
	result, err := s.repo.List(query.Normalized())
	if err != nil {
		s.logger.Error("failed to list customer profiles", "error", err)
		return nil, err
	}
	return result, nil
}

func (s *Service) FindByLoyaltyLevel(level LoyaltyLevel) ([]*Profile, error) {
	if !level.Valid() {
		return nil, errors.ErrInvalidLoyalty
	}
	return s.repo.GetByLoyaltyLevel(level)
}

func (s *Service) UpdateLoyaltyLevel(id string, dto UpdateLoyaltyDTO) (*Profile, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.repo.Update(id, map[string]interface{}{"loyalty_level": dto.LoyaltyLevel})
	if err != nil {
		s.logger.Error("failed to update loyalty level", "error", err, "profile_id", id)
		return nil, err
	}

	s.logger.Info("loyalty level updated", "profile_id", id, "loyalty_level", dto.LoyaltyLevel)
	return profile, nil
}

// UpdateOrderStats posts one order: totalOrders goes up by one and
// totalSpent by the order amount, in a single store-side increment.
func (s *Service) UpdateOrderStats(id string, dto OrderStatsDTO) (*Profile, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.repo.IncrementOrderStats(id, dto.OrderAmount)
	if err != nil {
		s.logger.Error("failed to update order stats", "error", err, "profile_id", id)
		return nil, err
	}

	s.logger.Info("order stats updated",
		"profile_id", id,
		"order_amount", dto.OrderAmount,
		"total_orders", profile.TotalOrders,
		"total_spent", profile.TotalSpent)
	return profile, nil
}

// TopCustomers returns the highest spenders in descending order of total
// spend, truncated to limit.
func (s *Service) TopCustomers(limit int) ([]*Profile, error) {
	if limit <= 0 {
		limit = DefaultTopCustomersLimit
	}
	return s.repo.GetTopBySpend(limit)
}
