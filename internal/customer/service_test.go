package customer_test

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	errors "github.com/frahmantamala/user-management/internal"
	"github.com/frahmantamala/user-management/internal/core/pagination"
	"github.com/frahmantamala/user-management/internal/customer"
)

func TestCustomerService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "CustomerService Suite")
}

// Mock repository for testing
type mockCustomerRepository struct {
	profiles map[string]*customer.Profile
	nextID   int
}

func newMockCustomerRepository() *mockCustomerRepository {
	return &mockCustomerRepository{
		profiles: make(map[string]*customer.Profile),
		nextID:   1,
	}
}

func (m *mockCustomerRepository) Create(profile *customer.Profile) error {
	profile.ID = fmt.Sprintf("cust-%d", m.nextID)
	m.nextID++
	stored := *profile
	m.profiles[profile.ID] = &stored
	return nil
}

func (m *mockCustomerRepository) GetByID(id string) (*customer.Profile, error) {
	profile, exists := m.profiles[id]
	if !exists {
		return nil, errors.ErrProfileNotFound
	}
	copied := *profile
	return &copied, nil
}

func (m *mockCustomerRepository) GetAll() ([]*customer.Profile, error) {
	var result []*customer.Profile
	for _, profile := range m.profiles {
		copied := *profile
		result = append(result, &copied)
	}
	return result, nil
}

func (m *mockCustomerRepository) Update(id string, patch map[string]interface{}) (*customer.Profile, error) {
	profile, exists := m.profiles[id]
	if !exists {
		return nil, errors.ErrProfileNotFound
	}
	for column, value := range patch {
		switch column {
		case "name":
			profile.Name = value.(string)
		case "loyalty_level":
			profile.LoyaltyLevel = value.(customer.LoyaltyLevel)
		}
	}
	copied := *profile
	return &copied, nil
}

func (m *mockCustomerRepository) Delete(id string) (*customer.Profile, error) {
	profile, exists := m.profiles[id]
	if !exists {
		return nil, errors.ErrProfileNotFound
	}
	delete(m.profiles, id)
	return profile, nil
}

func (m *mockCustomerRepository) List(query customer.ListQuery) (*pagination.Result[*customer.Profile], error) {
	profiles, _ := m.GetAll()
	return &pagination.Result[*customer.Profile]{
		Data:       profiles,
		Total:      int64(len(profiles)),
		Page:       1,
		Limit:      pagination.DefaultLimit,
		TotalPages: 1,
	}, nil
}

func (m *mockCustomerRepository) GetByLoyaltyLevel(level customer.LoyaltyLevel) ([]*customer.Profile, error) {
	var result []*customer.Profile
	for _, profile := range m.profiles {
		if profile.LoyaltyLevel == level {
			copied := *profile
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (m *mockCustomerRepository) IncrementOrderStats(id string, orderAmount float64) (*customer.Profile, error) {
	profile, exists := m.profiles[id]
	if !exists {
		return nil, errors.ErrProfileNotFound
	}
	profile.TotalOrders++
	profile.TotalSpent += orderAmount
	copied := *profile
	return &copied, nil
}

func (m *mockCustomerRepository) GetTopBySpend(limit int) ([]*customer.Profile, error) {
	profiles, _ := m.GetAll()
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].TotalSpent > profiles[j].TotalSpent
	})
	if len(profiles) > limit {
		profiles = profiles[:limit]
	}
	return profiles, nil
}

var _ = Describe("CustomerService", func() {
	var (
		repo    *mockCustomerRepository
		service *customer.Service
	)

	BeforeEach(func() {
		repo = newMockCustomerRepository()
		service = customer.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	Describe("Create", func() {
		It("applies the collection defaults", func() {
			profile, err := service.Create(customer.CreateCustomerDTO{Name: "Citra"})
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.LoyaltyLevel).To(Equal(customer.LoyaltyBronze))
			Expect(profile.TotalOrders).To(BeZero())
			Expect(profile.TotalSpent).To(BeZero())
			Expect(profile.EmailSubscription).To(BeTrue())
			Expect(profile.SmsSubscription).To(BeTrue())
		})

		It("honors explicit overrides", func() {
			gold := customer.LoyaltyGold
			off := false
			profile, err := service.Create(customer.CreateCustomerDTO{
				Name:              "Gilda",
				LoyaltyLevel:      &gold,
				EmailSubscription: &off,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.LoyaltyLevel).To(Equal(customer.LoyaltyGold))
			Expect(profile.EmailSubscription).To(BeFalse())
			Expect(profile.SmsSubscription).To(BeTrue())
		})

		It("rejects a missing name", func() {
			_, err := service.Create(customer.CreateCustomerDTO{})
			Expect(err).To(HaveOccurred())
		})

		It("rejects an unknown loyalty level", func() {
			diamond := customer.LoyaltyLevel("diamond")
			_, err := service.Create(customer.CreateCustomerDTO{Name: "X", LoyaltyLevel: &diamond})
			Expect(err).To(Equal(errors.ErrInvalidLoyalty))
		})
	})

	Describe("FindByLoyaltyLevel", func() {
		It("rejects an unknown level before touching the store", func() {
			_, err := service.FindByLoyaltyLevel(customer.LoyaltyLevel("wood"))
			Expect(err).To(Equal(errors.ErrInvalidLoyalty))
		})

		It("returns profiles at the level", func() {
			silver := customer.LoyaltySilver
			_, err := service.Create(customer.CreateCustomerDTO{Name: "S", LoyaltyLevel: &silver})
			Expect(err).NotTo(HaveOccurred())
			_, err = service.Create(customer.CreateCustomerDTO{Name: "B"})
			Expect(err).NotTo(HaveOccurred())

			profiles, err := service.FindByLoyaltyLevel(customer.LoyaltySilver)
			Expect(err).NotTo(HaveOccurred())
			Expect(profiles).To(HaveLen(1))
		})
	})

	Describe("UpdateLoyaltyLevel", func() {
		It("moves the profile to the new level", func() {
			created, err := service.Create(customer.CreateCustomerDTO{Name: "Mover"})
			Expect(err).NotTo(HaveOccurred())

			updated, err := service.UpdateLoyaltyLevel(created.ID, customer.UpdateLoyaltyDTO{LoyaltyLevel: customer.LoyaltyPlatinum})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.LoyaltyLevel).To(Equal(customer.LoyaltyPlatinum))
		})

		It("rejects an unknown level", func() {
			created, err := service.Create(customer.CreateCustomerDTO{Name: "Mover"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.UpdateLoyaltyLevel(created.ID, customer.UpdateLoyaltyDTO{LoyaltyLevel: "wood"})
			Expect(err).To(Equal(errors.ErrInvalidLoyalty))
		})
	})

	Describe("UpdateOrderStats", func() {
		It("posts one order per call", func() {
			created, err := service.Create(customer.CreateCustomerDTO{Name: "Buyer"})
			Expect(err).NotTo(HaveOccurred())

			updated, err := service.UpdateOrderStats(created.ID, customer.OrderStatsDTO{OrderAmount: 99.99})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.TotalOrders).To(Equal(1))
			Expect(updated.TotalSpent).To(BeNumerically("~", 99.99, 1e-9))
		})

		It("rejects a negative amount", func() {
			created, err := service.Create(customer.CreateCustomerDTO{Name: "Buyer"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.UpdateOrderStats(created.ID, customer.OrderStatsDTO{OrderAmount: -1})
			Expect(err).To(HaveOccurred())
		})

		It("accepts a zero amount order", func() {
			created, err := service.Create(customer.CreateCustomerDTO{Name: "Buyer"})
			Expect(err).NotTo(HaveOccurred())

			updated, err := service.UpdateOrderStats(created.ID, customer.OrderStatsDTO{OrderAmount: 0})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.TotalOrders).To(Equal(1))
			Expect(updated.TotalSpent).To(BeZero())
		})
	})

	Describe("TopCustomers", func() {
		BeforeEach(func() {
			for i := 1; i <= 15; i++ {
				created, err := service.Create(customer.CreateCustomerDTO{Name: fmt.Sprintf("C%02d", i)})
				Expect(err).NotTo(HaveOccurred())
				for j := 0; j < i; j++ {
					_, err = service.UpdateOrderStats(created.ID, customer.OrderStatsDTO{OrderAmount: 100})
					Expect(err).NotTo(HaveOccurred())
				}
			}
		})

		It("defaults the limit to ten", func() {
			top, err := service.TopCustomers(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(top).To(HaveLen(customer.DefaultTopCustomersLimit))
		})

		It("truncates to the requested limit in descending spend order", func() {
			top, err := service.TopCustomers(5)
			Expect(err).NotTo(HaveOccurred())
			Expect(top).To(HaveLen(5))
			Expect(top[0].TotalSpent).To(Equal(1500.0))
			for i := 1; i < len(top); i++ {
				Expect(top[i].TotalSpent).To(BeNumerically("<=", top[i-1].TotalSpent))
			}
		})
	})
})
