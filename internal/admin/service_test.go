package admin_test

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	errors "github.com/frahmantamala/user-management/internal"
	"github.com/frahmantamala/user-management/internal/admin"
)

func TestAdminService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "AdminService Suite")
}

type mockAdminRepository struct {
	profiles map[string]*admin.Profile
	nextID   int
}

func newMockAdminRepository() *mockAdminRepository {
	return &mockAdminRepository{profiles: make(map[string]*admin.Profile), nextID: 1}
}

func (m *mockAdminRepository) Create(profile *admin.Profile) error {
	profile.ID = fmt.Sprintf("adm-%d", m.nextID)
	m.nextID++
	stored := *profile
	m.profiles[profile.ID] = &stored
	return nil
}

func (m *mockAdminRepository) GetByID(id string) (*admin.Profile, error) {
	profile, exists := m.profiles[id]
	if !exists {
		return nil, errors.ErrProfileNotFound
	}
	copied := *profile
	return &copied, nil
}

func (m *mockAdminRepository) GetAll() ([]*admin.Profile, error) {
	var result []*admin.Profile
	for _, profile := range m.profiles {
		copied := *profile
		result = append(result, &copied)
	}
	return result, nil
}

func (m *mockAdminRepository) GetByDepartment(department string) ([]*admin.Profile, error) {
	var result []*admin.Profile
	for _, profile := range m.profiles {
		if profile.Department != nil && *profile.Department == department {
			copied := *profile
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (m *mockAdminRepository) Update(id string, patch map[string]interface{}) (*admin.Profile, error) {
	profile, exists := m.profiles[id]
	if !exists {
		return nil, errors.ErrProfileNotFound
	}
	if name, ok := patch["name"].(string); ok {
		profile.Name = name
	}
	if level, ok := patch["access_level"].(int); ok {
		profile.AccessLevel = level
	}
	copied := *profile
	return &copied, nil
}

func (m *mockAdminRepository) Delete(id string) (*admin.Profile, error) {
	profile, exists := m.profiles[id]
	if !exists {
		return nil, errors.ErrProfileNotFound
	}
	delete(m.profiles, id)
	return profile, nil
}

var _ = Describe("AdminService", func() {
	var (
		repo    *mockAdminRepository
		service *admin.Service
	)

	BeforeEach(func() {
		repo = newMockAdminRepository()
		service = admin.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	Describe("Create", func() {
		It("applies the collection defaults", func() {
			profile, err := service.Create(admin.CreateAdminDTO{Name: "Root", AccessLevel: 5})
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.AdminLevel).To(Equal(admin.DefaultAdminLevel))
			Expect(profile.IsActive).To(BeTrue())
		})

		It("honors an explicit admin level", func() {
			level := "moderator"
			profile, err := service.Create(admin.CreateAdminDTO{Name: "Mod", AccessLevel: 3, AdminLevel: &level})
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.AdminLevel).To(Equal("moderator"))
		})

		It("rejects an access level outside 1-10", func() {
			_, err := service.Create(admin.CreateAdminDTO{Name: "Root", AccessLevel: 11})
			Expect(err).To(HaveOccurred())

			_, err = service.Create(admin.CreateAdminDTO{Name: "Root", AccessLevel: 0})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("FindByDepartment", func() {
		It("returns only profiles in the department", func() {
			eng := "Engineering"
			ops := "Operations"
			_, err := service.Create(admin.CreateAdminDTO{Name: "A", AccessLevel: 5, Department: &eng})
			Expect(err).NotTo(HaveOccurred())
			_, err = service.Create(admin.CreateAdminDTO{Name: "B", AccessLevel: 5, Department: &ops})
			Expect(err).NotTo(HaveOccurred())

			profiles, err := service.FindByDepartment("Engineering")
			Expect(err).NotTo(HaveOccurred())
			Expect(profiles).To(HaveLen(1))
			Expect(profiles[0].Name).To(Equal("A"))
		})
	})

	Describe("Update", func() {
		It("applies a partial update", func() {
			created, err := service.Create(admin.CreateAdminDTO{Name: "Before", AccessLevel: 5})
			Expect(err).NotTo(HaveOccurred())

			name := "After"
			updated, err := service.Update(created.ID, admin.UpdateAdminDTO{Name: &name})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("After"))
		})

		It("rejects an out-of-range access level", func() {
			created, err := service.Create(admin.CreateAdminDTO{Name: "Root", AccessLevel: 5})
			Expect(err).NotTo(HaveOccurred())

			bad := 42
			_, err = service.Update(created.ID, admin.UpdateAdminDTO{AccessLevel: &bad})
			Expect(err).To(HaveOccurred())
		})

		It("returns the current record for an empty patch", func() {
			created, err := service.Create(admin.CreateAdminDTO{Name: "Same", AccessLevel: 5})
			Expect(err).NotTo(HaveOccurred())

			updated, err := service.Update(created.ID, admin.UpdateAdminDTO{})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Same"))
		})
	})

	Describe("Delete", func() {
		It("removes the profile and returns it", func() {
			created, err := service.Create(admin.CreateAdminDTO{Name: "Gone", AccessLevel: 5})
			Expect(err).NotTo(HaveOccurred())

			deleted, err := service.Delete(created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted.Name).To(Equal("Gone"))

			_, err = service.GetByID(created.ID)
			Expect(err).To(Equal(errors.ErrProfileNotFound))
		})
	})
})
