package postgres

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	errors "github.com/frahmantamala/user-management/internal"
	"github.com/frahmantamala/user-management/internal/identity"
)

func TestIdentityRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "IdentityRepository Suite")
}

var _ = Describe("IdentityRepository", func() {
	var (
		db   *gorm.DB
		repo identity.Repository
	)

	newIdentity := func(email string, role identity.Role) *identity.Identity {
		return &identity.Identity{
			Email:        email,
			PasswordHash: "$2a$10$hash",
			Role:         role,
			ProfileKind:  identity.KindForRole(role),
		}
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.AutoMigrate(&identity.Identity{})).To(Succeed())

		repo = NewIdentityRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("Create", func() {
		It("persists the identity and assigns an id", func() {
			ident := newIdentity("one@example.com", identity.RoleCustomer)
			Expect(repo.Create(ident)).To(Succeed())
			Expect(ident.ID).NotTo(BeEmpty())
		})

		It("reports a duplicate email as a conflict", func() {
			Expect(repo.Create(newIdentity("dup@example.com", identity.RoleCustomer))).To(Succeed())

			err := repo.Create(newIdentity("dup@example.com", identity.RoleStaff))
			Expect(err).To(Equal(errors.ErrDuplicateEmail))
		})
	})

	Describe("GetByID and GetByEmail", func() {
		It("finds a stored identity either way", func() {
			ident := newIdentity("find@example.com", identity.RoleAdmin)
			Expect(repo.Create(ident)).To(Succeed())

			byID, err := repo.GetByID(ident.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(byID.Email).To(Equal("find@example.com"))

			byEmail, err := repo.GetByEmail("find@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(byEmail.ID).To(Equal(ident.ID))
		})

		It("reports not found for a missing id", func() {
			_, err := repo.GetByID("missing")
			Expect(err).To(Equal(errors.ErrIdentityNotFound))
		})

		It("reports not found for an unknown email", func() {
			_, err := repo.GetByEmail("nobody@example.com")
			Expect(err).To(Equal(errors.ErrIdentityNotFound))
		})
	})

	Describe("Update", func() {
		It("applies a column patch and returns the fresh record", func() {
			ident := newIdentity("patch@example.com", identity.RoleCustomer)
			Expect(repo.Create(ident)).To(Succeed())

			updated, err := repo.Update(ident.ID, map[string]interface{}{
				"role":         identity.RoleStaff,
				"profile_kind": identity.KindStaffProfile,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Role).To(Equal(identity.RoleStaff))
			Expect(updated.ProfileKind).To(Equal(identity.KindStaffProfile))
		})

		It("reports not found when no row matches", func() {
			_, err := repo.Update("missing", map[string]interface{}{"email": "new@example.com"})
			Expect(err).To(Equal(errors.ErrIdentityNotFound))
		})

		It("reports a duplicate email as a conflict", func() {
			Expect(repo.Create(newIdentity("first@example.com", identity.RoleCustomer))).To(Succeed())
			second := newIdentity("second@example.com", identity.RoleCustomer)
			Expect(repo.Create(second)).To(Succeed())

			_, err := repo.Update(second.ID, map[string]interface{}{"email": "first@example.com"})
			Expect(err).To(Equal(errors.ErrDuplicateEmail))
		})
	})

	Describe("Delete", func() {
		It("removes the record and returns it", func() {
			ident := newIdentity("gone@example.com", identity.RoleStaff)
			Expect(repo.Create(ident)).To(Succeed())

			deleted, err := repo.Delete(ident.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted.Email).To(Equal("gone@example.com"))

			_, err = repo.GetByID(ident.ID)
			Expect(err).To(Equal(errors.ErrIdentityNotFound))
		})

		It("reports not found for a missing id", func() {
			_, err := repo.Delete("missing")
			Expect(err).To(Equal(errors.ErrIdentityNotFound))
		})
	})

	Describe("GetByRole", func() {
		It("returns only identities holding the role", func() {
			Expect(repo.Create(newIdentity("a@example.com", identity.RoleAdmin))).To(Succeed())
			Expect(repo.Create(newIdentity("b@example.com", identity.RoleCustomer))).To(Succeed())
			Expect(repo.Create(newIdentity("c@example.com", identity.RoleCustomer))).To(Succeed())

			customers, err := repo.GetByRole(identity.RoleCustomer)
			Expect(err).NotTo(HaveOccurred())
			Expect(customers).To(HaveLen(2))
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			emails := []string{
				"anton@corp.com",
				"bianca@corp.com",
				"chandra@shop.io",
				"dian@shop.io",
				"hassan@corp.com",
			}
			for i, email := range emails {
				role := identity.RoleCustomer
				if i == 0 {
					role = identity.RoleAdmin
				}
				Expect(repo.Create(newIdentity(email, role))).To(Succeed())
			}
		})

		It("filters email as a case-insensitive substring", func() {
			result, err := repo.List(identity.ListQuery{Email: "CORP", Page: 1, Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Total).To(Equal(int64(3)))
			Expect(result.Data).To(HaveLen(3))
		})

		It("filters role as exact equality", func() {
			result, err := repo.List(identity.ListQuery{Role: "admin", Page: 1, Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Total).To(Equal(int64(1)))
			Expect(result.Data[0].Email).To(Equal("anton@corp.com"))
		})

		It("pages through a filtered set with stable totals", func() {
			result, err := repo.List(identity.ListQuery{
				Email:     "an",
				Page:      2,
				Limit:     2,
				SortBy:    "email",
				SortOrder: "asc",
			})
			Expect(err).NotTo(HaveOccurred())
			// anton, bianca, chandra, dian, hassan all contain "an"
			Expect(result.Total).To(Equal(int64(5)))
			Expect(result.TotalPages).To(Equal(3))
			Expect(result.Data).To(HaveLen(2))
			Expect(result.Data[0].Email).To(Equal("chandra@shop.io"))
			Expect(result.Data[1].Email).To(Equal("dian@shop.io"))
		})

		It("sorts by email when asked", func() {
			result, err := repo.List(identity.ListQuery{Page: 1, Limit: 10, SortBy: "email", SortOrder: "asc"})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Data[0].Email).To(Equal("anton@corp.com"))
		})

		It("falls back to created_at for an unknown sort key", func() {
			result, err := repo.List(identity.ListQuery{Page: 1, Limit: 10, SortBy: "passwordHash"})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Data).To(HaveLen(5))
		})
	})
})
