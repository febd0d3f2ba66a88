package cmd

import (
	goerrors "errors"
	"fmt"
	"log"

	"github.com/frahmantamala/user-management/internal/admin"
	"github.com/frahmantamala/user-management/internal/customer"
	"github.com/frahmantamala/user-management/internal/identity"
	"github.com/frahmantamala/user-management/internal/staff"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample identities and role profiles for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer sqlDB.Close()

		db, err := initGorm(sqlDB)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{"identities", "admin_profiles", "customer_profiles", "staff_profiles"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte("password"), cfg.Security.BCryptCost)
		if err != nil {
			log.Fatalf("failed to hash seed password: %v", err)
		}

		department := "Engineering"
		position := "Backend Engineer"
		company := "Acme Corp"

		adminProfile := &admin.Profile{
			Name:        "Fadhil Admin",
			Department:  &department,
			AccessLevel: 10,
			Permissions: []string{"manage_users", "manage_profiles"},
			IsActive:    true,
			AdminLevel:  admin.DefaultAdminLevel,
		}
		customerProfile := &customer.Profile{
			Name:              "Citra Customer",
			Company:           &company,
			LoyaltyLevel:      customer.LoyaltyBronze,
			EmailSubscription: true,
			SmsSubscription:   true,
			Interests:         []string{"electronics", "books"},
		}
		staffProfile := &staff.Profile{
			Name:           "Sari Staff",
			Department:     &department,
			Position:       &position,
			EmploymentType: staff.EmploymentFullTime,
			Skills:         []string{"go", "postgres"},
			IsActive:       true,
		}

		seedIdentity(db, "admin@mail.com", string(hash), identity.RoleAdmin, adminProfile)
		seedIdentity(db, "customer@mail.com", string(hash), identity.RoleCustomer, customerProfile)
		seedIdentity(db, "staff@mail.com", string(hash), identity.RoleStaff, staffProfile)

		fmt.Println("Seeding complete")
	},
}

// seedIdentity inserts the profile and its identity unless an identity with
// the same email already exists.
func seedIdentity(db *gorm.DB, email, passwordHash string, role identity.Role, profile interface{}) {
	var existing identity.Identity
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		fmt.Printf("identity %s already exists, skipping\n", email)
		return
	}
	if !goerrors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("failed to check identity %s: %v", email, err)
	}

	if err := db.Create(profile).Error; err != nil {
		log.Fatalf("failed to seed profile for %s: %v", email, err)
	}

	var profileID string
	switch p := profile.(type) {
	case *admin.Profile:
		profileID = p.ID
	case *customer.Profile:
		profileID = p.ID
	case *staff.Profile:
		profileID = p.ID
	}

	ident := &identity.Identity{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		ProfileID:    &profileID,
		ProfileKind:  identity.KindForRole(role),
	}
	if err := db.Create(ident).Error; err != nil {
		log.Fatalf("failed to seed identity %s: %v", email, err)
	}

	fmt.Printf("Seeded identity %s (%s)\n", email, role)
}
