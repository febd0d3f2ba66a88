package pagination_test

import (
	"net/url"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	errors "github.com/frahmantamala/user-management/internal"
	"github.com/frahmantamala/user-management/internal/core/pagination"
)

func TestPagination(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Pagination Suite")
}

type record struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time
}

var _ = Describe("ParseQuery", func() {
	It("falls back to defaults when nothing is supplied", func() {
		page, limit, sortBy, sortOrder, err := pagination.ParseQuery(url.Values{})
		Expect(err).NotTo(HaveOccurred())
		Expect(page).To(Equal(1))
		Expect(limit).To(Equal(10))
		Expect(sortBy).To(BeEmpty())
		Expect(sortOrder).To(Equal(pagination.OrderDesc))
	})

	It("reads explicit values", func() {
		values := url.Values{}
		values.Set("page", "2")
		values.Set("limit", "3")
		values.Set("sortBy", "name")
		values.Set("sortOrder", "asc")

		page, limit, sortBy, sortOrder, err := pagination.ParseQuery(values)
		Expect(err).NotTo(HaveOccurred())
		Expect(page).To(Equal(2))
		Expect(limit).To(Equal(3))
		Expect(sortBy).To(Equal("name"))
		Expect(sortOrder).To(Equal(pagination.OrderAsc))
	})

	It("rejects an explicit non-positive limit", func() {
		values := url.Values{}
		values.Set("limit", "0")
		_, _, _, _, err := pagination.ParseQuery(values)
		Expect(err).To(Equal(errors.ErrInvalidPagination))

		values.Set("limit", "-5")
		_, _, _, _, err = pagination.ParseQuery(values)
		Expect(err).To(Equal(errors.ErrInvalidPagination))
	})

	It("normalizes a non-positive page to the first page", func() {
		values := url.Values{}
		values.Set("page", "-1")
		page, _, _, _, err := pagination.ParseQuery(values)
		Expect(err).NotTo(HaveOccurred())
		Expect(page).To(Equal(1))
	})
})

var _ = Describe("Paginate", func() {
	var db *gorm.DB

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&record{})).To(Succeed())

		for _, name := range []string{"Anton", "Bianca", "Chandra", "Dian", "Hassan"} {
			Expect(db.Create(&record{Name: name}).Error).To(Succeed())
		}
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	It("returns one page with totals computed over the whole filter", func() {
		result, err := pagination.Paginate[*record](db.Model(&record{}), pagination.Params{
			Page:       2,
			Limit:      2,
			SortColumn: "name",
			SortOrder:  pagination.OrderAsc,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Total).To(Equal(int64(5)))
		Expect(result.TotalPages).To(Equal(3))
		Expect(result.Page).To(Equal(2))
		Expect(result.Limit).To(Equal(2))
		Expect(result.Data).To(HaveLen(2))
		Expect(result.Data[0].Name).To(Equal("Chandra"))
		Expect(result.Data[1].Name).To(Equal("Dian"))
	})

	It("counts the filtered set, not the page", func() {
		q := pagination.Substring(db.Model(&record{}), "name", "an")
		result, err := pagination.Paginate[*record](q, pagination.Params{
			Page:       1,
			Limit:      2,
			SortColumn: "name",
			SortOrder:  pagination.OrderAsc,
		})
		Expect(err).NotTo(HaveOccurred())
		// every seeded name contains "an" case-insensitively
		Expect(result.Total).To(Equal(int64(5)))
		Expect(result.TotalPages).To(Equal(3))
		Expect(result.Data).To(HaveLen(2))
	})

	It("returns zero total pages for an empty result", func() {
		q := pagination.Substring(db.Model(&record{}), "name", "zzz")
		result, err := pagination.Paginate[*record](q, pagination.Params{Page: 1, Limit: 10})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Total).To(BeZero())
		Expect(result.TotalPages).To(BeZero())
		Expect(result.Data).To(BeEmpty())
	})

	It("returns an empty page past the end without error", func() {
		result, err := pagination.Paginate[*record](db.Model(&record{}), pagination.Params{
			Page:       4,
			Limit:      2,
			SortColumn: "name",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Data).To(BeEmpty())
		Expect(result.Total).To(Equal(int64(5)))
	})

	It("rejects a negative limit", func() {
		_, err := pagination.Paginate[*record](db.Model(&record{}), pagination.Params{Page: 1, Limit: -1})
		Expect(err).To(Equal(errors.ErrInvalidPagination))
	})

	It("matches substrings case-insensitively", func() {
		q := pagination.Substring(db.Model(&record{}), "name", "HASS")
		result, err := pagination.Paginate[*record](q, pagination.Params{Page: 1, Limit: 10})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Data).To(HaveLen(1))
		Expect(result.Data[0].Name).To(Equal("Hassan"))
	})
})
