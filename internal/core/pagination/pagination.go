package pagination

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	errors "github.com/frahmantamala/user-management/internal"
	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Params describes one page request. SortColumn must already be resolved to a
// real column name by the caller; user-facing sort keys never reach the query.
type Params struct {
	Page       int
	Limit      int
	SortColumn string
	SortOrder  string
}

// Result is one page of records plus the total count matching the same filter.
type Result[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// ParseQuery reads page/limit/sortBy/sortOrder from a query string. Absent
// values fall back to defaults; an explicit non-positive limit is rejected.
// The returned sort key is the raw user-facing name, callers map it to a
// column before building Params.
func ParseQuery(values url.Values) (page, limit int, sortBy, sortOrder string, err error) {
	page = DefaultPage
	limit = DefaultLimit
	sortOrder = OrderDesc

	if raw := values.Get("page"); raw != "" {
		if v, parseErr := strconv.Atoi(raw); parseErr == nil && v > 0 {
			page = v
		}
	}

	if raw := values.Get("limit"); raw != "" {
		v, parseErr := strconv.Atoi(raw)
		if parseErr != nil || v <= 0 {
			return 0, 0, "", "", errors.ErrInvalidPagination
		}
		limit = v
	}

	sortBy = values.Get("sortBy")
	if raw := values.Get("sortOrder"); raw == OrderAsc {
		sortOrder = OrderAsc
	}

	return page, limit, sortBy, sortOrder, nil
}

// Paginate runs the page fetch and the count against the same filtered query
// and assembles the result. The two reads are independent; no snapshot
// isolation is taken across them.
func Paginate[T any](query *gorm.DB, p Params) (*Result[T], error) {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit < 0 {
		return nil, errors.ErrInvalidPagination
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	data := make([]T, 0, p.Limit)
	fetch := query.Session(&gorm.Session{})
	if p.SortColumn != "" {
		fetch = fetch.Order(fmt.Sprintf("%s %s", p.SortColumn, direction(p.SortOrder)))
	}
	offset := (p.Page - 1) * p.Limit
	if err := fetch.Offset(offset).Limit(p.Limit).Find(&data).Error; err != nil {
		return nil, err
	}

	return &Result[T]{
		Data:       data,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(p.Limit))),
	}, nil
}

// direction treats anything other than asc as desc, matching the listing
// endpoints' default.
func direction(order string) string {
	if strings.EqualFold(order, OrderAsc) {
		return "ASC"
	}
	return "DESC"
}

// Substring builds a case-insensitive substring predicate for a text column.
func Substring(query *gorm.DB, column, term string) *gorm.DB {
	return query.Where(fmt.Sprintf("lower(%s) LIKE ?", column), "%"+strings.ToLower(term)+"%")
}
