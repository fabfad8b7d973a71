package dto

import "strings"

// PropertyFilter carries the search predicates plus sort and pagination
// parameters for GET /api/properties. Optional predicates use pointers so
// an absent parameter imposes no constraint.
type PropertyFilter struct {
	Name           string   `form:"name"`
	Address        string   `form:"address"`
	MinPrice       *float64 `form:"minPrice"`
	MaxPrice       *float64 `form:"maxPrice"`
	Year           *int     `form:"year"`
	SortBy         string   `form:"sortBy,default=name"`
	SortDescending bool     `form:"sortDescending"`
	PageNumber     int      `form:"pageNumber,default=1"`
	PageSize       int      `form:"pageSize,default=10"`
}

// sortFields is the allow-list of sortable fields.
var sortFields = map[string]bool{
	"name":    true,
	"address": true,
	"price":   true,
	"year":    true,
}

// SortField returns the normalized (lowercase) sort field. Unknown values
// fall back to "name"; Validate rejects them before this matters.
func (f *PropertyFilter) SortField() string {
	field := strings.ToLower(f.SortBy)
	if !sortFields[field] {
		return "name"
	}
	return field
}

// Validate checks the filter and returns per-field error messages, or nil
// when the filter is valid.
func (f *PropertyFilter) Validate() map[string][]string {
	errs := map[string][]string{}
	add := func(field, msg string) {
		errs[field] = append(errs[field], msg)
	}

	if f.PageNumber < 1 {
		add("pageNumber", "Page number must be greater than 0")
	}
	if f.PageSize < 1 || f.PageSize > 100 {
		add("pageSize", "Page size must be between 1 and 100")
	}
	if f.MinPrice != nil && *f.MinPrice < 0 {
		add("minPrice", "Minimum price must be greater than or equal to 0")
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		add("maxPrice", "Maximum price must be greater than or equal to 0")
	}
	if f.MinPrice != nil && f.MaxPrice != nil &&
		*f.MinPrice >= 0 && *f.MaxPrice >= 0 && *f.MinPrice > *f.MaxPrice {
		add("minPrice", "Minimum price must be less than or equal to maximum price")
	}
	if !sortFields[strings.ToLower(f.SortBy)] {
		add("sortBy", "Sort field must be one of: name, address, price, year")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
