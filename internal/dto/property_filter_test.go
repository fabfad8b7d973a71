package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func validFilter() PropertyFilter {
	return PropertyFilter{
		Name:       "Villa",
		Address:    "Miami",
		MinPrice:   floatPtr(100000),
		MaxPrice:   floatPtr(500000),
		Year:       intPtr(2020),
		SortBy:     "price",
		PageNumber: 1,
		PageSize:   10,
	}
}

func TestValidateValidFilter(t *testing.T) {
	f := validFilter()
	assert.Nil(t, f.Validate())
}

func TestValidateDefaults(t *testing.T) {
	f := PropertyFilter{SortBy: "name", PageNumber: 1, PageSize: 10}
	assert.Nil(t, f.Validate())
}

func TestValidatePageNumber(t *testing.T) {
	for _, page := range []int{0, -1} {
		f := validFilter()
		f.PageNumber = page
		errs := f.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, []string{"Page number must be greater than 0"}, errs["pageNumber"])
	}
}

func TestValidatePageSize(t *testing.T) {
	for _, size := range []int{0, -5, 101} {
		f := validFilter()
		f.PageSize = size
		errs := f.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, []string{"Page size must be between 1 and 100"}, errs["pageSize"])
	}

	for _, size := range []int{1, 100} {
		f := validFilter()
		f.PageSize = size
		assert.Nil(t, f.Validate())
	}
}

func TestValidateNegativePrices(t *testing.T) {
	f := validFilter()
	f.MinPrice = floatPtr(-100)
	f.MaxPrice = nil
	errs := f.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"Minimum price must be greater than or equal to 0"}, errs["minPrice"])

	f = validFilter()
	f.MinPrice = nil
	f.MaxPrice = floatPtr(-500)
	errs = f.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"Maximum price must be greater than or equal to 0"}, errs["maxPrice"])
}

func TestValidateZeroPricesPass(t *testing.T) {
	f := validFilter()
	f.MinPrice = floatPtr(0)
	f.MaxPrice = floatPtr(0)
	assert.Nil(t, f.Validate())
}

func TestValidateInvertedPriceRange(t *testing.T) {
	f := validFilter()
	f.MinPrice = floatPtr(500000)
	f.MaxPrice = floatPtr(100000)
	errs := f.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"Minimum price must be less than or equal to maximum price"}, errs["minPrice"])
}

func TestValidateSortBy(t *testing.T) {
	f := validFilter()
	f.SortBy = "invalid"
	errs := f.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"Sort field must be one of: name, address, price, year"}, errs["sortBy"])

	for _, sortBy := range []string{"name", "address", "price", "year", "Name", "PRICE", "Year"} {
		f := validFilter()
		f.SortBy = sortBy
		assert.Nil(t, f.Validate(), "sortBy %q should be accepted", sortBy)
	}
}

func TestValidateCollectsMultipleErrors(t *testing.T) {
	f := PropertyFilter{PageNumber: 0, PageSize: 0, SortBy: "bogus"}
	errs := f.Validate()
	assert.Len(t, errs, 3)
}

func TestSortField(t *testing.T) {
	cases := map[string]string{
		"name":    "name",
		"Price":   "price",
		"YEAR":    "year",
		"address": "address",
		"bogus":   "name",
		"":        "name",
	}
	for in, want := range cases {
		f := PropertyFilter{SortBy: in}
		assert.Equal(t, want, f.SortField(), "sortBy %q", in)
	}
}
