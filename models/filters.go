package models

// Pagination bounds for buyer listings.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Sort keys accepted by the buyer list.
var sortColumns = map[string]bool{
	"createdAt": true,
	"updatedAt": true,
	"fullName":  true,
	"status":    true,
}

// BuyerFilters narrows, sorts, and paginates the buyer list. Empty string
// fields mean "no filter".
type BuyerFilters struct {
	Search       string `json:"search"`
	City         string `json:"city"`
	PropertyType string `json:"propertyType"`
	Status       string `json:"status"`
	Timeline     string `json:"timeline"`
	SortBy       string `json:"sortBy"`
	SortOrder    string `json:"sortOrder"`
	Page         int    `json:"page"`
	Limit        int    `json:"limit"`
}

// Normalize applies defaults and clamps pagination to the allowed range.
func (f *BuyerFilters) Normalize() {
	if !sortColumns[f.SortBy] {
		f.SortBy = "createdAt"
	}
	if f.SortOrder != "asc" {
		f.SortOrder = "desc"
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
}

// Offset returns the row offset for the normalized page.
func (f *BuyerFilters) Offset() int {
	return (f.Page - 1) * f.Limit
}

// BuyerPage is one page of results plus the total match count.
type BuyerPage struct {
	Buyers []Buyer `json:"buyers"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}
