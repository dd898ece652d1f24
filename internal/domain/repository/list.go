// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

// Sort directions accepted by list queries.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListParams are the paging, search and sort options shared by list queries.
// A zero Limit means no limit.
type ListParams struct {
	Page   int
	Limit  int
	Search string
	SortBy string
	Order  string
}

// Offset returns the number of rows to skip for the current page.
func (p ListParams) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}

	return (p.Page - 1) * p.Limit
}

// Normalize clamps page and limit and validates the sort direction.
func (p *ListParams) Normalize(defaultLimit, maxLimit int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if p.Order != SortAsc {
		p.Order = SortDesc
	}
}

// CuponFilter narrows coupon listings.
type CuponFilter struct {
	ListParams
	Activo *bool
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	ListParams
	Category string
	Estado   string
	MinPrice *float64
	MaxPrice *float64
	MinStock *int
	MaxStock *int
}

// OrderFilter narrows order listings.
type OrderFilter struct {
	ListParams
	Status   string
	UserID   uint
	DateFrom string
	DateTo   string
}

// UserFilter narrows user listings.
type UserFilter struct {
	ListParams
	Role string
}

// InventoryFilter narrows the stock report.
type InventoryFilter struct {
	ListParams
	Category    string
	StockStatus string
}
