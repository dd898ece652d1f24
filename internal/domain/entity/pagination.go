package entity

// Pagination describes one page of a list result.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination computes the page count for total rows split by limit.
func NewPagination(total int64, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 && total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// Page is a list result together with its pagination.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}
