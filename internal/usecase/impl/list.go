package impl

import (
	"strings"

	"tienda/config"
	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"
)

// normalizeListParams clamps paging to the configured limits.
func normalizeListParams(cfg *config.Config, params *repository.ListParams) {
	defaultLimit, maxLimit := cfg.PageLimits()
	params.Normalize(defaultLimit, maxLimit)
	params.Search = strings.TrimSpace(params.Search)
}

func newPage[T any](items []T, total int64, params repository.ListParams) *entity.Page[T] {
	if items == nil {
		items = []T{}
	}

	return &entity.Page[T]{
		Items:      items,
		Pagination: entity.NewPagination(total, params.Page, params.Limit),
	}
}

// trimmedOr returns the trimmed value of s, or current when s is nil.
func trimmedOr(s *string, current string) string {
	if s == nil {
		return current
	}

	return strings.TrimSpace(*s)
}

// cleanList trims every entry and drops the empty ones.
func cleanList(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			cleaned = append(cleaned, v)
		}
	}

	return cleaned
}
