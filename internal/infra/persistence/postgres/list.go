package postgres

import (
	"strings"

	"tienda/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere in a column.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(s)) + "%"
}

// searchAny restricts q to rows where any of columns contains term, ignoring case.
func searchAny(q *gorm.DB, term string, columns ...string) *gorm.DB {
	if strings.TrimSpace(term) == "" || len(columns) == 0 {
		return q
	}

	pattern := containsPattern(term)
	conds := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, column := range columns {
		conds = append(conds, column+" ILIKE ?")
		args = append(args, pattern)
	}

	return q.Where("("+strings.Join(conds, " OR ")+")", args...)
}

// sortAndPage applies ORDER BY, LIMIT and OFFSET. sortColumns maps the
// accepted sortBy values to columns; anything else sorts by fallback. The id
// tiebreaker keeps pages stable.
func sortAndPage(q *gorm.DB, params repository.ListParams, sortColumns map[string]string, fallback string) *gorm.DB {
	column, ok := sortColumns[params.SortBy]
	if !ok {
		column = fallback
	}
	desc := params.Order != repository.SortAsc

	q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc})
	if column != "id" {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc})
	}

	if params.Limit > 0 {
		q = q.Limit(params.Limit).Offset(params.Offset())
	}

	return q
}
