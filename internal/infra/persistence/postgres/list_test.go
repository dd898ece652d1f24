package postgres

import (
	"testing"

	"tienda/internal/domain/repository"
	"tienda/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=localhost user=tienda dbname=tienda sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%polo%", containsPattern("  polo "))
	assert.Equal(t, `%50\%\_off%`, containsPattern("50%_off"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
}

func TestSortAndPage(t *testing.T) {
	db := newDryRunDB(t)

	tests := []struct {
		name    string
		params  repository.ListParams
		want    []string
		notWant []string
	}{
		{
			name:   "known column ascending with page",
			params: repository.ListParams{Page: 3, Limit: 10, SortBy: "name", Order: repository.SortAsc},
			want:   []string{`ORDER BY "name","id"`, "LIMIT 10", "OFFSET 20"},
		},
		{
			name:    "unknown column falls back descending",
			params:  repository.ListParams{Page: 1, Limit: 5, SortBy: "password"},
			want:    []string{`ORDER BY "created_at" DESC,"id" DESC`, "LIMIT 5"},
			notWant: []string{"password", "OFFSET"},
		},
		{
			name:    "zero limit is unbounded",
			params:  repository.ListParams{SortBy: "name", Order: repository.SortAsc},
			notWant: []string{"LIMIT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
				var rows []model.CategoryModel

				return sortAndPage(tx.Model(&model.CategoryModel{}), tt.params, categorySortColumns, "created_at").Find(&rows)
			})

			for _, fragment := range tt.want {
				assert.Contains(t, sql, fragment)
			}
			for _, fragment := range tt.notWant {
				assert.NotContains(t, sql, fragment)
			}
		})
	}
}

func TestSearchAny(t *testing.T) {
	db := newDryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []model.UserModel

		return searchAny(tx.Model(&model.UserModel{}), "ana", "name", "email", "dni").Find(&rows)
	})
	assert.Contains(t, sql, "(name ILIKE '%ana%' OR email ILIKE '%ana%' OR dni ILIKE '%ana%')")

	sql = db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []model.UserModel

		return searchAny(tx.Model(&model.UserModel{}), "   ", "name").Find(&rows)
	})
	assert.NotContains(t, sql, "ILIKE")
}
