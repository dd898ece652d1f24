package postgres

import (
	"testing"

	"tienda/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestInsertSingleton_IgnoresExistingRow(t *testing.T) {
	db := newDryRunDB(t)

	tests := []struct {
		name  string
		value any
		table string
	}{
		{name: "agencias", value: &model.AgenciaModel{ID: model.SingletonID, MinimoDelivery: 1, MaximoDelivery: 7}, table: `"agencias"`},
		{name: "fotos", value: &model.FotosModel{ID: model.SingletonID}, table: `"fotos"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
				return insertSingleton(tx, tt.value)
			})

			assert.Contains(t, sql, "INSERT INTO "+tt.table)
			assert.Contains(t, sql, `ON CONFLICT ("id") DO NOTHING`)
			assert.Contains(t, sql, `"id"`)
		})
	}
}
