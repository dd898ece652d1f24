package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestNameIndexesIgnoreCase(t *testing.T) {
	tests := []struct {
		name  string
		model any
		field string
		want  string
	}{
		{name: "categories", model: &CategoryModel{}, field: "Name", want: "idx_categories_name_lower,unique,expression:LOWER(name)"},
		{name: "colecciones", model: &ColeccionModel{}, field: "Nombre", want: "idx_colecciones_nombre_lower,unique,expression:LOWER(nombre)"},
		{name: "cupones", model: &CuponModel{}, field: "CodigoCupon", want: "idx_cupones_codigo_upper,unique,expression:UPPER(codigo_cupon)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sch, err := schema.Parse(tt.model, &sync.Map{}, schema.NamingStrategy{})
			require.NoError(t, err)

			field := sch.LookUpField(tt.field)
			require.NotNil(t, field)
			assert.Equal(t, tt.want, field.TagSettings["INDEX"])
			assert.NotContains(t, field.TagSettings, "UNIQUEINDEX")
		})
	}
}
