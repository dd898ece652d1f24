package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ProductoID uint `json:"productoId" validate:"required"`
	Quantity   int  `json:"quantity" validate:"required,min=1"`
}

type testRequest struct {
	Name   string     `json:"name" validate:"required,max=5"`
	Status string     `json:"status" validate:"omitempty,order_status"`
	Role   *string    `json:"role" validate:"omitempty,user_role"`
	Items  []testItem `json:"items" validate:"required,min=1,dive"`
}

func TestValidator_FieldErrorsUseJSONNames(t *testing.T) {
	v := New()
	role := "OWNER"

	err := v.Validate(&testRequest{
		Name:   "too long",
		Status: "Perdido",
		Role:   &role,
		Items:  []testItem{{ProductoID: 1, Quantity: 0}},
	})
	require.Error(t, err)

	fields := FieldErrors(err)
	require.Len(t, fields, 4)

	byField := map[string]string{}
	for _, f := range fields {
		byField[f.Field] = f.Rule
	}
	assert.Equal(t, "max", byField["name"])
	assert.Equal(t, TagOrderStatus, byField["status"])
	assert.Equal(t, TagUserRole, byField["role"])
	assert.Equal(t, "required", byField["items[0].quantity"])
}

func TestValidator_ValidRequest(t *testing.T) {
	v := New()
	role := "ADMIN"

	err := v.Validate(&testRequest{
		Name:   "ok",
		Status: "Pagado",
		Role:   &role,
		Items:  []testItem{{ProductoID: 3, Quantity: 2}},
	})
	assert.NoError(t, err)
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
