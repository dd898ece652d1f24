package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParams_Normalize(t *testing.T) {
	params := ListParams{Page: 0, Limit: 1000, Order: "sideways"}
	params.Normalize(10, 100)

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 100, params.Limit)
	assert.Equal(t, SortDesc, params.Order)

	params = ListParams{Page: 3, Order: SortAsc}
	params.Normalize(10, 100)

	assert.Equal(t, 10, params.Limit)
	assert.Equal(t, SortAsc, params.Order)
	assert.Equal(t, 20, params.Offset())
}
