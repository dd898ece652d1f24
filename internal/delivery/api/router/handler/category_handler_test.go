package handler

import (
	"net/http"
	"testing"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	mockUC "tienda/internal/mocks/usecase"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type categoryHandlerFixtures struct {
	echo       *echo.Echo
	categoryUC *mockUC.MockCategoryUsecase
}

func createTestCategoryHandler(t *testing.T) categoryHandlerFixtures {
	categoryUC := mockUC.NewMockCategoryUsecase(t)
	h := NewCategoryHandler(CategoryHandlerParams{CategoryUC: categoryUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/api/categories", h.ListCategories)
	e.GET("/api/categories/:id", h.GetCategory)
	e.POST("/api/categories", h.CreateCategory)
	e.PUT("/api/categories/:id", h.UpdateCategory)
	e.DELETE("/api/categories/:id", h.DeleteCategory)

	return categoryHandlerFixtures{echo: e, categoryUC: categoryUC}
}

func TestCategoryHandler_MalformedID(t *testing.T) {
	for _, target := range []string{
		"/api/categories/abc",
		"/api/categories/0",
		"/api/categories/-4",
		"/api/categories/18446744073709551615",
		"/api/categories/9223372036854775808",
	} {
		fx := createTestCategoryHandler(t)

		rec := doRequest(fx.echo, http.MethodGet, target, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_ID", env.Error.Code)
		fx.categoryUC.AssertNotCalled(t, "GetCategory", mock.Anything, mock.Anything)
	}
}

func TestCategoryHandler_CreateCategory_ValidationFailed(t *testing.T) {
	fx := createTestCategoryHandler(t)

	rec := doRequest(fx.echo, http.MethodPost, "/api/categories", `{"description":"sin nombre"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, string(env.Error.Details), `"field":"name"`)
}

func TestCategoryHandler_CreateCategory_MalformedJSON(t *testing.T) {
	fx := createTestCategoryHandler(t)

	rec := doRequest(fx.echo, http.MethodPost, "/api/categories", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestCategoryHandler_CreateCategory_Duplicate(t *testing.T) {
	fx := createTestCategoryHandler(t)

	fx.categoryUC.EXPECT().
		CreateCategory(mock.Anything, &usecase.CategoryInput{Name: "Polos"}).
		Return(nil, domainerrors.ErrCategoryAlreadyExists)

	rec := doRequest(fx.echo, http.MethodPost, "/api/categories", `{"name":"Polos"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, domainerrors.ErrCategoryAlreadyExists.ErrorCode(), decodeEnvelope(t, rec).Error.Code)
}

func TestCategoryHandler_ListCategories(t *testing.T) {
	fx := createTestCategoryHandler(t)

	fx.categoryUC.EXPECT().
		ListCategories(mock.Anything, repository.ListParams{Page: 2, Limit: 5, Search: "po"}).
		Return(&entity.Page[*entity.Category]{
			Items:      []*entity.Category{{ID: 1, Name: "Polos"}},
			Pagination: entity.NewPagination(6, 2, 5),
		}, nil)

	rec := doRequest(fx.echo, http.MethodGet, "/api/categories?page=2&limit=5&search=po", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalPages":2`)
}

func TestCategoryHandler_ListCategories_BadOrder(t *testing.T) {
	fx := createTestCategoryHandler(t)

	rec := doRequest(fx.echo, http.MethodGet, "/api/categories?order=up", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
}
