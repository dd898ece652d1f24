package handler

import (
	"log/slog"
	"net/http"

	"tienda/internal/delivery/api/response"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	Logger     *slog.Logger
}

// CategoryHandler holds dependencies for category handlers
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
	logger     *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: params.CategoryUC,
		logger:     params.Logger,
	}
}

// CreateCategoryRequest represents the request body for creating a category
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateCategoryRequest represents the request body for updating a category
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// ListCategories handles GET /api/categories
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	var params repository.ListParams
	if err := bindListParams(c, &params); err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.categoryUC.ListCategories(c.Request().Context(), params)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, page, "Categorías obtenidas")
}

// GetCategory handles GET /api/categories/:id
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	category, err := h.categoryUC.GetCategory(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category, "Categoría obtenida")
}

// CreateCategory handles POST /api/categories
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CreateCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), &usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category, "Categoría creada")
}

// UpdateCategory handles PUT /api/categories/:id
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req UpdateCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.categoryUC.UpdateCategory(c.Request().Context(), id, &usecase.CategoryUpdateInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category, "Categoría actualizada")
}

// DeleteCategory handles DELETE /api/categories/:id
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	if err := h.categoryUC.DeleteCategory(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]uint{"id": id}, "Categoría eliminada")
}
