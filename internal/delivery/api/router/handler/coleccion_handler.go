package handler

import (
	"net/http"

	"tienda/internal/delivery/api/response"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ColeccionHandlerParams holds dependencies for ColeccionHandler, injected by Fx.
type ColeccionHandlerParams struct {
	fx.In

	ColeccionUC usecase.ColeccionUsecase
}

// ColeccionHandler holds dependencies for collection handlers
type ColeccionHandler struct {
	coleccionUC usecase.ColeccionUsecase
}

// NewColeccionHandler is the constructor for ColeccionHandler
func NewColeccionHandler(params ColeccionHandlerParams) *ColeccionHandler {
	return &ColeccionHandler{coleccionUC: params.ColeccionUC}
}

// CreateColeccionRequest represents the request body for creating a collection
type CreateColeccionRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=2,max=100"`
	Descripcion string `json:"descripcion" validate:"max=500"`
	Imagen      string `json:"imagen" validate:"required,url"`
}

// UpdateColeccionRequest represents the request body for updating a collection
type UpdateColeccionRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=2,max=100"`
	Descripcion *string `json:"descripcion" validate:"omitempty,max=500"`
	Imagen      *string `json:"imagen" validate:"omitempty,url"`
}

// ListColecciones handles GET /api/colecciones
func (h *ColeccionHandler) ListColecciones(c echo.Context) error {
	var params repository.ListParams
	if err := bindListParams(c, &params); err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.coleccionUC.ListColecciones(c.Request().Context(), params)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, page, "Colecciones obtenidas")
}

// CreateColeccion handles POST /api/colecciones. The cap is checked before
// the body is even read.
func (h *ColeccionHandler) CreateColeccion(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.coleccionUC.EnsureCapacity(ctx); err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateColeccionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	coleccion, err := h.coleccionUC.CreateColeccion(ctx, &usecase.ColeccionInput{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Imagen:      req.Imagen,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, coleccion, "Colección creada")
}

// UpdateColeccion handles PUT /api/colecciones/:id
func (h *ColeccionHandler) UpdateColeccion(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req UpdateColeccionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	coleccion, err := h.coleccionUC.UpdateColeccion(c.Request().Context(), id, &usecase.ColeccionUpdateInput{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Imagen:      req.Imagen,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, coleccion, "Colección actualizada")
}

// DeleteColeccion handles DELETE /api/colecciones/:id
func (h *ColeccionHandler) DeleteColeccion(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	if err := h.coleccionUC.DeleteColeccion(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]uint{"id": id}, "Colección eliminada")
}
