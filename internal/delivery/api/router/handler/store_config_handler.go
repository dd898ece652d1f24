package handler

import (
	"net/http"

	"tienda/internal/delivery/api/response"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreConfigHandlerParams holds dependencies for StoreConfigHandler, injected by Fx.
type StoreConfigHandlerParams struct {
	fx.In

	StoreConfigUC usecase.StoreConfigUsecase
}

// StoreConfigHandler serves the settings, photos and agency endpoints
type StoreConfigHandler struct {
	storeConfigUC usecase.StoreConfigUsecase
}

// NewStoreConfigHandler is the constructor for StoreConfigHandler
func NewStoreConfigHandler(params StoreConfigHandlerParams) *StoreConfigHandler {
	return &StoreConfigHandler{storeConfigUC: params.StoreConfigUC}
}

// UpdateSettingsRequest represents the request body for upserting settings
type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" validate:"required,min=1,max=50,dive,keys,min=1,max=100,endkeys,max=5000"`
}

// UpdateFotosRequest represents the request body for updating the storefront photos
type UpdateFotosRequest struct {
	Portada  *string   `json:"portada" validate:"omitempty,url"`
	Nosotros *string   `json:"nosotros" validate:"omitempty,url"`
	Banners  *[]string `json:"banners" validate:"omitempty,max=20,dive,url"`
}

// UpdateAgenciaRequest represents the request body for updating the agency config
type UpdateAgenciaRequest struct {
	Agencias       *[]string `json:"agencias" validate:"omitempty,max=50,dive,min=1,max=100"`
	MinimoDelivery *int      `json:"minimoDelivery" validate:"omitempty,min=0,max=365"`
	MaximoDelivery *int      `json:"maximoDelivery" validate:"omitempty,min=0,max=365"`
	CostoEnvio     *float64  `json:"costoEnvio" validate:"omitempty,gte=0"`
}

// GetSettings handles GET /api/settings
func (h *StoreConfigHandler) GetSettings(c echo.Context) error {
	settings, err := h.storeConfigUC.GetSettings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings, "Configuración obtenida")
}

// UpdateSettings handles PUT /api/settings
func (h *StoreConfigHandler) UpdateSettings(c echo.Context) error {
	var req UpdateSettingsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	settings, err := h.storeConfigUC.UpdateSettings(c.Request().Context(), req.Settings)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings, "Configuración actualizada")
}

// GetFotos handles GET /api/fotos
func (h *StoreConfigHandler) GetFotos(c echo.Context) error {
	fotos, err := h.storeConfigUC.GetFotos(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, fotos, "Fotos obtenidas")
}

// UpdateFotos handles PUT /api/fotos
func (h *StoreConfigHandler) UpdateFotos(c echo.Context) error {
	var req UpdateFotosRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	fotos, err := h.storeConfigUC.UpdateFotos(c.Request().Context(), &usecase.FotosUpdateInput{
		Portada:  req.Portada,
		Nosotros: req.Nosotros,
		Banners:  req.Banners,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, fotos, "Fotos actualizadas")
}

// GetAgencia handles GET /api/agencias
func (h *StoreConfigHandler) GetAgencia(c echo.Context) error {
	agencia, err := h.storeConfigUC.GetAgencia(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, agencia, "Agencias obtenidas")
}

// UpdateAgencia handles PUT /api/agencias
func (h *StoreConfigHandler) UpdateAgencia(c echo.Context) error {
	var req UpdateAgenciaRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	agencia, err := h.storeConfigUC.UpdateAgencia(c.Request().Context(), &usecase.AgenciaUpdateInput{
		Agencias:       req.Agencias,
		MinimoDelivery: req.MinimoDelivery,
		MaximoDelivery: req.MaximoDelivery,
		CostoEnvio:     req.CostoEnvio,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, agencia, "Agencias actualizadas")
}
