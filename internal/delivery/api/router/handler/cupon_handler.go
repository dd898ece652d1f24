package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tienda/internal/delivery/api/response"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CuponHandlerParams holds dependencies for CuponHandler, injected by Fx.
type CuponHandlerParams struct {
	fx.In

	CuponUC usecase.CuponUsecase
	Logger  *slog.Logger
}

// CuponHandler holds dependencies for coupon handlers
type CuponHandler struct {
	cuponUC usecase.CuponUsecase
	logger  *slog.Logger
}

// NewCuponHandler is the constructor for CuponHandler
func NewCuponHandler(params CuponHandlerParams) *CuponHandler {
	return &CuponHandler{
		cuponUC: params.CuponUC,
		logger:  params.Logger,
	}
}

// CreateCuponRequest represents the request body for creating a coupon
type CreateCuponRequest struct {
	CodigoCupon string     `json:"codigoCupon" validate:"required,min=3,max=50"`
	Descuento   int        `json:"descuento" validate:"required,min=1,max=100"`
	Activo      *bool      `json:"activo"`
	ExpiraEn    *time.Time `json:"expiraEn"`
	Descripcion string     `json:"descripcion" validate:"max=255"`
}

// UpdateCuponRequest represents the request body for updating a coupon
type UpdateCuponRequest struct {
	CodigoCupon *string    `json:"codigoCupon" validate:"omitempty,min=3,max=50"`
	Descuento   *int       `json:"descuento" validate:"omitempty,min=1,max=100"`
	Activo      *bool      `json:"activo"`
	ExpiraEn    *time.Time `json:"expiraEn"`
	Descripcion *string    `json:"descripcion" validate:"omitempty,max=255"`
}

// ValidateCuponRequest represents the checkout coupon check. Either the code
// or a scanned QR payload must be sent.
type ValidateCuponRequest struct {
	CodigoCupon string  `json:"codigoCupon" validate:"required_without=QRData,max=50"`
	QRData      string  `json:"qrData" validate:"omitempty,max=512"`
	Subtotal    float64 `json:"subtotal" validate:"gte=0"`
}

// ListCupones handles GET /api/cupones
func (h *CuponHandler) ListCupones(c echo.Context) error {
	var filter repository.CuponFilter
	if err := bindListParams(c, &filter.ListParams); err != nil {
		return response.HandleAppError(c, err)
	}

	var activo bool
	if err := echo.QueryParamsBinder(c).Bool("activo", &activo).BindError(); err != nil {
		return response.HandleAppError(c, queryError(err))
	}
	if c.QueryParam("activo") != "" {
		filter.Activo = &activo
	}

	page, err := h.cuponUC.ListCupones(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, page, "Cupones obtenidos")
}

// GetCuponByCode handles GET /api/cupones/codigo/:codigo
func (h *CuponHandler) GetCuponByCode(c echo.Context) error {
	cupon, err := h.cuponUC.GetCuponByCode(c.Request().Context(), c.Param("codigo"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cupon, "Cupón obtenido")
}

// CreateCupon handles POST /api/cupones
func (h *CuponHandler) CreateCupon(c echo.Context) error {
	var req CreateCuponRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	cupon, err := h.cuponUC.CreateCupon(c.Request().Context(), &usecase.CuponInput{
		CodigoCupon: req.CodigoCupon,
		Descuento:   req.Descuento,
		Activo:      req.Activo,
		ExpiraEn:    req.ExpiraEn,
		Descripcion: req.Descripcion,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, cupon, "Cupón creado")
}

// UpdateCupon handles PUT /api/cupones/:id
func (h *CuponHandler) UpdateCupon(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req UpdateCuponRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	cupon, err := h.cuponUC.UpdateCupon(c.Request().Context(), id, &usecase.CuponUpdateInput{
		CodigoCupon: req.CodigoCupon,
		Descuento:   req.Descuento,
		Activo:      req.Activo,
		ExpiraEn:    req.ExpiraEn,
		Descripcion: req.Descripcion,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cupon, "Cupón actualizado")
}

// DeleteCupon handles DELETE /api/cupones/:id
func (h *CuponHandler) DeleteCupon(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	if err := h.cuponUC.DeleteCupon(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]uint{"id": id}, "Cupón eliminado")
}

// ValidateCupon handles POST /api/cupones/validate
func (h *CuponHandler) ValidateCupon(c echo.Context) error {
	var req ValidateCuponRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	var (
		result any
		err    error
	)
	if strings.TrimSpace(req.CodigoCupon) == "" {
		result, err = h.cuponUC.ValidateCuponQR(ctx, req.QRData, req.Subtotal)
	} else {
		result, err = h.cuponUC.ValidateCupon(ctx, req.CodigoCupon, req.Subtotal)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Cupón validado")
}

// GetCuponQR handles GET /api/cupones/:id/qr
func (h *CuponHandler) GetCuponQR(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	png, cupon, err := h.cuponUC.GenerateCuponQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", "cupon-"+cupon.CodigoCupon+".png"))

	return c.Blob(http.StatusOK, "image/png", png)
}
