package handler

import (
	"net/http"

	"tienda/internal/delivery/api/response"
	"tienda/internal/domain/service"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	MediaUC usecase.MediaUsecase
}

// MediaHandler serves the hosted image endpoints
type MediaHandler struct {
	mediaUC usecase.MediaUsecase
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{mediaUC: params.MediaUC}
}

// DeleteImageRequest represents the request body for deleting an image
type DeleteImageRequest struct {
	PublicID string `json:"publicId" validate:"required,max=512"`
}

// ListImages handles GET /api/cloudinary-list
func (h *MediaHandler) ListImages(c echo.Context) error {
	var opts service.MediaListOptions
	err := echo.QueryParamsBinder(c).
		String("prefix", &opts.Prefix).
		Int("limit", &opts.PageSize).
		String("cursor", &opts.PageToken).
		BindError()
	if err != nil {
		return response.HandleAppError(c, queryError(err))
	}

	page, err := h.mediaUC.ListMedia(c.Request().Context(), opts)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page, "Imágenes obtenidas")
}

// DeleteImage handles POST /api/delete-image
func (h *MediaHandler) DeleteImage(c echo.Context) error {
	var req DeleteImageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.mediaUC.DeleteMedia(c.Request().Context(), req.PublicID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"publicId": req.PublicID}, "Imagen eliminada")
}
