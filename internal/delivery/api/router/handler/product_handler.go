package handler

import (
	"net/http"

	"tienda/internal/delivery/api/response"
	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC  usecase.ProductUsecase
	FeaturedUC usecase.FeaturedUsecase
}

// ProductHandler serves the product catalog and the featured products
type ProductHandler struct {
	productUC  usecase.ProductUsecase
	featuredUC usecase.FeaturedUsecase
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC:  params.ProductUC,
		featuredUC: params.FeaturedUC,
	}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=150"`
	Description string   `json:"description" validate:"max=2000"`
	Category    string   `json:"category" validate:"required,max=100"`
	Price       float64  `json:"price" validate:"gte=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Size        string   `json:"size" validate:"max=20"`
	Estado      string   `json:"estado" validate:"omitempty,oneof=activo inactivo"`
	Images      []string `json:"images" validate:"max=10,dive,url"`
}

// UpdateProductRequest represents the request body for updating a product
type UpdateProductRequest struct {
	Name        *string   `json:"name" validate:"omitempty,min=2,max=150"`
	Description *string   `json:"description" validate:"omitempty,max=2000"`
	Category    *string   `json:"category" validate:"omitempty,min=1,max=100"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Stock       *int      `json:"stock" validate:"omitempty,gte=0"`
	Size        *string   `json:"size" validate:"omitempty,max=20"`
	Estado      *string   `json:"estado" validate:"omitempty,oneof=activo inactivo"`
	Images      *[]string `json:"images" validate:"omitempty,max=10,dive,url"`
}

// AddFeaturedRequest represents the request body for featuring a product
type AddFeaturedRequest struct {
	ProductID uint `json:"productId" validate:"required"`
	Position  int  `json:"position" validate:"gte=0,max=1000"`
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(c echo.Context) error {
	var filter repository.ProductFilter
	if err := bindListParams(c, &filter.ListParams); err != nil {
		return response.HandleAppError(c, err)
	}

	var minPrice, maxPrice float64
	err := echo.QueryParamsBinder(c).
		String("category", &filter.Category).
		String("estado", &filter.Estado).
		Float64("minPrice", &minPrice).
		Float64("maxPrice", &maxPrice).
		BindError()
	if err != nil {
		return response.HandleAppError(c, queryError(err))
	}
	if c.QueryParam("minPrice") != "" {
		filter.MinPrice = &minPrice
	}
	if c.QueryParam("maxPrice") != "" {
		filter.MaxPrice = &maxPrice
	}

	page, err := h.productUC.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, page, "Productos obtenidos")
}

// GetProduct handles GET /api/products/:id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Producto obtenido")
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), &usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Size:        req.Size,
		Estado:      entity.ProductEstado(req.Estado),
		Images:      req.Images,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product, "Producto creado")
}

// UpdateProduct handles PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req UpdateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.ProductUpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Size:        req.Size,
		Images:      req.Images,
	}
	if req.Estado != nil {
		estado := entity.ProductEstado(*req.Estado)
		input.Estado = &estado
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Producto actualizado")
}

// DeleteProduct handles DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]uint{"id": id}, "Producto eliminado")
}

// ListFeatured handles GET /api/featured
func (h *ProductHandler) ListFeatured(c echo.Context) error {
	featured, err := h.featuredUC.ListFeatured(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, featured, "Productos destacados obtenidos")
}

// AddFeatured handles POST /api/featured
func (h *ProductHandler) AddFeatured(c echo.Context) error {
	var req AddFeaturedRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	featured, err := h.featuredUC.AddFeatured(c.Request().Context(), &usecase.FeaturedInput{
		ProductID: req.ProductID,
		Position:  req.Position,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, featured, "Producto destacado")
}

// RemoveFeatured handles DELETE /api/featured/:id
func (h *ProductHandler) RemoveFeatured(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	if err := h.featuredUC.RemoveFeatured(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]uint{"id": id}, "Producto destacado eliminado")
}
