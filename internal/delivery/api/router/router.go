// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tienda/internal/delivery/api/middleware"
	"tienda/internal/delivery/api/router/handler"
	"tienda/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	CategoryHandler    *handler.CategoryHandler
	ColeccionHandler   *handler.ColeccionHandler
	CuponHandler       *handler.CuponHandler
	StoreConfigHandler *handler.StoreConfigHandler
	ProductHandler     *handler.ProductHandler
	OrderHandler       *handler.OrderHandler
	InventoryHandler   *handler.InventoryHandler
	MediaHandler       *handler.MediaHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler        *handler.UserHandler
	categoryHandler    *handler.CategoryHandler
	coleccionHandler   *handler.ColeccionHandler
	cuponHandler       *handler.CuponHandler
	storeConfigHandler *handler.StoreConfigHandler
	productHandler     *handler.ProductHandler
	orderHandler       *handler.OrderHandler
	inventoryHandler   *handler.InventoryHandler
	mediaHandler       *handler.MediaHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:        params.UserHandler,
		categoryHandler:    params.CategoryHandler,
		coleccionHandler:   params.ColeccionHandler,
		cuponHandler:       params.CuponHandler,
		storeConfigHandler: params.StoreConfigHandler,
		productHandler:     params.ProductHandler,
		orderHandler:       params.OrderHandler,
		inventoryHandler:   params.InventoryHandler,
		mediaHandler:       params.MediaHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// session: a verified identity with a local user; admin: session plus the ADMIN role
	session := []echo.MiddlewareFunc{r.authMiddleware.Authenticate, r.authMiddleware.RequireUser}
	admin := append(session[:len(session):len(session)], r.authMiddleware.RequireRole(entity.RoleAdmin))

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/sign-in", r.userHandler.SignIn, r.authMiddleware.Authenticate)
		authGroup.GET("/sign-up", r.userHandler.SignUp)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", r.categoryHandler.ListCategories)
		categories.GET("/:id", r.categoryHandler.GetCategory)
		categories.POST("", r.categoryHandler.CreateCategory, admin...)
		categories.PUT("/:id", r.categoryHandler.UpdateCategory, admin...)
		categories.DELETE("/:id", r.categoryHandler.DeleteCategory, admin...)
	}

	colecciones := api.Group("/colecciones")
	{
		colecciones.GET("", r.coleccionHandler.ListColecciones)
		colecciones.POST("", r.coleccionHandler.CreateColeccion, admin...)
		colecciones.PUT("/:id", r.coleccionHandler.UpdateColeccion, admin...)
		colecciones.DELETE("/:id", r.coleccionHandler.DeleteColeccion, admin...)
	}

	cupones := api.Group("/cupones")
	{
		cupones.GET("/codigo/:codigo", r.cuponHandler.GetCuponByCode)
		cupones.POST("/validate", r.cuponHandler.ValidateCupon)
		cupones.GET("", r.cuponHandler.ListCupones, admin...)
		cupones.POST("", r.cuponHandler.CreateCupon, admin...)
		cupones.PUT("/:id", r.cuponHandler.UpdateCupon, admin...)
		cupones.DELETE("/:id", r.cuponHandler.DeleteCupon, admin...)
		cupones.GET("/:id/qr", r.cuponHandler.GetCuponQR, admin...)
	}

	api.GET("/settings", r.storeConfigHandler.GetSettings)
	api.PUT("/settings", r.storeConfigHandler.UpdateSettings, admin...)
	api.GET("/fotos", r.storeConfigHandler.GetFotos)
	api.PUT("/fotos", r.storeConfigHandler.UpdateFotos, admin...)
	api.GET("/agencias", r.storeConfigHandler.GetAgencia)
	api.PUT("/agencias", r.storeConfigHandler.UpdateAgencia, admin...)

	products := api.Group("/products")
	{
		products.GET("", r.productHandler.ListProducts)
		products.GET("/:id", r.productHandler.GetProduct)
		products.POST("", r.productHandler.CreateProduct, admin...)
		products.PUT("/:id", r.productHandler.UpdateProduct, admin...)
		products.DELETE("/:id", r.productHandler.DeleteProduct, admin...)
	}

	featured := api.Group("/featured")
	{
		featured.GET("", r.productHandler.ListFeatured)
		featured.POST("", r.productHandler.AddFeatured, admin...)
		featured.DELETE("/:id", r.productHandler.RemoveFeatured, admin...)
	}

	orders := api.Group("/orders", session...)
	{
		orders.GET("", r.orderHandler.ListOrders)
		orders.POST("", r.orderHandler.CreateOrder)
		orders.GET("/summary", r.orderHandler.Summary, r.authMiddleware.RequireRole(entity.RoleAdmin))
		orders.GET("/:id", r.orderHandler.GetOrder)
		orders.PUT("/:id", r.orderHandler.UpdateOrder, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}

	users := api.Group("/users", session...)
	{
		users.GET("/me", r.userHandler.GetMe)
		users.PUT("/me", r.userHandler.UpdateMe)
		users.GET("", r.userHandler.ListUsers, r.authMiddleware.RequireRole(entity.RoleAdmin))
		users.PUT("/:id/role", r.userHandler.ChangeRole, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}

	api.GET("/inventory", r.inventoryHandler.Report, admin...)
	api.GET("/cloudinary-list", r.mediaHandler.ListImages, admin...)
	api.POST("/delete-image", r.mediaHandler.DeleteImage, admin...)
}
