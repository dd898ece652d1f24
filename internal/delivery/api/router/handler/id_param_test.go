package handler

import (
	"net/http"
	"strings"
	"testing"

	"tienda/internal/delivery/api/middleware"
	"tienda/internal/domain/entity"
	"tienda/internal/domain/service"
	mockSvc "tienda/internal/mocks/service"
	mockUC "tienda/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type idRouteFixtures struct {
	echo     *echo.Echo
	usecases []*mock.Mock
}

// createTestIDRoutes mounts every handler that takes an :id path parameter.
func createTestIDRoutes(t *testing.T) idRouteFixtures {
	categoryUC := mockUC.NewMockCategoryUsecase(t)
	coleccionUC := mockUC.NewMockColeccionUsecase(t)
	cuponUC := mockUC.NewMockCuponUsecase(t)
	productUC := mockUC.NewMockProductUsecase(t)
	featuredUC := mockUC.NewMockFeaturedUsecase(t)
	orderUC := mockUC.NewMockOrderUsecase(t)
	userUC := mockUC.NewMockUserUsecase(t)

	categories := NewCategoryHandler(CategoryHandlerParams{CategoryUC: categoryUC, Logger: newDiscardLogger()})
	colecciones := NewColeccionHandler(ColeccionHandlerParams{ColeccionUC: coleccionUC})
	cupones := NewCuponHandler(CuponHandlerParams{CuponUC: cuponUC, Logger: newDiscardLogger()})
	products := NewProductHandler(ProductHandlerParams{ProductUC: productUC, FeaturedUC: featuredUC})
	orders := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
	users := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/api/categories/:id", categories.GetCategory)
	e.PUT("/api/categories/:id", categories.UpdateCategory)
	e.DELETE("/api/categories/:id", categories.DeleteCategory)
	e.PUT("/api/colecciones/:id", colecciones.UpdateColeccion)
	e.DELETE("/api/colecciones/:id", colecciones.DeleteColeccion)
	e.PUT("/api/cupones/:id", cupones.UpdateCupon)
	e.DELETE("/api/cupones/:id", cupones.DeleteCupon)
	e.GET("/api/cupones/:id/qr", cupones.GetCuponQR)
	e.GET("/api/products/:id", products.GetProduct)
	e.PUT("/api/products/:id", products.UpdateProduct)
	e.DELETE("/api/products/:id", products.DeleteProduct)
	e.DELETE("/api/featured/:id", products.RemoveFeatured)
	e.GET("/api/orders/:id", orders.GetOrder)
	e.PUT("/api/orders/:id", orders.UpdateOrder)
	e.PUT("/api/users/:id/role", users.ChangeRole)

	return idRouteFixtures{
		echo: e,
		usecases: []*mock.Mock{
			&categoryUC.Mock, &coleccionUC.Mock, &cuponUC.Mock, &productUC.Mock,
			&featuredUC.Mock, &orderUC.Mock, &userUC.Mock,
		},
	}
}

func TestIDRoutes_RejectMalformedID(t *testing.T) {
	routes := []struct {
		method string
		path   string // %s is replaced by the id
	}{
		{http.MethodGet, "/api/categories/%s"},
		{http.MethodPut, "/api/categories/%s"},
		{http.MethodDelete, "/api/categories/%s"},
		{http.MethodPut, "/api/colecciones/%s"},
		{http.MethodDelete, "/api/colecciones/%s"},
		{http.MethodPut, "/api/cupones/%s"},
		{http.MethodDelete, "/api/cupones/%s"},
		{http.MethodGet, "/api/cupones/%s/qr"},
		{http.MethodGet, "/api/products/%s"},
		{http.MethodPut, "/api/products/%s"},
		{http.MethodDelete, "/api/products/%s"},
		{http.MethodDelete, "/api/featured/%s"},
		{http.MethodGet, "/api/orders/%s"},
		{http.MethodPut, "/api/orders/%s"},
		{http.MethodPut, "/api/users/%s/role"},
	}
	ids := []string{"abc", "0", "-4", "1.5", "9223372036854775808", "18446744073709551615"}

	for _, route := range routes {
		for _, id := range ids {
			target := strings.Replace(route.path, "%s", id, 1)
			t.Run(route.method+" "+target, func(t *testing.T) {
				fx := createTestIDRoutes(t)

				body := ""
				if route.method == http.MethodPut {
					body = `{}`
				}
				rec := doRequest(fx.echo, route.method, target, body)

				assert.Equal(t, http.StatusBadRequest, rec.Code)
				env := decodeEnvelope(t, rec)
				require.NotNil(t, env.Error)
				assert.Equal(t, "INVALID_ID", env.Error.Code)
				for _, uc := range fx.usecases {
					assert.Empty(t, uc.Calls)
				}
			})
		}
	}
}

func TestParseID_LargestBigint(t *testing.T) {
	c := echo.New().NewContext(newJSONRequest(http.MethodGet, "/", ""), nil)
	c.SetParamNames("id")
	c.SetParamValues("9223372036854775807")

	id, ok := parseID(c, "id")

	require.True(t, ok)
	assert.Equal(t, uint(9223372036854775807), id)
}

// Admin routes authenticate before the id is parsed, so anonymous callers
// learn nothing about the id and signed-in admins get INVALID_ID.
func TestIDRoutes_AuthRunsBeforeIDCheck(t *testing.T) {
	identity := mockSvc.NewMockIdentityProvider(t)
	userUC := mockUC.NewMockUserUsecase(t)
	categoryUC := mockUC.NewMockCategoryUsecase(t)

	auth := middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
		IdentityProvider: identity,
		UserUC:           userUC,
		Logger:           newDiscardLogger(),
	})
	h := NewCategoryHandler(CategoryHandlerParams{CategoryUC: categoryUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.PUT("/api/categories/:id", h.UpdateCategory,
		auth.Authenticate, auth.RequireUser, auth.RequireRole(entity.RoleAdmin))

	rec := doRequest(e, http.MethodPut, "/api/categories/abc", `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	identity.EXPECT().
		VerifySession(mock.Anything, "admin-token").
		Return(&service.IdentityClaims{Subject: "user_admin"}, nil)
	userUC.EXPECT().
		GetByClerkID(mock.Anything, "user_admin").
		Return(&entity.User{ID: 1, Role: entity.RoleAdmin}, nil).
		Once()

	req := newJSONRequest(http.MethodPut, "/api/categories/abc", `{}`)
	req.Header.Set(echo.HeaderAuthorization, "Bearer admin-token")
	rec = serveRequest(e, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_ID", env.Error.Code)
	assert.Empty(t, categoryUC.Calls)
}
