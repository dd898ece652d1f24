package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/service"
	mockSvc "tienda/internal/mocks/service"
	mockUC "tienda/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	identity   *mockSvc.MockIdentityProvider
	userUC     *mockUC.MockUserUsecase
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	identity := mockSvc.NewMockIdentityProvider(t)
	userUC := mockUC.NewMockUserUsecase(t)

	return authMiddlewareFixtures{
		middleware: NewAuthMiddleware(AuthMiddlewareParams{
			IdentityProvider: identity,
			UserUC:           userUC,
			Logger:           newDiscardLogger(),
		}),
		identity: identity,
		userUC:   userUC,
	}
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func serve(req *http.Request, chain echo.HandlerFunc) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = chain(c)

	return rec, c
}

func TestAuthenticate_BearerToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	claims := &service.IdentityClaims{Subject: "user_2abc"}
	fx.identity.EXPECT().
		VerifySession(mock.Anything, "tok-123").
		Return(claims, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok-123")

	rec, c := serve(req, fx.middleware.Authenticate(okHandler))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	got, ok := GetClaims(c)
	require.True(t, ok)
	assert.Equal(t, "user_2abc", got.Subject)
}

func TestAuthenticate_SessionCookie(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.identity.EXPECT().
		VerifySession(mock.Anything, "cookie-tok").
		Return(&service.IdentityClaims{Subject: "user_2abc"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-tok"})

	rec, _ := serve(req, fx.middleware.Authenticate(okHandler))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthenticate_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		header string
		verify bool
	}{
		{name: "no token"},
		{name: "not a bearer token", header: "Basic Zm9vOmJhcg=="},
		{name: "invalid session", header: "Bearer expired", verify: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthMiddleware(t)

			if tt.verify {
				fx.identity.EXPECT().
					VerifySession(mock.Anything, "expired").
					Return(nil, errors.New("token is expired"))
			}

			req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}

			rec, _ := serve(req, fx.middleware.Authenticate(okHandler))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
		})
	}
}

func TestRequireUser_NotRegistered(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.userUC.EXPECT().
		GetByClerkID(mock.Anything, "user_2abc").
		Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "find"))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	chain := func(c echo.Context) error {
		c.Set(contextKeyClaims, &service.IdentityClaims{Subject: "user_2abc"})

		return fx.middleware.RequireUser(okHandler)(c)
	}

	rec, _ := serve(req, chain)
	assert.Equal(t, domainerrors.ErrUserNotRegistered.HTTPCode(), rec.Code)
	assert.Contains(t, rec.Body.String(), domainerrors.ErrUserNotRegistered.ErrorCode())
}

func TestRequireUser_StoresUser(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	user := &entity.User{ID: 3, ClerkID: "user_2abc", Role: entity.RoleUser}
	fx.userUC.EXPECT().
		GetByClerkID(mock.Anything, "user_2abc").
		RunAndReturn(func(ctx context.Context, clerkID string) (*entity.User, error) {
			return user, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	chain := func(c echo.Context) error {
		c.Set(contextKeyClaims, &service.IdentityClaims{Subject: "user_2abc"})

		return fx.middleware.RequireUser(okHandler)(c)
	}

	rec, c := serve(req, chain)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	got, ok := GetCurrentUser(c)
	require.True(t, ok)
	assert.Equal(t, user, got)
	assert.Equal(t, uint(3), deliverycontext.ActorIDFromContext(c.Request().Context()))
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		user       *entity.User
		wantStatus int
	}{
		{name: "admin passes", user: &entity.User{ID: 1, Role: entity.RoleAdmin}, wantStatus: http.StatusNoContent},
		{name: "customer forbidden", user: &entity.User{ID: 2, Role: entity.RoleUser}, wantStatus: http.StatusForbidden},
		{name: "no user", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthMiddleware(t)

			chain := func(c echo.Context) error {
				if tt.user != nil {
					SetCurrentUser(c, tt.user)
				}

				return fx.middleware.RequireRole(entity.RoleAdmin)(okHandler)(c)
			}

			rec, _ := serve(httptest.NewRequest(http.MethodGet, "/api/inventory", nil), chain)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
