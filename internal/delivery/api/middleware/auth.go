package middleware

import (
	"log/slog"
	"strings"

	"tienda/internal/delivery/api/response"
	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/service"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// SessionCookieName is the cookie the identity provider's frontend SDK sets.
	SessionCookieName = "__session"

	contextKeyClaims = "identityClaims"
	contextKeyUser   = "currentUser"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	IdentityProvider service.IdentityProvider
	UserUC           usecase.UserUsecase
	Logger           *slog.Logger
}

// AuthMiddleware provides middleware for session authentication and authorization.
type AuthMiddleware struct {
	identity service.IdentityProvider
	userUC   usecase.UserUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		identity: params.IdentityProvider,
		userUC:   params.UserUC,
		logger:   params.Logger,
	}
}

// Authenticate verifies the session token from the Authorization header or
// the session cookie and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := sessionToken(c)
		if token == "" {
			return response.AppError(c, domainerrors.ErrUnauthenticated)
		}

		ctx := c.Request().Context()
		claims, err := m.identity.VerifySession(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Session rejected", slog.Any("error", err))

			return response.AppError(c, domainerrors.ErrUnauthenticated)
		}

		c.Set(contextKeyClaims, claims)

		return next(c)
	}
}

// RequireUser loads the local user of the verified session. It must be used
// AFTER Authenticate.
func (m *AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := GetClaims(c)
		if !ok {
			return response.AppError(c, domainerrors.ErrUnauthenticated)
		}

		user, err := m.userUC.GetByClerkID(c.Request().Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUserNotFound) {
				return response.AppError(c, domainerrors.ErrUserNotRegistered)
			}

			return response.HandleAppError(c, err)
		}

		c.Set(contextKeyUser, user)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithActor(c.Request().Context(), user.ID)))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the current user's role.
// It must be used AFTER RequireUser.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := GetCurrentUser(c)
			if !ok {
				return response.AppError(c, domainerrors.ErrUnauthenticated)
			}

			if user.Role != requiredRole {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Warn("Permission denied",
					slog.Any("userID", user.ID), slog.String("required", requiredRole.String()))

				return response.AppError(c, domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

// GetClaims returns the identity claims stored by Authenticate.
func GetClaims(c echo.Context) (*service.IdentityClaims, bool) {
	claims, ok := c.Get(contextKeyClaims).(*service.IdentityClaims)

	return claims, ok && claims != nil
}

// GetCurrentUser returns the local user stored by RequireUser.
func GetCurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(contextKeyUser).(*entity.User)

	return user, ok && user != nil
}

// SetCurrentUser stores user as the request's authenticated user.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(contextKeyUser, user)
}

func sessionToken(c echo.Context) string {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
			return strings.TrimSpace(token)
		}

		return ""
	}

	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}

	return ""
}
