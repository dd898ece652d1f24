package handler

import (
	"log/slog"
	"net/http"

	"tienda/internal/delivery/api/middleware"
	"tienda/internal/delivery/api/response"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for sign-in and user handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// SignInRequest carries the profile facts the session token may lack
type SignInRequest struct {
	Email string `json:"email" validate:"omitempty,email,max=255"`
	Name  string `json:"name" validate:"omitempty,max=100"`
}

// UpdateProfileRequest represents the request body for updating one's own profile
type UpdateProfileRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=100"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	DNI     *string `json:"dni" validate:"omitempty,max=20"`
	Address *string `json:"address" validate:"omitempty,max=255"`
}

// ChangeRoleRequest represents the request body for changing a user's role
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,user_role"`
}

// SignIn handles POST /api/auth/sign-in
func (h *UserHandler) SignIn(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthenticated)
	}

	var req SignInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.userUC.SignIn(c.Request().Context(), claims, &usecase.SignInInput{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if output.Created {
		return response.Success(c, http.StatusCreated, output.User, "Usuario registrado")
	}

	return response.Success(c, http.StatusOK, output.User, "Sesión iniciada")
}

// SignUp handles GET /api/auth/sign-up. It redirects unless redirect=false is sent.
func (h *UserHandler) SignUp(c echo.Context) error {
	signUpURL := h.userUC.SignUpURL(c.QueryParam("redirect_url"))

	if c.QueryParam("redirect") == "false" {
		return response.Success(c, http.StatusOK, map[string]string{"url": signUpURL}, "URL de registro")
	}

	return c.Redirect(http.StatusTemporaryRedirect, signUpURL)
}

// GetMe handles GET /api/users/me
func (h *UserHandler) GetMe(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthenticated)
	}

	return response.Success(c, http.StatusOK, user, "Perfil obtenido")
}

// UpdateMe handles PUT /api/users/me
func (h *UserHandler) UpdateMe(c echo.Context) error {
	current, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthenticated)
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), current.ID, &usecase.UpdateProfileInput{
		Name:    req.Name,
		Phone:   req.Phone,
		DNI:     req.DNI,
		Address: req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Perfil actualizado")
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c echo.Context) error {
	var filter repository.UserFilter
	if err := bindListParams(c, &filter.ListParams); err != nil {
		return response.HandleAppError(c, err)
	}
	filter.Role = c.QueryParam("role")

	page, err := h.userUC.ListUsers(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, page, "Usuarios obtenidos")
}

// ChangeRole handles PUT /api/users/:id/role
func (h *UserHandler) ChangeRole(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req ChangeRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.ChangeRole(c.Request().Context(), id, entity.Role(req.Role))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Rol actualizado")
}
