// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"tienda/config"
	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	identityProvider service.IdentityProvider
	config           *config.Config
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	IdentityProvider service.IdentityProvider
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		identityProvider: params.IdentityProvider,
		config:           params.Config,
		logger:           params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn links the session's identity to a local user, creating it on first sight.
func (srv *userService) SignIn(ctx context.Context, claims *service.IdentityClaims, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	if claims == nil || claims.Subject == "" {
		return nil, domainerrors.ErrUnauthenticated
	}
	if input == nil {
		input = &usecase.SignInInput{}
	}

	email := strings.ToLower(firstNonEmpty(claims.Email, input.Email))
	name := firstNonEmpty(claims.Name, input.Name)

	existing, err := srv.userRepo.FindByClerkID(ctx, claims.Subject)
	switch {
	case err == nil:
		return srv.refreshUser(ctx, existing, email, name)
	case !errors.Is(err, domainerrors.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to find user by clerk ID")
	}

	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fieldError("email", "required", "the session carries no email; send it in the body"))
	}
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	return srv.registerUser(ctx, claims.Subject, email, name)
}

func (srv *userService) refreshUser(ctx context.Context, user *entity.User, email, name string) (*usecase.SignInOutput, error) {
	changed := false
	if email != "" && email != user.Email {
		user.Email = email
		changed = true
	}
	if name != "" && name != user.Name {
		user.Name = name
		changed = true
	}

	if changed {
		if err := srv.userRepo.Update(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to refresh user from identity claims")
		}
		srv.log(ctx).Debug("User refreshed from identity claims", slog.Any("userID", user.ID))
	}

	return &usecase.SignInOutput{User: user}, nil
}

// registerUser creates the user and claims the admin bootstrap in one
// transaction. Only the first claim ever succeeds.
func (srv *userService) registerUser(ctx context.Context, clerkID, email, name string) (*usecase.SignInOutput, error) {
	user := &entity.User{
		ClerkID: clerkID,
		Email:   email,
		Name:    name,
		Role:    entity.RoleUser,
	}

	var promoted bool
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		userRepo := txRepoFactory.NewUserRepository()

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		claimed, err := userRepo.ClaimAdminBootstrap(ctx, user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to claim admin bootstrap")
		}
		if !claimed {
			return nil
		}

		user.Role = entity.RoleAdmin
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to promote first user")
		}
		promoted = true

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to register user", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID), slog.String("role", user.Role.String()))
	if promoted {
		srv.log(ctx).Warn("First user promoted to admin", slog.Any("userID", user.ID))
	}

	return &usecase.SignInOutput{User: user, Created: true}, nil
}

func (srv *userService) SignUpURL(redirectURL string) string {
	return srv.identityProvider.SignUpURL(redirectURL)
}

func (srv *userService) GetByClerkID(ctx context.Context, clerkID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByClerkID(ctx, clerkID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by clerk ID")
	}

	return user, nil
}

func (srv *userService) ListUsers(ctx context.Context, filter repository.UserFilter) (*entity.Page[*entity.User], error) {
	normalizeListParams(srv.config, &filter.ListParams)
	if filter.Role != "" && !entity.Role(filter.Role).IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fieldError("role", "user_role", "role must be ADMIN or USER"))
	}

	users, total, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return newPage(users, total, filter.ListParams), nil
}

func (srv *userService) UpdateProfile(ctx context.Context, userID uint, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	user.Name = trimmedOr(input.Name, user.Name)
	user.Phone = trimmedOr(input.Phone, user.Phone)
	user.DNI = trimmedOr(input.DNI, user.DNI)
	user.Address = trimmedOr(input.Address, user.Address)

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return user, nil
}

func (srv *userService) ChangeRole(ctx context.Context, userID uint, role entity.Role) (*entity.User, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fieldError("role", "user_role", "role must be ADMIN or USER"))
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if user.Role == role {
		return user, nil
	}

	user.Role = role
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to change role")
	}

	srv.log(ctx).Info("User role changed", slog.Any("userID", user.ID), slog.String("role", role.String()))

	return user, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}

	return ""
}
