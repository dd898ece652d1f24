package usecase

import (
	"context"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
)

// SignInInput optionally supplies the email and name when the session token
// does not carry them.
type SignInInput struct {
	Email string
	Name  string
}

// SignInOutput is the local user behind a verified session.
type SignInOutput struct {
	User *entity.User

	// Created is true when this sign-in created the local user.
	Created bool
}

// UpdateProfileInput carries the profile fields to change; nil fields are kept.
type UpdateProfileInput struct {
	Name    *string
	Phone   *string
	DNI     *string
	Address *string
}

// UserUsecase defines sign-in and user management
type UserUsecase interface {
	// SignIn upserts the local user of a verified session. The first user ever
	// created is promoted to admin.
	SignIn(ctx context.Context, claims *service.IdentityClaims, input *SignInInput) (*SignInOutput, error)

	// SignUpURL returns the identity provider's sign-up page.
	SignUpURL(redirectURL string) string

	// GetByClerkID returns the local user linked to an identity provider user.
	GetByClerkID(ctx context.Context, clerkID string) (*entity.User, error)

	ListUsers(ctx context.Context, filter repository.UserFilter) (*entity.Page[*entity.User], error)
	UpdateProfile(ctx context.Context, userID uint, input *UpdateProfileInput) (*entity.User, error)
	ChangeRole(ctx context.Context, userID uint, role entity.Role) (*entity.User, error)
}
