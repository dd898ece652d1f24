package repository

import (
	"context"

	"tienda/internal/domain/entity"
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByClerkID retrieves a user by the identity provider's user ID.
	FindByClerkID(ctx context.Context, clerkID string) (*entity.User, error)

	// List returns a page of users and the total match count.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, int64, error)

	// Update saves the mutable fields of a user.
	Update(ctx context.Context, user *entity.User) error

	// ClaimAdminBootstrap records userID as the store's first administrator.
	// It reports true only for the single call that creates the bootstrap record.
	ClaimAdminBootstrap(ctx context.Context, userID uint) (bool, error)
}
