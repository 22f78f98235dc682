package repositories

import (
	"context"

	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves the first user with an exactly matching email.
	// Emails are assumed unique but the store does not enforce it.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsers retrieves every user in the collection.
	FindUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser overwrites an existing user's record.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeleteUser removes a user record.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
