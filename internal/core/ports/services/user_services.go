package services

import (
	"context"

	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	"github.com/cwsbrian/mone-mori-app/internal/dto"
)

// UserSvcFacade defines user profile operations.
type UserSvcFacade interface {
	// GetUserByID retrieves a user by id.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// UpdateUser applies a partial update to the user's own profile and
	// returns the updated record.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)
}
