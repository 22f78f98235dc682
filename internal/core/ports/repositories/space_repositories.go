package repositories

import (
	"context"

	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
)

// SpaceReader defines read operations for space data.
type SpaceReader interface {
	// FindSpaceByID retrieves a specific space by its ID.
	FindSpaceByID(ctx context.Context, spaceID string) (*domain.Space, error)

	// FindSpacesByUserID retrieves the spaces whose member list contains userID,
	// in collection insertion order.
	FindSpacesByUserID(ctx context.Context, userID string) ([]domain.Space, error)
}

// SpaceWriter defines write operations for space data.
type SpaceWriter interface {
	// SaveSpace persists a new space.
	SaveSpace(ctx context.Context, space domain.Space) error

	// UpdateSpace overwrites an existing space's record.
	UpdateSpace(ctx context.Context, space domain.Space) error

	// DeleteSpace removes a space and, in the same store transaction, every
	// transaction belonging to it.
	DeleteSpace(ctx context.Context, spaceID string) error
}

// SpaceRepositoryFacade combines all space-related repository interfaces.
type SpaceRepositoryFacade interface {
	SpaceReader
	SpaceWriter
}
