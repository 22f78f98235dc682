package repositories

import (
	"context"

	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
)

// PreferenceRepository stores per-user UI preferences, currently just the
// selected space.
type PreferenceRepository interface {
	// FindSelection retrieves a user's space selection.
	FindSelection(ctx context.Context, userID string) (*domain.SpaceSelection, error)

	// SaveSelection persists a user's space selection, overwriting any
	// previous value. An empty CurrentSpaceID clears the selection.
	SaveSelection(ctx context.Context, selection domain.SpaceSelection) error
}
