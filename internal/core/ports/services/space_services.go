package services

import (
	"context"

	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	"github.com/cwsbrian/mone-mori-app/internal/dto"
)

// SpaceAuthorizerSvc checks space membership for other services.
type SpaceAuthorizerSvc interface {
	// AuthorizeMember returns the space when userID is a member, otherwise
	// apperrors.ErrForbidden (or ErrNotFound when the space does not exist).
	AuthorizeMember(ctx context.Context, userID, spaceID string) (*domain.Space, error)
}

// SpaceSvcFacade defines space management plus the per-user space selection.
type SpaceSvcFacade interface {
	SpaceAuthorizerSvc

	// ListSpacesForUser returns the user's spaces together with the id of the
	// current selection. When nothing valid is selected the first space is
	// selected (and persisted) automatically; the id is empty when the user
	// has no spaces.
	ListSpacesForUser(ctx context.Context, userID string) ([]domain.Space, string, error)

	// GetSpace retrieves a single space the user is a member of.
	GetSpace(ctx context.Context, userID, spaceID string) (*domain.Space, error)

	// CreateSpace creates a space, forcing the creator into the member list,
	// and selects it as the user's current space.
	CreateSpace(ctx context.Context, creatorUserID string, req dto.CreateSpaceRequest) (*domain.Space, error)

	// UpdateSpace applies a partial update to a space the user belongs to.
	UpdateSpace(ctx context.Context, userID, spaceID string, req dto.UpdateSpaceRequest) (*domain.Space, error)

	// DeleteSpace removes a space and cascades to its transactions. If it was
	// the user's current space, the first remaining space (or none) becomes
	// current.
	DeleteSpace(ctx context.Context, userID, spaceID string) error

	// CurrentSpace returns the user's currently selected space, or nil when
	// no space is selected.
	CurrentSpace(ctx context.Context, userID string) (*domain.Space, error)

	// SelectSpace makes spaceID the user's current space.
	SelectSpace(ctx context.Context, userID, spaceID string) error
}
