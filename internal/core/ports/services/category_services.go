package services

import (
	"context"

	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	"github.com/cwsbrian/mone-mori-app/internal/dto"
)

// CategorySvcFacade defines category management within a space.
type CategorySvcFacade interface {
	// ListCategoriesForSpace returns default categories plus the space's own.
	ListCategoriesForSpace(ctx context.Context, userID, spaceID string) ([]domain.Category, error)

	// CreateCategory creates a space-owned category.
	CreateCategory(ctx context.Context, userID, spaceID string, req dto.CreateCategoryRequest) (*domain.Category, error)

	// UpdateCategory applies a partial update. Default categories are
	// read-only and yield apperrors.ErrForbidden.
	UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a space-owned category, leaving any referencing
	// transactions dangling.
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}
