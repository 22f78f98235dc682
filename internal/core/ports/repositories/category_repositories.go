package repositories

import (
	"context"

	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
)

// CategoryReader defines read operations for category data.
type CategoryReader interface {
	// FindCategoryByID retrieves a specific category by its ID.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// FindCategoriesBySpace retrieves the union of default categories and the
	// categories owned by spaceID, in collection insertion order.
	FindCategoriesBySpace(ctx context.Context, spaceID string) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data.
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory overwrites an existing category's record.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category. Transactions referencing it are left
	// in place; reads resolve them to the Unknown fallback.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
