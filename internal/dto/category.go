package dto

import (
	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
)

// CreateCategoryRequest carries the fields for creating a space-owned category.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Type  string `json:"type" binding:"required,oneof=income expense"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
// The entry type is immutable once created.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

// CategoryResponse is the outward-facing category shape.
type CategoryResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Icon      string  `json:"icon"`
	Color     string  `json:"color"`
	Type      string  `json:"type"`
	IsDefault bool    `json:"isDefault"`
	SpaceID   *string `json:"spaceId"`
}

// ListCategoriesResponse wraps the categories visible to a space.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.CategoryID,
		Name:      category.Name,
		Icon:      category.Icon,
		Color:     category.Color,
		Type:      string(category.Type),
		IsDefault: category.IsDefault,
		SpaceID:   category.SpaceID,
	}
}

// ToListCategoriesResponse converts a slice of categories.
func ToListCategoriesResponse(categories []domain.Category) ListCategoriesResponse {
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = ToCategoryResponse(&categories[i])
	}
	return ListCategoriesResponse{Categories: out}
}
