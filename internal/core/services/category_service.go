package services

import (
	"context"
	"fmt"

	"github.com/cwsbrian/mone-mori-app/internal/apperrors"
	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	portsrepo "github.com/cwsbrian/mone-mori-app/internal/core/ports/repositories"
	portssvc "github.com/cwsbrian/mone-mori-app/internal/core/ports/services"
	"github.com/cwsbrian/mone-mori-app/internal/dto"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
	authorizer   portssvc.SpaceAuthorizerSvc
}

func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, authorizer portssvc.SpaceAuthorizerSvc) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo, authorizer: authorizer}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) ListCategoriesForSpace(ctx context.Context, userID, spaceID string) ([]domain.Category, error) {
	if _, err := s.authorizer.AuthorizeMember(ctx, userID, spaceID); err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.FindCategoriesBySpace(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, userID, spaceID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if _, err := s.authorizer.AuthorizeMember(ctx, userID, spaceID); err != nil {
		return nil, err
	}
	entryType := domain.EntryType(req.Type)
	if !entryType.Valid() {
		return nil, fmt.Errorf("invalid entry type %q: %w", req.Type, apperrors.ErrValidation)
	}

	owner := spaceID
	category := domain.Category{
		CategoryID: domain.NewID(domain.CategoryIDPrefix),
		Name:       req.Name,
		Icon:       req.Icon,
		Color:      req.Color,
		Type:       entryType,
		IsDefault:  false,
		SpaceID:    &owner,
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	s.LogInfo(ctx, "Category created", "category_id", category.CategoryID, "space_id", spaceID)
	return &category, nil
}

// loadOwnedCategory fetches a category and verifies it is editable by userID:
// default categories are read-only and space-owned ones require membership.
func (s *categoryService) loadOwnedCategory(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category: %w", err)
	}
	if category.IsDefault || category.SpaceID == nil {
		return nil, fmt.Errorf("default category %s is read-only: %w", categoryID, apperrors.ErrForbidden)
	}
	if _, err := s.authorizer.AuthorizeMember(ctx, userID, *category.SpaceID); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.loadOwnedCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.Color != nil {
		category.Color = *req.Color
	}

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.LogInfo(ctx, "Category updated", "category_id", categoryID)
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	if _, err := s.loadOwnedCategory(ctx, userID, categoryID); err != nil {
		return err
	}

	// Transactions referencing the category are left in place; reads resolve
	// them to the Unknown fallback.
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.LogInfo(ctx, "Category deleted", "category_id", categoryID)
	return nil
}
