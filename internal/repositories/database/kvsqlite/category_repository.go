package kvsqlite

import (
	"context"

	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	portsrepo "github.com/cwsbrian/mone-mori-app/internal/core/ports/repositories"
	"github.com/cwsbrian/mone-mori-app/internal/kvstore"
	"github.com/cwsbrian/mone-mori-app/internal/models"
)

type KVCategoryRepository struct {
	store *kvstore.Store
}

func newKVCategoryRepository(store *kvstore.Store) portsrepo.CategoryRepositoryFacade {
	return &KVCategoryRepository{store: store}
}

var _ portsrepo.CategoryRepositoryFacade = (*KVCategoryRepository)(nil)

func toModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID: d.CategoryID,
		Name:       d.Name,
		Icon:       d.Icon,
		Color:      d.Color,
		Type:       string(d.Type),
		IsDefault:  d.IsDefault,
		SpaceID:    d.SpaceID,
	}
}

func toDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID: m.CategoryID,
		Name:       m.Name,
		Icon:       m.Icon,
		Color:      m.Color,
		Type:       domain.EntryType(m.Type),
		IsDefault:  m.IsDefault,
		SpaceID:    m.SpaceID,
	}
}

func (r *KVCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	model, err := getRecord[models.Category](ctx, r.store, kvstore.CollectionCategories, categoryID)
	if err != nil {
		return nil, err
	}
	category := toDomainCategory(*model)
	return &category, nil
}

func (r *KVCategoryRepository) FindCategoriesBySpace(ctx context.Context, spaceID string) ([]domain.Category, error) {
	ms, err := listRecords[models.Category](ctx, r.store, kvstore.CollectionCategories)
	if err != nil {
		return nil, err
	}
	categories := make([]domain.Category, 0, len(ms))
	for _, m := range ms {
		category := toDomainCategory(m)
		if category.VisibleTo(spaceID) {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (r *KVCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	return putRecord(ctx, r.store, kvstore.CollectionCategories, category.CategoryID, toModelCategory(category))
}

func (r *KVCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	if err := requireRecord(ctx, r.store, kvstore.CollectionCategories, category.CategoryID); err != nil {
		return err
	}
	return putRecord(ctx, r.store, kvstore.CollectionCategories, category.CategoryID, toModelCategory(category))
}

func (r *KVCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	return deleteRecord(ctx, r.store, kvstore.CollectionCategories, categoryID)
}
