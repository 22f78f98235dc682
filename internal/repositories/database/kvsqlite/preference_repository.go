package kvsqlite

import (
	"context"

	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	portsrepo "github.com/cwsbrian/mone-mori-app/internal/core/ports/repositories"
	"github.com/cwsbrian/mone-mori-app/internal/kvstore"
	"github.com/cwsbrian/mone-mori-app/internal/models"
)

type KVPreferenceRepository struct {
	store *kvstore.Store
}

func newKVPreferenceRepository(store *kvstore.Store) portsrepo.PreferenceRepository {
	return &KVPreferenceRepository{store: store}
}

var _ portsrepo.PreferenceRepository = (*KVPreferenceRepository)(nil)

func (r *KVPreferenceRepository) FindSelection(ctx context.Context, userID string) (*domain.SpaceSelection, error) {
	model, err := getRecord[models.Preference](ctx, r.store, kvstore.CollectionPreferences, userID)
	if err != nil {
		return nil, err
	}
	return &domain.SpaceSelection{
		UserID:         model.UserID,
		CurrentSpaceID: model.CurrentSpaceID,
	}, nil
}

func (r *KVPreferenceRepository) SaveSelection(ctx context.Context, selection domain.SpaceSelection) error {
	model := models.Preference{
		UserID:         selection.UserID,
		CurrentSpaceID: selection.CurrentSpaceID,
	}
	return putRecord(ctx, r.store, kvstore.CollectionPreferences, selection.UserID, model)
}
