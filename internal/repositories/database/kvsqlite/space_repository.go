package kvsqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cwsbrian/mone-mori-app/internal/apperrors"
	"github.com/cwsbrian/mone-mori-app/internal/core/domain"
	portsrepo "github.com/cwsbrian/mone-mori-app/internal/core/ports/repositories"
	"github.com/cwsbrian/mone-mori-app/internal/kvstore"
	"github.com/cwsbrian/mone-mori-app/internal/models"
)

type KVSpaceRepository struct {
	store *kvstore.Store
}

func newKVSpaceRepository(store *kvstore.Store) portsrepo.SpaceRepositoryFacade {
	return &KVSpaceRepository{store: store}
}

var _ portsrepo.SpaceRepositoryFacade = (*KVSpaceRepository)(nil)

func toModelSpace(d domain.Space) models.Space {
	return models.Space{
		SpaceID:      d.SpaceID,
		Name:         d.Name,
		Emoji:        d.Emoji,
		CurrencyCode: d.CurrencyCode,
		MemberIDs:    d.MemberIDs,
		CreatedBy:    d.CreatedBy,
		CreatedAt:    d.CreatedAt,
	}
}

func toDomainSpace(m models.Space) domain.Space {
	return domain.Space{
		SpaceID:      m.SpaceID,
		Name:         m.Name,
		Emoji:        m.Emoji,
		CurrencyCode: m.CurrencyCode,
		MemberIDs:    m.MemberIDs,
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *KVSpaceRepository) FindSpaceByID(ctx context.Context, spaceID string) (*domain.Space, error) {
	model, err := getRecord[models.Space](ctx, r.store, kvstore.CollectionSpaces, spaceID)
	if err != nil {
		return nil, err
	}
	space := toDomainSpace(*model)
	return &space, nil
}

func (r *KVSpaceRepository) FindSpacesByUserID(ctx context.Context, userID string) ([]domain.Space, error) {
	ms, err := listRecords[models.Space](ctx, r.store, kvstore.CollectionSpaces)
	if err != nil {
		return nil, err
	}
	spaces := make([]domain.Space, 0, len(ms))
	for _, m := range ms {
		space := toDomainSpace(m)
		if space.HasMember(userID) {
			spaces = append(spaces, space)
		}
	}
	return spaces, nil
}

func (r *KVSpaceRepository) SaveSpace(ctx context.Context, space domain.Space) error {
	return putRecord(ctx, r.store, kvstore.CollectionSpaces, space.SpaceID, toModelSpace(space))
}

func (r *KVSpaceRepository) UpdateSpace(ctx context.Context, space domain.Space) error {
	if err := requireRecord(ctx, r.store, kvstore.CollectionSpaces, space.SpaceID); err != nil {
		return err
	}
	return putRecord(ctx, r.store, kvstore.CollectionSpaces, space.SpaceID, toModelSpace(space))
}

// DeleteSpace removes the space and every transaction that belongs to it in
// one store transaction, so a crash cannot leave orphaned transactions.
func (r *KVSpaceRepository) DeleteSpace(ctx context.Context, spaceID string) error {
	err := r.store.InTx(ctx, func(tx *kvstore.Tx) error {
		if err := tx.Delete(ctx, kvstore.CollectionSpaces, spaceID); err != nil {
			return err
		}

		records, err := tx.List(ctx, kvstore.CollectionTransactions)
		if err != nil {
			return err
		}
		for _, rec := range records {
			var ref struct {
				SpaceID string `json:"spaceId"`
			}
			if err := json.Unmarshal(rec.Value, &ref); err != nil {
				slog.WarnContext(ctx, "Skipping corrupt record during cascade",
					slog.String("collection", kvstore.CollectionTransactions),
					slog.String("id", rec.ID),
				)
				continue
			}
			if ref.SpaceID != spaceID {
				continue
			}
			if err := tx.Delete(ctx, kvstore.CollectionTransactions, rec.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, kvstore.ErrNoRecord) {
		return fmt.Errorf("%s %s: %w", kvstore.CollectionSpaces, spaceID, apperrors.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to delete space %s: %w", spaceID, err)
	}
	return nil
}
