package kvsqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cwsbrian/mone-mori-app/internal/apperrors"
	"github.com/cwsbrian/mone-mori-app/internal/kvstore"
)

// getRecord loads and decodes one record, mapping a missing key to
// apperrors.ErrNotFound.
func getRecord[M any](ctx context.Context, store *kvstore.Store, collection, id string) (*M, error) {
	raw, err := store.Get(ctx, collection, id)
	if errors.Is(err, kvstore.ErrNoRecord) {
		return nil, fmt.Errorf("%s %s: %w", collection, id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s %s: %w", collection, id, err)
	}

	var model M
	if err := json.Unmarshal(raw, &model); err != nil {
		return nil, fmt.Errorf("failed to decode %s %s: %w", collection, id, err)
	}
	return &model, nil
}

// listRecords loads a whole collection. Rows that no longer decode are
// skipped and logged so one corrupt record cannot take down every read.
func listRecords[M any](ctx context.Context, store *kvstore.Store, collection string) ([]M, error) {
	records, err := store.List(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}

	models := make([]M, 0, len(records))
	for _, rec := range records {
		var model M
		if err := json.Unmarshal(rec.Value, &model); err != nil {
			slog.WarnContext(ctx, "Skipping corrupt record",
				slog.String("collection", collection),
				slog.String("id", rec.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		models = append(models, model)
	}
	return models, nil
}

// putRecord encodes and upserts one record.
func putRecord(ctx context.Context, store *kvstore.Store, collection, id string, model any) error {
	raw, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("failed to encode %s %s: %w", collection, id, err)
	}
	if err := store.Put(ctx, collection, id, raw); err != nil {
		return fmt.Errorf("failed to save %s %s: %w", collection, id, err)
	}
	return nil
}

// deleteRecord removes one record, mapping a missing key to
// apperrors.ErrNotFound.
func deleteRecord(ctx context.Context, store *kvstore.Store, collection, id string) error {
	err := store.Delete(ctx, collection, id)
	if errors.Is(err, kvstore.ErrNoRecord) {
		return fmt.Errorf("%s %s: %w", collection, id, apperrors.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", collection, id, err)
	}
	return nil
}

// requireRecord verifies a record exists before an overwrite.
func requireRecord(ctx context.Context, store *kvstore.Store, collection, id string) error {
	_, err := store.Get(ctx, collection, id)
	if errors.Is(err, kvstore.ErrNoRecord) {
		return fmt.Errorf("%s %s: %w", collection, id, apperrors.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to load %s %s: %w", collection, id, err)
	}
	return nil
}
