package kvstore

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
)

//go:embed seeddata/*.json
var seedFS embed.FS

// metaDataInitialized marks a store whose fixtures have been loaded. Its
// presence, not its value, is what matters.
const metaDataInitialized = "data_initialized"

var seedSources = []struct {
	collection string
	file       string
}{
	{CollectionUsers, "seeddata/users.json"},
	{CollectionSpaces, "seeddata/spaces.json"},
	{CollectionCategories, "seeddata/categories.json"},
	{CollectionTransactions, "seeddata/transactions.json"},
}

// InitializeIfEmpty loads the embedded fixture collections on first open and
// sets the sentinel, all in one transaction. Subsequent calls are no-ops, so
// user edits to seeded records survive restarts.
func (s *Store) InitializeIfEmpty(ctx context.Context) error {
	_, err := s.GetMeta(ctx, metaDataInitialized)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNoRecord) {
		return fmt.Errorf("check seed sentinel: %w", err)
	}

	return s.InTx(ctx, func(tx *Tx) error {
		for _, src := range seedSources {
			records, err := loadSeedRecords(src.file)
			if err != nil {
				return err
			}
			for _, rec := range records {
				if err := tx.Put(ctx, src.collection, rec.ID, rec.Value); err != nil {
					return fmt.Errorf("seed %s: %w", src.collection, err)
				}
			}
		}
		return tx.SetMeta(ctx, metaDataInitialized, "true")
	})
}

func loadSeedRecords(file string) ([]Record, error) {
	raw, err := seedFS.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", file, err)
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", file, err)
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		var key struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(row, &key); err != nil || key.ID == "" {
			return nil, fmt.Errorf("fixture %s row %d has no id", file, i)
		}
		records = append(records, Record{ID: key.ID, Value: row})
	}
	return records, nil
}
