package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNoRecord is returned when a keyed lookup or mutation finds nothing.
// Callers map it to their own error taxonomy.
var ErrNoRecord = errors.New("kvstore: record not found")

// Record is one stored row: an id and its raw JSON value.
type Record struct {
	ID    string
	Value []byte
}

// Store is a keyed JSON namespace over a single sqlite file. Every record
// lives in its own (collection, id) row, so single-entity writes touch one
// indexed row instead of rewriting a whole collection.
type Store struct {
	db *sql.DB
	accessor
}

// Open creates the backing directory if needed, opens the sqlite file, and
// brings the schema up to date.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(path); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, accessor: accessor{q: db}}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Tx exposes the store operations inside one sqlite transaction.
type Tx struct {
	accessor
}

// InTx runs fn inside a transaction. Every mutation made through the Tx
// commits or rolls back as a unit.
func (s *Store) InTx(ctx context.Context, fn func(tx *Tx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(&Tx{accessor{q: sqlTx}}); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type accessor struct {
	q querier
}

// Get returns the raw JSON value stored under (collection, id).
func (a accessor) Get(ctx context.Context, collection, id string) ([]byte, error) {
	var value []byte
	err := a.q.QueryRowContext(ctx,
		`SELECT value FROM kv_records WHERE collection = ? AND id = ?`,
		collection, id,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, ErrNoRecord)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return value, nil
}

// Put upserts the value stored under (collection, id).
func (a accessor) Put(ctx context.Context, collection, id string, value []byte) error {
	_, err := a.q.ExecContext(ctx,
		`INSERT INTO kv_records (collection, id, value) VALUES (?, ?, ?)
		 ON CONFLICT (collection, id) DO UPDATE SET value = excluded.value`,
		collection, id, value,
	)
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", collection, id, err)
	}
	return nil
}

// Delete removes (collection, id). Deleting a missing record is an ErrNoRecord.
func (a accessor) Delete(ctx context.Context, collection, id string) error {
	res, err := a.q.ExecContext(ctx,
		`DELETE FROM kv_records WHERE collection = ? AND id = ?`,
		collection, id,
	)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete %s/%s: %w", collection, id, ErrNoRecord)
	}
	return nil
}

// List returns every record in a collection in insertion order.
func (a accessor) List(ctx context.Context, collection string) ([]Record, error) {
	rows, err := a.q.QueryContext(ctx,
		`SELECT id, value FROM kv_records WHERE collection = ? ORDER BY rowid`,
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Value); err != nil {
			return nil, fmt.Errorf("list %s: %w", collection, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	return records, nil
}

// ReplaceCollection drops a collection and writes the given records in order.
func (a accessor) ReplaceCollection(ctx context.Context, collection string, records []Record) error {
	if _, err := a.q.ExecContext(ctx,
		`DELETE FROM kv_records WHERE collection = ?`, collection,
	); err != nil {
		return fmt.Errorf("replace %s: %w", collection, err)
	}
	for _, rec := range records {
		if err := a.Put(ctx, collection, rec.ID, rec.Value); err != nil {
			return fmt.Errorf("replace %s: %w", collection, err)
		}
	}
	return nil
}

// GetMeta returns the metadata value stored under key, or ErrNoRecord.
func (a accessor) GetMeta(ctx context.Context, key string) (string, error) {
	var value string
	err := a.q.QueryRowContext(ctx,
		`SELECT value FROM kv_meta WHERE key = ?`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("get meta %s: %w", key, ErrNoRecord)
	}
	if err != nil {
		return "", fmt.Errorf("get meta %s: %w", key, err)
	}
	return value, nil
}

// SetMeta upserts a metadata value.
func (a accessor) SetMeta(ctx context.Context, key, value string) error {
	_, err := a.q.ExecContext(ctx,
		`INSERT INTO kv_meta (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set meta %s: %w", key, err)
	}
	return nil
}
