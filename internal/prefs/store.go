// Package prefs persists bookmark and notification flags across runs.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/goodnatureofminers/devnet-explorer/internal/model"
	"github.com/goodnatureofminers/devnet-explorer/internal/state"
)

type (
	Metrics interface {
		ObserveFlush(err error, size int, started time.Time)
	}
)

// Store keeps field preferences in a SQLite file.
type Store struct {
	db      *sql.DB
	metrics Metrics
}

// Open opens or creates the database at path and migrates it.
func Open(ctx context.Context, path string, metrics Metrics) (*Store, error) {
	if path == "" {
		return nil, errors.New("preferences db path is required")
	}
	if metrics == nil {
		return nil, errors.New("preferences metrics is required")
	}
	db, err := OpenDB(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, metrics: metrics}, nil
}

// OpenDB opens the SQLite database at path without migrating it.
func OpenDB(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load returns every stored preference ordered by field identifier.
func (s *Store) Load(ctx context.Context) (prefs []state.Preference, err error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT field_identifier, bookmarked, notified
FROM field_preferences
ORDER BY field_identifier`)
	if err != nil {
		return nil, fmt.Errorf("query preferences: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var (
			id                   string
			bookmarked, notified int
		)
		if err = rows.Scan(&id, &bookmarked, &notified); err != nil {
			return nil, fmt.Errorf("scan preference: %w", err)
		}
		prefs = append(prefs, state.Preference{
			FieldIdentifier: model.FieldIdentifier(id),
			Bookmarked:      bookmarked != 0,
			Notified:        notified != 0,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate preferences: %w", err)
	}
	return prefs, nil
}

// Upsert writes a batch of preferences in one transaction. Fields with both
// flags cleared are deleted.
func (s *Store) Upsert(ctx context.Context, prefs []state.Preference) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveFlush(err, len(prefs), started)
	}()
	if len(prefs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, p := range prefs {
		if !p.Bookmarked && !p.Notified {
			if _, err = tx.ExecContext(ctx, `DELETE FROM field_preferences WHERE field_identifier = ?`, string(p.FieldIdentifier)); err != nil {
				return fmt.Errorf("delete preference %s: %w", p.FieldIdentifier, err)
			}
			continue
		}
		if _, err = tx.ExecContext(ctx, `
INSERT INTO field_preferences(field_identifier, bookmarked, notified, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(field_identifier) DO UPDATE SET
	bookmarked=excluded.bookmarked,
	notified=excluded.notified,
	updated_at=excluded.updated_at
`, string(p.FieldIdentifier), boolToInt(p.Bookmarked), boolToInt(p.Notified), now); err != nil {
			return fmt.Errorf("upsert preference %s: %w", p.FieldIdentifier, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit preferences: %w", err)
	}
	return nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
