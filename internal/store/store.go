// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/lexigram/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// DefaultHistorySize is the number of searches kept when no size is configured.
const DefaultHistorySize = 15

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for favorites, history and cached definitions.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection avoids SQLITE_BUSY between concurrent writers.
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS favorites (
			word TEXT PRIMARY KEY,
			added_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS history (
			word TEXT PRIMARY KEY,
			used_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS definitions (
			word TEXT PRIMARY KEY,
			text TEXT NOT NULL,
			found INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_history_used_at ON history(used_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// AddFavorite saves word, refreshing its timestamp when already present.
func (s *Store) AddFavorite(ctx context.Context, word string, at time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO favorites (word, added_at) VALUES (?, ?)
		 ON CONFLICT(word) DO UPDATE SET added_at = excluded.added_at`,
		word, at.UTC().Format(timeLayout))
	return err
}

// RemoveFavorite deletes word. Removing a missing word is not an error.
func (s *Store) RemoveFavorite(ctx context.Context, word string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM favorites WHERE word = ?`, word)
	return err
}

// IsFavorite reports whether word is saved.
func (s *Store) IsFavorite(ctx context.Context, word string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM favorites WHERE word = ?`, word).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListFavorites returns saved words, newest first.
func (s *Store) ListFavorites(ctx context.Context) ([]model.Favorite, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word, added_at FROM favorites ORDER BY added_at DESC, word ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.Favorite
	for rows.Next() {
		var fav model.Favorite
		var addedAt string
		if err := rows.Scan(&fav.Word, &addedAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(timeLayout, addedAt)
		if err != nil {
			return nil, err
		}
		fav.AddedAt = parsed
		result = append(result, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// FavoriteSet returns saved words as a set.
func (s *Store) FavoriteSet(ctx context.Context) (map[string]bool, error) {
	favs, err := s.ListFavorites(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(favs))
	for _, fav := range favs {
		set[fav.Word] = true
	}
	return set, nil
}

// ClearFavorites deletes every saved word.
func (s *Store) ClearFavorites(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM favorites`)
	return err
}

// AddHistory records a search, moving a repeated word to the front and keeping
// at most limit entries. A limit of 0 or less uses DefaultHistorySize.
func (s *Store) AddHistory(ctx context.Context, word string, at time.Time, limit int) (err error) {
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO history (word, used_at) VALUES (?, ?)
		 ON CONFLICT(word) DO UPDATE SET used_at = excluded.used_at`,
		word, at.UTC().Format(timeLayout)); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`DELETE FROM history WHERE word NOT IN (
			SELECT word FROM history ORDER BY used_at DESC, word ASC LIMIT ?
		)`, limit); err != nil {
		return err
	}
	return tx.Commit()
}

// ListHistory returns past searches, most recent first.
func (s *Store) ListHistory(ctx context.Context) ([]model.HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word, used_at FROM history ORDER BY used_at DESC, word ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.HistoryEntry
	for rows.Next() {
		var entry model.HistoryEntry
		var usedAt string
		if err := rows.Scan(&entry.Word, &usedAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(timeLayout, usedAt)
		if err != nil {
			return nil, err
		}
		entry.UsedAt = parsed
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
