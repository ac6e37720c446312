package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/verte-zerg/lexigram/internal/model"
)

// GetDefinition returns a cached definition. The bool is false on a cache miss.
func (s *Store) GetDefinition(ctx context.Context, word string) (model.Definition, bool, error) {
	def := model.Definition{Word: word}
	var found int
	err := s.db.QueryRowContext(ctx, `SELECT text, found FROM definitions WHERE word = ?`, word).Scan(&def.Text, &found)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Definition{}, false, nil
	}
	if err != nil {
		return model.Definition{}, false, err
	}
	def.Found = found != 0
	return def, true, nil
}

// PutDefinition caches a definition, replacing any previous entry.
func (s *Store) PutDefinition(ctx context.Context, def model.Definition) error {
	found := 0
	if def.Found {
		found = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO definitions (word, text, found) VALUES (?, ?, ?)
		 ON CONFLICT(word) DO UPDATE SET text = excluded.text, found = excluded.found`,
		def.Word, def.Text, found)
	return err
}
