package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/viant/wordvec/vector"
)

const dimKey = "dim"

// ErrEmpty is returned by Load when no table has been saved.
var ErrEmpty = errors.New("store: no vector table saved")

// SQLiteStore saves and loads a single vector table in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-backed store. It ensures the words
// schema exists in the provided database.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("store: ensure schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Save replaces the stored table with t in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, t *vector.Table) error {
	if t == nil {
		return fmt.Errorf("store: table is nil")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM words`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO words_meta(key, value) VALUES(?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value`, dimKey, strconv.Itoa(t.Dim())); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO words(rank, word, embedding) VALUES(?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := 0; i < t.Len(); i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		emb, err := vector.EncodeEmbedding(t.At(i))
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, i, t.Word(i), emb); err != nil {
			return fmt.Errorf("store: insert %q: %w", t.Word(i), err)
		}
	}
	return tx.Commit()
}

// Dim returns the stored table dimension.
func (s *SQLiteStore) Dim(ctx context.Context) (int, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM words_meta WHERE key = ?`, dimKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrEmpty
	}
	if err != nil {
		return 0, err
	}
	dim, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("store: invalid stored dimension %q: %w", value, err)
	}
	return dim, nil
}

// Load reads up to limit words in rank order. Zero or negative limit loads
// every stored word.
func (s *SQLiteStore) Load(ctx context.Context, limit int) (*vector.Table, error) {
	dim, err := s.Dim(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `SELECT word, embedding FROM words ORDER BY rank LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	t, err := vector.NewTable(dim, 0)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var word string
		var blob []byte
		if err := rows.Scan(&word, &blob); err != nil {
			return nil, err
		}
		vec, err := vector.DecodeEmbedding(blob)
		if err != nil {
			return nil, fmt.Errorf("store: word %q: %w", word, err)
		}
		if err := t.Add(word, vec); err != nil {
			return nil, fmt.Errorf("store: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
