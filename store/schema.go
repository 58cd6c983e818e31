package store

import (
	"context"
	"database/sql"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS words (
    rank INTEGER PRIMARY KEY,
    word TEXT NOT NULL UNIQUE,
    embedding BLOB NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS words_meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`,
}

// EnsureSchema creates the words and words_meta tables in the provided
// database if they do not already exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range schema {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return err
		}
	}
	return nil
}
