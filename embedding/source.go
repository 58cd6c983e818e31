package embedding

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/viant/wordvec/engine"
	"github.com/viant/wordvec/store"
	"github.com/viant/wordvec/vector"
	"github.com/viant/wordvec/word2vec"
)

// Source produces the vector table a Processor works on.
type Source interface {
	Load(ctx context.Context) (*vector.Table, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (*vector.Table, error)

// Load calls f.
func (f SourceFunc) Load(ctx context.Context) (*vector.Table, error) { return f(ctx) }

// Format identifies the on-disk layout of a vector file.
type Format int

const (
	// FormatBinary is the word2vec binary layout.
	FormatBinary Format = iota
	// FormatText is the word2vec text layout, as written by ExportFlat.
	FormatText
	// FormatSQLite is a database written by ExportSQLite.
	FormatSQLite
)

var formatNames = map[Format]string{FormatBinary: "binary", FormatText: "text", FormatSQLite: "sqlite"}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps "binary", "text" or "sqlite" to a Format. The empty
// string selects FormatBinary.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatBinary, nil
	}
	for f, name := range formatNames {
		if strings.EqualFold(s, name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("embedding: unknown vector format %q", s)
}

// FileSource loads a table from a file on disk.
type FileSource struct {
	Path   string
	Format Format
	// Limit caps the vocabulary; zero or negative loads every word.
	Limit  int
	Logger *slog.Logger
}

func (s *FileSource) String() string { return s.Format.String() + ":" + s.Path }

// Load reads the file. Missing or unreadable files surface the underlying
// *fs.PathError; malformed content surfaces a *word2vec.FormatError.
func (s *FileSource) Load(ctx context.Context) (*vector.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch s.Format {
	case FormatBinary, FormatText:
		f, err := os.Open(s.Path)
		if err != nil {
			return nil, fmt.Errorf("embedding: open vectors: %w", err)
		}
		defer f.Close()
		opts := word2vec.Options{Limit: s.Limit, Logger: s.Logger}
		if s.Format == FormatText {
			return word2vec.ReadText(f, opts)
		}
		return word2vec.ReadBinary(f, opts)
	case FormatSQLite:
		// the driver would silently create a missing database
		if _, err := os.Stat(s.Path); err != nil {
			return nil, fmt.Errorf("embedding: open vectors: %w", err)
		}
		db, err := engine.Open(s.Path)
		if err != nil {
			return nil, fmt.Errorf("embedding: open vectors: %w", err)
		}
		defer db.Close()
		st, err := store.NewSQLiteStore(ctx, db)
		if err != nil {
			return nil, err
		}
		return st.Load(ctx, s.Limit)
	default:
		return nil, fmt.Errorf("embedding: unsupported vector format %v", s.Format)
	}
}
