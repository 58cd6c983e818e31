package embedding

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/viant/wordvec/engine"
	"github.com/viant/wordvec/store"
	"github.com/viant/wordvec/vector"
	"github.com/viant/wordvec/word2vec"
)

// ExportFlat writes the loaded table to path in the word2vec text layout.
// The file is written next to path and renamed into place, so readers never
// observe a partial export.
func (p *Processor) ExportFlat(path string) error {
	return p.exportFile(path, "text", word2vec.WriteText)
}

// ExportBinary writes the loaded table to path in the word2vec binary layout.
func (p *Processor) ExportBinary(path string) error {
	return p.exportFile(path, "binary", word2vec.WriteBinary)
}

// ExportSQLite writes the loaded table into the words table of the SQLite
// database at path, replacing any previously exported table.
func (p *Processor) ExportSQLite(ctx context.Context, path string) error {
	table, err := p.Table()
	if err != nil {
		return err
	}
	db, err := engine.Open(path)
	if err != nil {
		return fmt.Errorf("embedding: open export database: %w", err)
	}
	defer db.Close()
	st, err := store.NewSQLiteStore(ctx, db)
	if err != nil {
		return err
	}
	if err := st.Save(ctx, table); err != nil {
		return fmt.Errorf("embedding: export sqlite %s: %w", path, err)
	}
	p.opts.logger.Info("exported word vectors", "format", "sqlite", "path", path, "words", table.Len())
	return nil
}

func (p *Processor) exportFile(path, format string, write func(io.Writer, *vector.Table) error) error {
	table, err := p.Table()
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, func(w io.Writer) error { return write(w, table) }); err != nil {
		return fmt.Errorf("embedding: export %s %s: %w", format, path, err)
	}
	p.opts.logger.Info("exported word vectors", "format", format, "path", path, "words", table.Len())
	return nil
}

func writeFileAtomic(path string, write func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()
	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
