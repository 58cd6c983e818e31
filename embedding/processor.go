package embedding

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/viant/wordvec/vector"
)

// Processor maps phrases to vectors and scores phrase similarity over a
// lazily loaded vector table.
type Processor struct {
	source Source
	opts   options

	mu    sync.RWMutex
	state state
}

// New creates a Processor reading its table from source.
func New(source Source, opts ...Option) *Processor {
	return &Processor{
		source: source,
		opts:   newOptions(opts),
		state:  unloaded{},
	}
}

// NewFromFile creates a Processor over a vector file of the given format,
// keeping at most limit words.
func NewFromFile(path string, format Format, limit int, opts ...Option) *Processor {
	o := newOptions(opts)
	src := &FileSource{Path: path, Format: format, Limit: limit, Logger: o.logger}
	return &Processor{source: src, opts: o, state: unloaded{}}
}

// Pooling returns the configured pooling.
func (p *Processor) Pooling() Pooling { return p.opts.pooling }

// MissPolicy returns the configured unknown-word policy.
func (p *Processor) MissPolicy() MissPolicy { return p.opts.miss }

// Loaded reports whether the table has been loaded.
func (p *Processor) Loaded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.state.(loaded)
	return ok
}

// Table returns the loaded table without triggering a load.
func (p *Processor) Table() (*vector.Table, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if s, ok := p.state.(loaded); ok {
		return s.table, nil
	}
	return nil, ErrNotLoaded
}

// Load reads the table from the source unless it is already loaded. A failed
// load leaves the Processor unloaded.
func (p *Processor) Load(ctx context.Context) error {
	_, err := p.ensureLoaded(ctx)
	return err
}

func (p *Processor) ensureLoaded(ctx context.Context) (*vector.Table, error) {
	p.mu.RLock()
	if s, ok := p.state.(loaded); ok {
		p.mu.RUnlock()
		return s.table, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if s, ok := p.state.(loaded); ok {
		return s.table, nil
	}
	if p.source == nil {
		return nil, fmt.Errorf("embedding: no vector source configured")
	}

	logger := p.opts.logger.With("source", fmt.Sprint(p.source))
	logger.Info("loading word vectors")
	started := time.Now()
	table, err := p.source.Load(ctx)
	if err != nil {
		logger.Error("loading word vectors failed", "error", err)
		return nil, err
	}
	if table == nil {
		return nil, fmt.Errorf("embedding: source returned no table")
	}
	p.state = loaded{table: table}
	logger.Info("loaded word vectors", "words", table.Len(), "dim", table.Dim(), "elapsed", time.Since(started))
	return table, nil
}

// PhraseVector returns the pooled vector of a single phrase, loading the
// table if needed.
func (p *Processor) PhraseVector(ctx context.Context, phrase string) ([]float32, error) {
	table, err := p.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}
	return pool(table, phrase, 0, p.opts)
}

// EmbedPhrases returns one vector per phrase, in input order. The first
// failing phrase aborts the whole batch.
func (p *Processor) EmbedPhrases(ctx context.Context, phrases []string) ([][]float32, error) {
	table, err := p.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}
	out := make([][]float32, 0, len(phrases))
	for i, phrase := range phrases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		vec, err := pool(table, phrase, i, p.opts)
		if err != nil {
			return nil, err
		}
		out = append(out, vec)
	}
	return out, nil
}

// Similarity returns the cosine similarity of two phrases' vectors, in
// [-1, 1]. A LookupError reports index 0 for a and 1 for b.
func (p *Processor) Similarity(ctx context.Context, a, b string) (float64, error) {
	table, err := p.ensureLoaded(ctx)
	if err != nil {
		return 0, err
	}
	va, err := pool(table, a, 0, p.opts)
	if err != nil {
		return 0, err
	}
	vb, err := pool(table, b, 1, p.opts)
	if err != nil {
		return 0, err
	}
	sim, err := vector.CosineSimilarity(va, vb)
	if errors.Is(err, vector.ErrZeroMagnitude) {
		return 0, fmt.Errorf("similarity of %q and %q: %w: %w", a, b, ErrZeroMagnitude, err)
	}
	if errors.Is(err, vector.ErrNonFinite) {
		return 0, fmt.Errorf("similarity of %q and %q: %w: %w", a, b, ErrNonFinite, err)
	}
	if err != nil {
		return 0, err
	}
	return sim, nil
}
