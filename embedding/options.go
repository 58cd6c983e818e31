package embedding

import (
	"fmt"
	"log/slog"
	"strings"
)

// Pooling selects how token vectors are combined into a phrase vector.
type Pooling int

const (
	// PoolMean divides the token sum by the token count.
	PoolMean Pooling = iota
	// PoolSum keeps the raw token sum.
	PoolSum
	// PoolUnit scales the mean to unit length.
	PoolUnit
)

var poolingNames = map[Pooling]string{PoolMean: "mean", PoolSum: "sum", PoolUnit: "unit"}

func (p Pooling) String() string {
	if name, ok := poolingNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Pooling(%d)", int(p))
}

// ParsePooling maps "mean", "sum" or "unit" to a Pooling. The empty string
// selects PoolMean.
func ParsePooling(s string) (Pooling, error) {
	if s == "" {
		return PoolMean, nil
	}
	for p, name := range poolingNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("embedding: unknown pooling %q", s)
}

// MissPolicy selects what happens to a token absent from the table.
type MissPolicy int

const (
	// MissFail aborts with a *LookupError.
	MissFail MissPolicy = iota
	// MissSkip drops the token and logs a warning.
	MissSkip
	// MissZero treats the token as a zero vector; it still counts toward
	// the mean.
	MissZero
)

var missNames = map[MissPolicy]string{MissFail: "fail", MissSkip: "skip", MissZero: "zero"}

func (m MissPolicy) String() string {
	if name, ok := missNames[m]; ok {
		return name
	}
	return fmt.Sprintf("MissPolicy(%d)", int(m))
}

// ParseMissPolicy maps "fail", "skip" or "zero" to a MissPolicy. The empty
// string selects MissFail.
func ParseMissPolicy(s string) (MissPolicy, error) {
	if s == "" {
		return MissFail, nil
	}
	for m, name := range missNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("embedding: unknown miss policy %q", s)
}

type options struct {
	pooling Pooling
	miss    MissPolicy
	logger  *slog.Logger
}

// Option configures a Processor.
type Option func(*options)

// WithPooling sets the pooling used by every phrase operation.
func WithPooling(p Pooling) Option { return func(o *options) { o.pooling = p } }

// WithMissPolicy sets the unknown-word policy.
func WithMissPolicy(m MissPolicy) Option { return func(o *options) { o.miss = m } }

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{pooling: PoolMean, miss: MissFail, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
