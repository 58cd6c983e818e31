package vector

import (
	"errors"
	"fmt"
)

// ErrDuplicateWord is returned by Table.Add when the word is already present.
var ErrDuplicateWord = errors.New("vector: duplicate word")

// Table is an ordered word to vector mapping. Rank order is insertion order,
// which for word2vec sources is the producer's descending-frequency order.
//
// A Table is built once and treated as read-only afterwards; concurrent
// readers need no locking once population has finished.
type Table struct {
	dim   int
	words []string
	data  []float32
	ranks map[string]int
}

// NewTable creates an empty table for vectors of the given dimension. The
// capacity hint pre-allocates storage for that many words.
func NewTable(dim, capacity int) (*Table, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("vector: invalid table dimension %d", dim)
	}
	if capacity < 0 {
		capacity = 0
	}
	return &Table{
		dim:   dim,
		words: make([]string, 0, capacity),
		data:  make([]float32, 0, capacity*dim),
		ranks: make(map[string]int, capacity),
	}, nil
}

// Dim returns the dimensionality of the vectors.
func (t *Table) Dim() int { return t.dim }

// Len returns the number of words.
func (t *Table) Len() int { return len(t.words) }

// Add appends a word with its vector. The vector is copied.
func (t *Table) Add(word string, vec []float32) error {
	if word == "" {
		return fmt.Errorf("vector: empty word")
	}
	if len(vec) != t.dim {
		return fmt.Errorf("%w: word %q has %d components, table has %d", ErrDimensionMismatch, word, len(vec), t.dim)
	}
	if _, ok := t.ranks[word]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateWord, word)
	}
	t.ranks[word] = len(t.words)
	t.words = append(t.words, word)
	t.data = append(t.data, vec...)
	return nil
}

// Rank returns the position of word, or -1 when absent.
func (t *Table) Rank(word string) int {
	if r, ok := t.ranks[word]; ok {
		return r
	}
	return -1
}

// Lookup returns the vector for word. The returned slice aliases table
// storage and must not be modified.
func (t *Table) Lookup(word string) ([]float32, bool) {
	r, ok := t.ranks[word]
	if !ok {
		return nil, false
	}
	return t.At(r), true
}

// Word returns the word at the given rank.
func (t *Table) Word(rank int) string { return t.words[rank] }

// At returns the vector at the given rank. The returned slice aliases table
// storage and must not be modified.
func (t *Table) At(rank int) []float32 {
	start := rank * t.dim
	return t.data[start : start+t.dim : start+t.dim]
}

// Words returns a copy of the vocabulary in rank order.
func (t *Table) Words() []string {
	return append([]string(nil), t.words...)
}
