package embedding

import (
	"fmt"
	"strings"

	"github.com/viant/wordvec/vector"
)

// Tokenize splits a phrase on Unicode whitespace. Tokens keep their case and
// punctuation.
func Tokenize(phrase string) []string {
	return strings.Fields(phrase)
}

// pool computes the vector of one phrase. index identifies the phrase in
// errors and logs.
func pool(t *vector.Table, phrase string, index int, o options) ([]float32, error) {
	acc := make([]float32, t.Dim())
	count := 0
	for _, tok := range Tokenize(phrase) {
		vec, ok := t.Lookup(tok)
		if !ok {
			switch o.miss {
			case MissSkip:
				o.logger.Warn("skipping unknown word", "word", tok, "phrase", index)
			case MissZero:
				count++
			default:
				return nil, &LookupError{Word: tok, Phrase: phrase, Index: index}
			}
			continue
		}
		if err := vector.Add(acc, vec); err != nil {
			return nil, err
		}
		count++
	}
	if count == 0 {
		return nil, fmt.Errorf("phrase %d (%q): %w", index, phrase, ErrEmptyPhrase)
	}
	if !vector.Finite(acc) {
		return nil, fmt.Errorf("phrase %d (%q): %w", index, phrase, ErrNonFinite)
	}

	switch o.pooling {
	case PoolSum:
		// raw sum
	case PoolUnit:
		vector.Scale(acc, 1/float32(count))
		if err := vector.Normalize(acc); err != nil {
			return nil, fmt.Errorf("phrase %d (%q): %w: %w", index, phrase, ErrZeroMagnitude, err)
		}
	default:
		vector.Scale(acc, 1/float32(count))
	}
	if !vector.Finite(acc) {
		return nil, fmt.Errorf("phrase %d (%q): %w", index, phrase, ErrNonFinite)
	}
	return acc, nil
}
