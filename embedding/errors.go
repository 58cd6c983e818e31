package embedding

import (
	"errors"
	"fmt"
)

var (
	// ErrArithmetic is wrapped by every error caused by an undefined
	// arithmetic result.
	ErrArithmetic = errors.New("embedding: arithmetic error")

	// ErrEmptyPhrase is returned when a phrase has no tokens left to pool.
	ErrEmptyPhrase = fmt.Errorf("%w: phrase has no tokens", ErrArithmetic)

	// ErrZeroMagnitude is returned when a phrase vector has zero length and
	// cannot be normalized or compared.
	ErrZeroMagnitude = fmt.Errorf("%w: zero-magnitude phrase vector", ErrArithmetic)

	// ErrNonFinite is returned when a phrase vector or its similarity
	// overflows or holds NaN.
	ErrNonFinite = fmt.Errorf("%w: non-finite phrase vector", ErrArithmetic)

	// ErrUnknownWord matches every *LookupError.
	ErrUnknownWord = errors.New("embedding: unknown word")

	// ErrNotLoaded is returned by operations that require a loaded table
	// but never trigger a load themselves.
	ErrNotLoaded = errors.New("embedding: vector table not loaded")
)

// LookupError reports a phrase token that is absent from the vector table.
type LookupError struct {
	Word   string
	Phrase string
	// Index is the position of the phrase in the batch.
	Index int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("embedding: unknown word %q in phrase %d (%q)", e.Word, e.Index, e.Phrase)
}

// Is reports whether target is ErrUnknownWord.
func (e *LookupError) Is(target error) bool { return target == ErrUnknownWord }
