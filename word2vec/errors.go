package word2vec

import (
	"errors"
	"fmt"
)

// ErrFormat matches every *FormatError via errors.Is.
var ErrFormat = errors.New("word2vec: invalid format")

// FormatError reports input that does not follow the expected layout. For
// binary input Offset is the byte offset where decoding failed; for text
// input Line is the 1-based line number.
type FormatError struct {
	Offset int64
	Line   int
	Msg    string
	Err    error
}

func (e *FormatError) Error() string {
	where := fmt.Sprintf("offset %d", e.Offset)
	if e.Line > 0 {
		where = fmt.Sprintf("line %d", e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("word2vec: %s at %s: %v", e.Msg, where, e.Err)
	}
	return fmt.Sprintf("word2vec: %s at %s", e.Msg, where)
}

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// Unwrap returns the underlying cause, if any.
func (e *FormatError) Unwrap() error { return e.Err }
