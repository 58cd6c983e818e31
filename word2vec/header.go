package word2vec

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxDim bounds the vector dimension accepted from a header.
const MaxDim = 1 << 16

// maxPreallocBytes caps the vector storage reserved up front from a header's
// vocabulary size; larger tables grow as records arrive.
const maxPreallocBytes = 256 << 20

// Header is the "<vocab> <dim>" line that opens both layouts.
type Header struct {
	VocabSize int
	Dim       int
}

// String renders the header line without the trailing newline.
func (h Header) String() string {
	return strconv.Itoa(h.VocabSize) + " " + strconv.Itoa(h.Dim)
}

func parseHeader(line string) (Header, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Header{}, fmt.Errorf("want 2 header fields, got %d", len(fields))
	}
	vocab, err := strconv.Atoi(fields[0])
	if err != nil {
		return Header{}, fmt.Errorf("vocabulary size: %w", err)
	}
	dim, err := strconv.Atoi(fields[1])
	if err != nil {
		return Header{}, fmt.Errorf("dimension: %w", err)
	}
	if vocab < 0 {
		return Header{}, fmt.Errorf("negative vocabulary size %d", vocab)
	}
	if dim <= 0 {
		return Header{}, fmt.Errorf("non-positive dimension %d", dim)
	}
	if dim > MaxDim {
		return Header{}, fmt.Errorf("dimension %d exceeds %d", dim, MaxDim)
	}
	return Header{VocabSize: vocab, Dim: dim}, nil
}

// records returns how many records a reader should consume.
func (h Header) records(limit int) int {
	if limit > 0 && limit < h.VocabSize {
		return limit
	}
	return h.VocabSize
}

// capacity returns the number of records to reserve space for.
func (h Header) capacity(n int) int {
	return min(n, maxPreallocBytes/(h.Dim*4))
}
