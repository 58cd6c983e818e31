package word2vec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/viant/wordvec/vector"
)

// WriteText encodes table in the word2vec text layout. Components use the
// shortest decimal form that round-trips to the same float32.
func WriteText(w io.Writer, table *vector.Table) error {
	bw := bufio.NewWriterSize(w, 1<<20)
	hdr := Header{VocabSize: table.Len(), Dim: table.Dim()}
	if _, err := bw.WriteString(hdr.String() + "\n"); err != nil {
		return err
	}
	line := make([]byte, 0, 64+table.Dim()*12)
	for i := 0; i < table.Len(); i++ {
		word := table.Word(i)
		if err := checkWord(word); err != nil {
			return err
		}
		line = append(line[:0], word...)
		for _, v := range table.At(i) {
			line = append(line, ' ')
			line = strconv.AppendFloat(line, float64(v), 'g', -1, 32)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteBinary encodes table in the word2vec binary layout used by gensim:
// each record is the word, a space and the raw little-endian vector.
func WriteBinary(w io.Writer, table *vector.Table) error {
	bw := bufio.NewWriterSize(w, 1<<20)
	hdr := Header{VocabSize: table.Len(), Dim: table.Dim()}
	if _, err := bw.WriteString(hdr.String() + "\n"); err != nil {
		return err
	}
	rec := make([]byte, 0, 64+table.Dim()*4)
	for i := 0; i < table.Len(); i++ {
		word := table.Word(i)
		if err := checkWord(word); err != nil {
			return err
		}
		rec = append(rec[:0], word...)
		rec = append(rec, ' ')
		rec = vector.AppendEmbedding(rec, table.At(i))
		if _, err := bw.Write(rec); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func checkWord(word string) error {
	if strings.IndexFunc(word, unicode.IsSpace) >= 0 {
		return fmt.Errorf("word2vec: word %q contains whitespace", word)
	}
	return nil
}
