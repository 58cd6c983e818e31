package word2vec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/viant/wordvec/vector"
)

// maxWordBytes bounds a single binary-record word so a corrupt file without
// separators fails instead of buffering the whole input.
const maxWordBytes = 1 << 16

// Options controls how a source is decoded.
type Options struct {
	// Limit caps the number of records read. Zero or negative reads the
	// full vocabulary announced by the header.
	Limit int

	// Logger receives a warning for every duplicate word skipped. Nil
	// disables the warnings.
	Logger *slog.Logger
}

// ReadBinary decodes a word2vec binary stream into a table.
func ReadBinary(r io.Reader, opts Options) (*vector.Table, error) {
	cr := &countingReader{r: bufio.NewReaderSize(r, 1<<20)}
	line, err := cr.readLine()
	if err != nil {
		return nil, &FormatError{Offset: cr.off, Msg: "missing header", Err: err}
	}
	hdr, err := parseHeader(line)
	if err != nil {
		return nil, &FormatError{Msg: "bad header", Err: err}
	}
	n := hdr.records(opts.Limit)
	table, err := vector.NewTable(hdr.Dim, hdr.capacity(n))
	if err != nil {
		return nil, err
	}

	buf := make([]byte, hdr.Dim*4)
	for i := 0; i < n; i++ {
		start := cr.off
		word, err := cr.readWord()
		if err != nil {
			return nil, truncated(start, i, n, err)
		}
		if !utf8.ValidString(word) {
			return nil, &FormatError{Offset: start, Msg: fmt.Sprintf("record %d: word is not valid UTF-8", i)}
		}
		if _, err := io.ReadFull(cr, buf); err != nil {
			return nil, truncated(cr.off, i, n, err)
		}
		vec, err := vector.DecodeEmbedding(buf)
		if err != nil {
			return nil, &FormatError{Offset: start, Msg: fmt.Sprintf("record %d", i), Err: err}
		}
		if err := addRecord(table, word, vec, opts.Logger); err != nil {
			return nil, &FormatError{Offset: start, Msg: fmt.Sprintf("record %d", i), Err: err}
		}
	}
	return table, nil
}

// ReadText decodes a word2vec text stream into a table.
func ReadText(r io.Reader, opts Options) (*vector.Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16<<20)
	lineNo := 0
	next := func() (string, bool) {
		for scanner.Scan() {
			lineNo++
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			return line, true
		}
		return "", false
	}

	line, ok := next()
	if !ok {
		return nil, &FormatError{Line: 1, Msg: "missing header", Err: scanErr(scanner)}
	}
	hdr, err := parseHeader(line)
	if err != nil {
		return nil, &FormatError{Line: lineNo, Msg: "bad header", Err: err}
	}
	n := hdr.records(opts.Limit)
	table, err := vector.NewTable(hdr.Dim, hdr.capacity(n))
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		line, ok := next()
		if !ok {
			return nil, &FormatError{Line: lineNo + 1, Msg: fmt.Sprintf("truncated after %d of %d records", i, n), Err: scanErr(scanner)}
		}
		fields := strings.Fields(line)
		if len(fields) != hdr.Dim+1 {
			return nil, &FormatError{Line: lineNo, Msg: fmt.Sprintf("want %d fields, got %d", hdr.Dim+1, len(fields))}
		}
		if !utf8.ValidString(fields[0]) {
			return nil, &FormatError{Line: lineNo, Msg: "word is not valid UTF-8"}
		}
		vec := make([]float32, hdr.Dim)
		for j, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return nil, &FormatError{Line: lineNo, Msg: fmt.Sprintf("component %d", j), Err: err}
			}
			vec[j] = float32(v)
		}
		if err := addRecord(table, fields[0], vec, opts.Logger); err != nil {
			return nil, &FormatError{Line: lineNo, Msg: "bad record", Err: err}
		}
	}
	return table, nil
}

// addRecord keeps the first occurrence of a word, as gensim does.
func addRecord(table *vector.Table, word string, vec []float32, logger *slog.Logger) error {
	err := table.Add(word, vec)
	if errors.Is(err, vector.ErrDuplicateWord) {
		if logger != nil {
			logger.Warn("duplicate word in word2vec source, keeping first", "word", word)
		}
		return nil
	}
	return err
}

func truncated(off int64, got, want int, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &FormatError{Offset: off, Msg: fmt.Sprintf("truncated after %d of %d records", got, want), Err: io.ErrUnexpectedEOF}
	}
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe
	}
	return err
}

func scanErr(s *bufio.Scanner) error {
	if err := s.Err(); err != nil {
		return err
	}
	return io.ErrUnexpectedEOF
}

type countingReader struct {
	r   *bufio.Reader
	off int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.off += int64(n)
	return n, err
}

func (c *countingReader) readLine() (string, error) {
	line, err := c.r.ReadString('\n')
	c.off += int64(len(line))
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readWord reads bytes up to the next space. Newlines before the word are
// skipped since the C tool terminates each vector with one.
func (c *countingReader) readWord() (string, error) {
	var sb strings.Builder
	for {
		b, err := c.r.ReadByte()
		if err != nil {
			return "", err
		}
		c.off++
		if b == '\n' && sb.Len() == 0 {
			continue
		}
		if b == ' ' {
			break
		}
		if sb.Len() >= maxWordBytes {
			return "", &FormatError{Offset: c.off, Msg: fmt.Sprintf("word exceeds %d bytes", maxWordBytes)}
		}
		sb.WriteByte(b)
	}
	if sb.Len() == 0 {
		return "", &FormatError{Offset: c.off, Msg: "empty word"}
	}
	return sb.String(), nil
}
