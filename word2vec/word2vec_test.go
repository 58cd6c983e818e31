package word2vec

import (
	"bytes"
	"errors"
	"io"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/viant/wordvec/vector"
)

func sampleTable(t *testing.T) *vector.Table {
	t.Helper()
	tbl, err := vector.NewTable(2, 2)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	if err := tbl.Add("cat", []float32{0.1, 0.2}); err != nil {
		t.Fatalf("Add(cat) failed: %v", err)
	}
	if err := tbl.Add("dog", []float32{0.3, 0.4}); err != nil {
		t.Fatalf("Add(dog) failed: %v", err)
	}
	return tbl
}

func assertSameTable(t *testing.T, got, want *vector.Table) {
	t.Helper()
	if got.Dim() != want.Dim() {
		t.Fatalf("Dim = %d, want %d", got.Dim(), want.Dim())
	}
	if !reflect.DeepEqual(got.Words(), want.Words()) {
		t.Fatalf("Words = %v, want %v", got.Words(), want.Words())
	}
	for i := 0; i < want.Len(); i++ {
		g, w := got.At(i), want.At(i)
		for j := range w {
			if math.Abs(float64(g[j]-w[j])) > 1e-7 {
				t.Fatalf("%s[%d] = %v, want %v", want.Word(i), j, g[j], w[j])
			}
		}
	}
}

func TestText_RoundTrip(t *testing.T) {
	want := sampleTable(t)
	var buf bytes.Buffer
	if err := WriteText(&buf, want); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "2 2\ncat 0.1 0.2\n") {
		t.Fatalf("unexpected text layout:\n%s", buf.String())
	}
	got, err := ReadText(&buf, Options{})
	if err != nil {
		t.Fatalf("ReadText failed: %v", err)
	}
	assertSameTable(t, got, want)
}

func TestBinary_RoundTrip(t *testing.T) {
	want := sampleTable(t)
	var buf bytes.Buffer
	if err := WriteBinary(&buf, want); err != nil {
		t.Fatalf("WriteBinary failed: %v", err)
	}
	// header + 2 * (word + space + 8 bytes)
	if wantLen := len("2 2\n") + 4 + 8 + 4 + 8; buf.Len() != wantLen {
		t.Fatalf("binary length = %d, want %d", buf.Len(), wantLen)
	}
	got, err := ReadBinary(&buf, Options{})
	if err != nil {
		t.Fatalf("ReadBinary failed: %v", err)
	}
	assertSameTable(t, got, want)
}

func TestReadBinary_NewlineTerminatedRecords(t *testing.T) {
	// The word2vec C tool writes a newline after every vector.
	var buf bytes.Buffer
	buf.WriteString("2 1\n")
	buf.WriteString("a ")
	buf.Write(vector.AppendEmbedding(nil, []float32{1}))
	buf.WriteString("\n")
	buf.WriteString("b ")
	buf.Write(vector.AppendEmbedding(nil, []float32{2}))
	buf.WriteString("\n")

	got, err := ReadBinary(&buf, Options{})
	if err != nil {
		t.Fatalf("ReadBinary failed: %v", err)
	}
	if !reflect.DeepEqual(got.Words(), []string{"a", "b"}) {
		t.Fatalf("Words = %v", got.Words())
	}
	if v, _ := got.Lookup("b"); v[0] != 2 {
		t.Fatalf("b = %v, want [2]", v)
	}
}

func TestReadBinary_Limit(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBinary(&buf, sampleTable(t)); err != nil {
		t.Fatalf("WriteBinary failed: %v", err)
	}
	got, err := ReadBinary(&buf, Options{Limit: 1})
	if err != nil {
		t.Fatalf("ReadBinary failed: %v", err)
	}
	if !reflect.DeepEqual(got.Words(), []string{"cat"}) {
		t.Fatalf("Words = %v, want [cat]", got.Words())
	}
}

func TestReadText_Limit(t *testing.T) {
	got, err := ReadText(strings.NewReader("3 1\na 1\nb 2\nc 3\n"), Options{Limit: 2})
	if err != nil {
		t.Fatalf("ReadText failed: %v", err)
	}
	if !reflect.DeepEqual(got.Words(), []string{"a", "b"}) {
		t.Fatalf("Words = %v, want [a b]", got.Words())
	}
}

func TestReadBinary_FormatErrors(t *testing.T) {
	full := new(bytes.Buffer)
	if err := WriteBinary(full, sampleTable(t)); err != nil {
		t.Fatalf("WriteBinary failed: %v", err)
	}
	cases := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"header not numeric", []byte("two 2\n")},
		{"header one field", []byte("2\n")},
		{"zero dimension", []byte("2 0\n")},
		{"dimension too large", []byte("1 100000000000000\n")},
		{"missing records", []byte("2 2\n")},
		{"truncated vector", full.Bytes()[:full.Len()-3]},
		{"empty word", append([]byte("1 1\n "), 0, 0, 0, 0)},
		{"invalid utf8", append([]byte("1 1\n\xff\xfe "), 0, 0, 0, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadBinary(bytes.NewReader(tc.input), Options{})
			if !errors.Is(err, ErrFormat) {
				t.Fatalf("err = %v, want ErrFormat", err)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("err %T is not *FormatError", err)
			}
		})
	}
}

func TestReadBinary_TruncatedWrapsUnexpectedEOF(t *testing.T) {
	_, err := ReadBinary(strings.NewReader("2 2\n"), Options{})
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("err = %v, want io.ErrUnexpectedEOF in chain", err)
	}
	if !strings.Contains(err.Error(), "truncated after 0 of 2 records") {
		t.Fatalf("err = %v", err)
	}
}

func TestRead_OversizedHeader(t *testing.T) {
	// A header may announce far more than the stream holds; readers must not
	// reserve memory for it up front.
	_, err := ReadBinary(strings.NewReader("100000000000000 300\n"), Options{})
	if !errors.Is(err, ErrFormat) || !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("ReadBinary err = %v, want truncated ErrFormat", err)
	}
	_, err = ReadText(strings.NewReader("100000000000000 300\n"), Options{})
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("ReadText err = %v, want ErrFormat", err)
	}
	for _, hdr := range []string{"1 100000000000000\n", "1 65537\n"} {
		if _, err := ReadText(strings.NewReader(hdr), Options{}); !errors.Is(err, ErrFormat) {
			t.Fatalf("ReadText(%q) err = %v, want ErrFormat", hdr, err)
		}
		if _, err := ReadBinary(strings.NewReader(hdr), Options{}); !errors.Is(err, ErrFormat) {
			t.Fatalf("ReadBinary(%q) err = %v, want ErrFormat", hdr, err)
		}
	}
	got, err := ReadText(strings.NewReader("1 65536\n"), Options{Limit: -1})
	if err == nil || got != nil {
		t.Fatalf("ReadText with missing records = %v, %v", got, err)
	}
}

func TestReadText_FormatErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  int
	}{
		{"empty", "", 1},
		{"bad header", "x y\n", 1},
		{"too few components", "1 2\ncat 0.1\n", 2},
		{"bad float", "1 2\ncat 0.1 abc\n", 2},
		{"missing line", "2 1\ncat 0.1\n", 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadText(strings.NewReader(tc.input), Options{})
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("err = %v, want *FormatError", err)
			}
			if fe.Line != tc.line {
				t.Fatalf("Line = %d, want %d (%v)", fe.Line, tc.line, err)
			}
		})
	}
}

func TestRead_DuplicateKeepsFirst(t *testing.T) {
	got, err := ReadText(strings.NewReader("3 1\na 1\na 5\nb 2\n"), Options{})
	if err != nil {
		t.Fatalf("ReadText failed: %v", err)
	}
	if !reflect.DeepEqual(got.Words(), []string{"a", "b"}) {
		t.Fatalf("Words = %v, want [a b]", got.Words())
	}
	if v, _ := got.Lookup("a"); v[0] != 1 {
		t.Fatalf("a = %v, want [1]", v)
	}
}

func TestWrite_RejectsWhitespaceWord(t *testing.T) {
	tbl, _ := vector.NewTable(1, 1)
	if err := tbl.Add("new york", []float32{1}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := WriteText(io.Discard, tbl); err == nil {
		t.Fatalf("WriteText: expected error for word with space")
	}
	if err := WriteBinary(io.Discard, tbl); err == nil {
		t.Fatalf("WriteBinary: expected error for word with space")
	}

	for _, word := range []string{"new\u00a0york", "a\u0085b", "x\u2003y"} {
		tbl, _ := vector.NewTable(1, 1)
		if err := tbl.Add(word, []float32{1}); err != nil {
			t.Fatalf("Add(%q) failed: %v", word, err)
		}
		if err := WriteText(io.Discard, tbl); err == nil {
			t.Fatalf("WriteText(%q): expected error for Unicode space", word)
		}
		if err := WriteBinary(io.Discard, tbl); err == nil {
			t.Fatalf("WriteBinary(%q): expected error for Unicode space", word)
		}
	}
}
