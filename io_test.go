package sstring

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestWriter(t *testing.T) {
	s := New(0)
	fmt.Fprintf(s, "%s=%d;", "a", 1)
	_, _ = s.WriteString("b=2;")
	_, _ = io.Copy(s, strings.NewReader("c=3"))
	if s.String() != "a=1;b=2;c=3" {
		t.Fatalf("unexpected content %q", s)
	}
	checkInvariants(t, s)
}

func TestReadFrom(t *testing.T) {
	input := strings.Repeat("0123456789", 200)
	s := FromString(">")
	n, err := s.ReadFrom(iotest.HalfReader(strings.NewReader(input)))
	if err != nil || n != int64(len(input)) {
		t.Fatalf("expected %d bytes read, have %d (%v)", len(input), n, err)
	}
	if s.String() != ">"+input {
		t.Fatalf("content does not match input")
	}
	checkInvariants(t, s)
}

func TestReadFromError(t *testing.T) {
	boom := errors.New("boom")
	s := New(4)
	r := io.MultiReader(strings.NewReader("abc"), iotest.ErrReader(boom))
	n, err := s.ReadFrom(r)
	if !errors.Is(err, boom) || n != 3 || s.String() != "abc" {
		t.Fatalf("expected 'abc' and the reader's error, have %q and %v", s, err)
	}
	checkInvariants(t, s)
}

// overReader claims to have read more bytes than fit into p.
type overReader struct{}

func (overReader) Read(p []byte) (int, error) {
	return len(p) + 10, nil
}

func TestReadFromRejectsOverlongCount(t *testing.T) {
	s := FromString("abc")
	n, err := s.ReadFrom(overReader{})
	if !errors.Is(err, ErrIllegalArguments) || n != 0 {
		t.Fatalf("expected ErrIllegalArguments, have %d bytes and %v", n, err)
	}
	if s.String() != "abc" {
		t.Fatalf("expected buffer to keep 'abc', have %q", s)
	}
	checkInvariants(t, s)
}

func TestReader(t *testing.T) {
	s := FromString("some text to read")
	if err := iotest.TestReader(s.Reader(), []byte("some text to read")); err != nil {
		t.Fatalf("reader misbehaves: %v", err)
	}
	b, err := io.ReadAll(s.Reader())
	if err != nil || !bytes.Equal(b, s.Bytes()) {
		t.Fatalf("unexpected ReadAll result %q (%v)", b, err)
	}
}
