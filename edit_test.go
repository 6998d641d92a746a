package sstring

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestInsert(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := FromString("ab")
	if err := s.InsertString(1, "XY"); err != nil {
		t.Fatalf("unexpected Insert error: %v", err)
	}
	if s.String() != "aXYb" || s.Len() != 4 {
		t.Fatalf("expected 'aXYb', have %q", s)
	}
	_ = s.InsertString(4, "!")
	_ = s.InsertString(0, ">")
	if s.String() != ">aXYb!" {
		t.Fatalf("expected '>aXYb!', have %q", s)
	}
	checkInvariants(t, s)
	if err := s.InsertString(7, "z"); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, have %v", err)
	}
	if err := s.Insert(99, nil); err != nil {
		t.Errorf("expected empty insert to be a no-op, have %v", err)
	}
	if s.String() != ">aXYb!" {
		t.Fatalf("failed inserts modified the buffer: %q", s)
	}
}

func TestInsertSelf(t *testing.T) {
	s := FromString("abc")
	if err := s.Insert(1, s.Bytes()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.String() != "aabcbc" {
		t.Fatalf("expected 'aabcbc', have %q", s)
	}
	_ = s.Reserve(64)
	_ = s.Insert(0, s.Bytes()[4:])
	if s.String() != "bcaabcbc" {
		t.Fatalf("expected 'bcaabcbc', have %q", s)
	}
	_ = s.Concat(s.Bytes()[:2])
	if s.String() != "bcaabcbcbc" {
		t.Fatalf("expected 'bcaabcbcbc', have %q", s)
	}
}

func TestReplaceAllSelf(t *testing.T) {
	s := FromString("abab")
	n, err := s.ReplaceAll(0, s.Bytes()[:2], []byte("X"))
	if err != nil || n != 2 {
		t.Fatalf("expected 2 replacements, have %d (%v)", n, err)
	}
	if s.String() != "XX" {
		t.Fatalf("expected 'XX', have %q", s)
	}
	checkInvariants(t, s)
}

func TestRemove(t *testing.T) {
	s := FromString("hello world")
	if err := s.Remove(5, 6); err != nil {
		t.Fatalf("unexpected Remove error: %v", err)
	}
	if s.String() != "hello" {
		t.Fatalf("expected 'hello', have %q", s)
	}
	checkInvariants(t, s)
	_ = s.Remove(1, 3)
	if s.String() != "ho" {
		t.Fatalf("expected 'ho', have %q", s)
	}
	checkInvariants(t, s)
	if err := s.Remove(3, 1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, have %v", err)
	}
	_ = s.Remove(1, 2) // clipped at the end
	if s.String() != "h" {
		t.Fatalf("expected 'h', have %q", s)
	}
	_ = s.Remove(1, 0)
	if s.String() != "h" {
		t.Fatalf("expected zero-length remove to be a no-op, have %q", s)
	}
}

func TestRemoveMoreThanLengthClears(t *testing.T) {
	s := FromString("abc")
	c := s.Cap()
	if err := s.Remove(0, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 0 || s.Cap() != c {
		t.Fatalf("expected an empty buffer with capacity %d, have len=%d cap=%d", c, s.Len(), s.Cap())
	}
	checkInvariants(t, s)
	s = FromString("abc")
	if err := s.Remove(1, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 0 || s.Cap() != c {
		t.Fatalf("expected Remove(1, 10) to clear, have %q cap=%d", s, s.Cap())
	}
	checkInvariants(t, s)
}

func TestReplace(t *testing.T) {
	s := FromString("hello")
	if err := s.ReplaceString(0, "lo", "p"); err != nil {
		t.Fatalf("unexpected Replace error: %v", err)
	}
	if s.String() != "help" || s.Len() != 4 {
		t.Fatalf("expected 'help', have %q", s)
	}
	checkInvariants(t, s)
	_ = s.ReplaceString(0, "e", "E")
	if s.String() != "hElp" {
		t.Fatalf("expected 'hElp', have %q", s)
	}
	_ = s.ReplaceString(1, "lp", "lpful stuff")
	if s.String() != "hElpful stuff" {
		t.Fatalf("expected 'hElpful stuff', have %q", s)
	}
	checkInvariants(t, s)
	_ = s.ReplaceString(0, " stuff", "")
	if s.String() != "hElpful" {
		t.Fatalf("expected 'hElpful', have %q", s)
	}
	if err := s.ReplaceString(0, "xyz", "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, have %v", err)
	}
	if err := s.ReplaceString(5, "hE", "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for a match before start, have %v", err)
	}
	if err := s.ReplaceString(0, "", "a"); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected empty needle to be rejected, have %v", err)
	}
	if s.String() != "hElpful" {
		t.Fatalf("failed replaces modified the buffer: %q", s)
	}
}

func TestReplaceAll(t *testing.T) {
	s := FromString("a-b-c")
	n, err := s.ReplaceAll(0, []byte("-"), []byte("--"))
	if err != nil || n != 2 {
		t.Fatalf("expected 2 replacements, have %d (%v)", n, err)
	}
	if s.String() != "a--b--c" {
		t.Fatalf("expected 'a--b--c', have %q", s)
	}
	n, _ = s.ReplaceAll(0, []byte("--"), nil)
	if n != 2 || s.String() != "abc" {
		t.Fatalf("expected 'abc' after 2 removals, have %q after %d", s, n)
	}
	checkInvariants(t, s)
}

func TestConcatAndPrepend(t *testing.T) {
	s := New(0)
	_ = s.ConcatString("world")
	_ = s.Prepend([]byte("hello "))
	_ = s.Concat([]byte{'!'})
	if s.String() != "hello world!" {
		t.Fatalf("expected 'hello world!', have %q", s)
	}
	if s.Cap() != 16 {
		t.Fatalf("expected capacity 16, have %d", s.Cap())
	}
	checkInvariants(t, s)
	if err := s.Concat(nil); err != nil || s.Len() != 12 {
		t.Fatalf("expected empty concat to be a no-op")
	}
}

func TestConcatFillsCapacityExactly(t *testing.T) {
	s := FromString("abc") // cap 4
	_ = s.ConcatString("d")
	if s.Cap() != 4 || s.CBytes()[4] != 0 {
		t.Fatalf("expected to fill capacity 4 with terminator in place, have cap %d", s.Cap())
	}
	_ = s.ConcatString("ef")
	if s.Cap() != 8 || s.String() != "abcdef" {
		t.Fatalf("expected 'abcdef' in capacity 8, have %q in %d", s, s.Cap())
	}
	checkInvariants(t, s)
}

func TestPushPop(t *testing.T) {
	s := FromString("ab")
	_ = s.Push('c')
	if s.String() != "abc" {
		t.Fatalf("expected 'abc', have %q", s)
	}
	_ = s.Push(0)
	if s.Len() != 3 {
		t.Fatalf("expected push of zero to be a no-op")
	}
	if c := s.Pop(); c != 'c' || s.String() != "ab" {
		t.Fatalf("expected to pop 'c' leaving 'ab', have %q and %q", c, s)
	}
	checkInvariants(t, s)
	s.Pop()
	s.Pop()
	if c := s.Pop(); c != 0 || s.Len() != 0 {
		t.Fatalf("expected pop on empty buffer to return 0")
	}
}

func TestClearAndTruncate(t *testing.T) {
	s := FromString("some content")
	c := s.Cap()
	_ = s.Truncate(4)
	if s.String() != "some" {
		t.Fatalf("expected 'some', have %q", s)
	}
	checkInvariants(t, s)
	s.Clear()
	if s.Len() != 0 || s.Cap() != c {
		t.Fatalf("expected empty buffer with retained capacity")
	}
	checkInvariants(t, s)
	s.Clear()
	if err := s.Truncate(-1); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected negative truncate to be rejected")
	}
}

func TestCaseMapping(t *testing.T) {
	s := From([]byte("Hello, World 42 \xc3\xa4"))
	s.ToUpper()
	if s.String() != "HELLO, WORLD 42 \xc3\xa4" {
		t.Fatalf("unexpected upper case %q", s)
	}
	s.ToLower()
	if s.String() != "hello, world 42 \xc3\xa4" {
		t.Fatalf("unexpected lower case %q", s)
	}
}

func TestFormatAppends(t *testing.T) {
	s := FromString("n=")
	if err := s.Format("%d-%s", 42, "x"); err != nil {
		t.Fatalf("unexpected Format error: %v", err)
	}
	if s.String() != "n=42-x" {
		t.Fatalf("expected 'n=42-x', have %q", s)
	}
	_ = s.Format("%s", "")
	_ = s.Format(" %05.1f|%-4s|", 3.14159, "ab")
	if s.String() != "n=42-x 003.1|ab  |" {
		t.Fatalf("unexpected formatted content %q", s)
	}
	checkInvariants(t, s)
}
