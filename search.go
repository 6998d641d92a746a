package sstring

import "bytes"

// Ordering is the result of a three-way comparison.
type Ordering int8

// Results of Compare.
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}
	return "<illegal ordering>"
}

// Find returns the lowest index ≥ start at which needle occurs.
//
// If start leaves no room for a match or needle does not occur, ErrNotFound
// is returned. A negative start is out of bounds. An empty needle is found at
// start.
func (s *Str) Find(start int, needle []byte) (int, error) {
	s.live()
	if start < 0 {
		return 0, ErrIndexOutOfBounds
	}
	if start > s.length-len(needle) {
		return 0, ErrNotFound
	}
	i := bytes.Index(s.data[start:s.length], needle)
	if i < 0 {
		return 0, ErrNotFound
	}
	return start + i, nil
}

// FindString is Find for a string needle.
func (s *Str) FindString(start int, needle string) (int, error) {
	return s.Find(start, []byte(needle))
}

// Contains reports whether needle occurs anywhere in the buffer.
func (s *Str) Contains(needle []byte) bool {
	_, err := s.Find(0, needle)
	return err == nil
}

// Compare compares the payload to other byte-wise and lexicographically.
// If one is a prefix of the other, the longer one is greater. Zero bytes are
// ordinary bytes for Compare.
func (s *Str) Compare(other []byte) Ordering {
	s.live()
	return Ordering(bytes.Compare(s.data[:s.length], other))
}

// Equal reports whether the payload equals other.
func (s *Str) Equal(other []byte) bool {
	return s.Compare(other) == Equal
}
