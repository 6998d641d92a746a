package sstring

import (
	"fmt"
)

// New creates an empty buffer with room for at least hint bytes, backed by
// the default allocator. The capacity is the power of two covering hint+1.
//
// New panics if hint is negative.
func New(hint int) *Str {
	s, err := NewWithConfig(hint, Config{})
	assert(err == nil, "sstring.New: cannot create buffer")
	return s
}

// NewWithConfig creates an empty buffer with room for at least hint bytes.
//
// The whole backing block is zero-initialized. If the configured allocator
// refuses the block, an error matching ErrAllocationFailure is returned.
func NewWithConfig(hint int, cfg Config) (*Str, error) {
	if hint < 0 {
		return nil, ErrIllegalArguments
	}
	cfg = cfg.normalized()
	c := pow2(hint + 1)
	block, err := cfg.Allocator.Alloc(c + 1)
	if err != nil {
		T().Errorf("sstring: cannot allocate buffer of %d bytes: %v", c, err)
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailure, err)
	}
	return &Str{
		capacity: c,
		data:     block,
		alloc:    cfg.Allocator,
	}, nil
}

// From creates a buffer holding a copy of p. Every byte of p is copied,
// including zero bytes, so the length of the result equals len(p).
func From(p []byte) *Str {
	s := New(len(p))
	copy(s.data, p)
	s.setLen(len(p))
	return s
}

// FromWithConfig is like From, using the allocator configured in cfg.
func FromWithConfig(p []byte, cfg Config) (*Str, error) {
	s, err := NewWithConfig(len(p), cfg)
	if err != nil {
		return nil, err
	}
	copy(s.data, p)
	s.setLen(len(p))
	return s, nil
}

// FromString creates a buffer holding the bytes of a Go string.
func FromString(str string) *Str {
	s := New(len(str))
	copy(s.data, str)
	s.setLen(len(str))
	return s
}

// Clone creates a deep copy of s with the same length, capacity and allocator.
// The copy has an independent lifetime.
func (s *Str) Clone() (*Str, error) {
	s.live()
	block, err := s.alloc.Alloc(len(s.data))
	if err != nil {
		T().Errorf("sstring: cannot clone buffer of %d bytes: %v", s.capacity, err)
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailure, err)
	}
	copy(block, s.data[:s.length])
	return &Str{
		length:   s.length,
		capacity: s.capacity,
		data:     block,
		alloc:    s.alloc,
	}, nil
}

// Free releases the backing storage of s. The buffer must not be used
// afterwards; doing so panics.
func (s *Str) Free() {
	s.live()
	s.alloc.Free(s.data)
	s.data = nil
	s.length = 0
	s.capacity = 0
}
