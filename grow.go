package sstring

import (
	"fmt"
	"math/bits"
)

// pow2 rounds n up to the next power of two. pow2(0) is 1.
func pow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Reserve makes sure that at least additional more bytes fit into the buffer
// without further reallocation.
//
// If capacity already suffices, Reserve is a no-op. Otherwise the new capacity
// is the power of two covering the current capacity plus additional. If the
// allocator refuses, an error matching ErrAllocationFailure is returned and the
// buffer is left unchanged.
func (s *Str) Reserve(additional int) error {
	s.live()
	if additional < 0 {
		return ErrIllegalArguments
	}
	if s.capacity >= s.length+additional {
		return nil
	}
	return s.realloc(pow2(s.capacity + additional))
}

// ShrinkToFit releases unused capacity. The capacity is halved as long as half
// of it still covers the length, i.e. it becomes the smallest power of two not
// less than the length.
func (s *Str) ShrinkToFit() error {
	s.live()
	c := s.capacity
	for c/2 >= s.length && c/2 >= 1 {
		c /= 2
	}
	if c == s.capacity {
		return nil
	}
	if err := s.realloc(c); err != nil {
		return err
	}
	zero(s.data, s.length, c+1-s.length)
	return nil
}

// ensure grows the buffer to hold total payload bytes, reserving exactly the
// deficit between the current capacity and total.
func (s *Str) ensure(total int) error {
	if total <= s.capacity {
		return nil
	}
	return s.realloc(pow2(s.capacity + (total - s.capacity)))
}

// realloc moves the payload to a block for capacity c. On failure the old
// block stays in place.
func (s *Str) realloc(c int) error {
	block, err := s.alloc.Realloc(s.data, c+1)
	if err != nil {
		T().Errorf("sstring: cannot resize buffer from %d to %d bytes: %v", s.capacity, c, err)
		return fmt.Errorf("%w: %w", ErrAllocationFailure, err)
	}
	T().Debugf("sstring: resized buffer capacity %d → %d (len=%d)", s.capacity, c, s.length)
	s.data = block
	s.setCap(c)
	return nil
}
