package sstring

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/sstring/alloc"
)

// Str is a growable byte buffer which tracks its length and capacity.
//
// Length, capacity and payload live together in one record, and the payload
// lives in one block of storage obtained from the buffer's allocator. The block
// is one byte larger than the capacity: the byte following the payload is the
// terminator slot and is always zero.
//
//	data:  [ payload (len) | 0 | zero … ]
//	        0            len         cap+1
//
// A Str must be created by one of the constructors. Growth and shrink
// operations replace the backing block, so slices obtained from Bytes or
// CBytes must not be kept across mutations.
type Str struct {
	length   int
	capacity int
	data     []byte
	alloc    alloc.Allocator
}

// Config configures the construction of a buffer.
type Config struct {
	// Allocator provides backing storage. If nil, alloc.DefaultAllocator is used.
	Allocator alloc.Allocator
}

func (cfg Config) normalized() Config {
	if cfg.Allocator == nil {
		cfg.Allocator = alloc.DefaultAllocator
	}
	return cfg
}

// Len returns the number of bytes stored, excluding the terminator.
func (s *Str) Len() int {
	return s.length
}

// Cap returns the payload capacity in bytes. It is always a power of two.
func (s *Str) Cap() int {
	return s.capacity
}

// IsEmpty reports whether the buffer has no bytes.
func (s *Str) IsEmpty() bool {
	return s.length == 0
}

// Bytes returns the payload. The slice aliases the buffer and is valid until
// the next mutation.
func (s *Str) Bytes() []byte {
	s.live()
	return s.data[:s.length:s.length]
}

// CBytes returns the payload followed by its zero terminator, for consumers
// which scan for a terminating zero byte. The slice aliases the buffer and is
// valid until the next mutation.
func (s *Str) CBytes() []byte {
	s.live()
	return s.data[: s.length+1 : s.length+1]
}

// String returns a copy of the payload as a Go string.
func (s *Str) String() string {
	if s == nil || s.data == nil {
		return ""
	}
	return string(s.data[:s.length])
}

// ByteAt returns the byte at position i.
func (s *Str) ByteAt(i int) (byte, error) {
	s.live()
	if i < 0 || i >= s.length {
		return 0, ErrIndexOutOfBounds
	}
	return s.data[i], nil
}

// Allocator returns the allocator which provides the buffer's storage.
func (s *Str) Allocator() alloc.Allocator {
	return s.alloc
}

// Count returns the number of leading non-zero bytes of b, i.e. the length of
// b as seen by a consumer scanning for a terminator.
func Count(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return len(b)
}

// --- Layout helpers --------------------------------------------------------

// setLen records a new length and writes the terminator right behind it.
func (s *Str) setLen(n int) {
	assert(n >= 0 && n <= s.capacity, "sstring: length exceeds capacity")
	s.length = n
	s.data[n] = 0
}

func (s *Str) setCap(n int) {
	assert(n >= s.length && len(s.data) == n+1, "sstring: capacity does not match storage")
	s.capacity = n
}

// storage returns the complete backing block, terminator slot included.
func (s *Str) storage() []byte {
	return s.data
}

func (s *Str) live() {
	assert(s != nil && s.data != nil, "sstring: use of a released or uninitialized buffer")
}
