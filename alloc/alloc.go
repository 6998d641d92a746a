package alloc

import (
	"github.com/brickingsoft/errors"
)

var (
	// ErrBudgetExceeded signals that a request would push a budget over its hard limit.
	ErrBudgetExceeded = errors.Define("alloc: memory budget exceeded")
	// ErrInvalidSize signals a negative allocation size.
	ErrInvalidSize = errors.Define("alloc: invalid allocation size")
)

// Allocator hands out zeroed byte blocks and resizes them.
//
// Alloc returns n zero bytes. Realloc returns a block of n bytes whose first
// min(len(old), n) bytes equal old and whose remaining bytes are zero. If
// Realloc fails, old is left untouched and stays owned by the caller.
// Free returns a block to the allocator; the block must not be used afterwards.
type Allocator interface {
	Alloc(n int) ([]byte, error)
	Realloc(old []byte, n int) ([]byte, error)
	Free(block []byte)
}

// Heap is an allocator backed by the Go runtime. It never reports failures
// (the runtime itself aborts the program if it runs out of memory).
//
// The zero value is ready to use.
type Heap struct{}

// DefaultAllocator is used for buffers which do not configure an allocator.
var DefaultAllocator Allocator = Heap{}

// Alloc returns n zeroed bytes.
func (Heap) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	return make([]byte, n), nil
}

// Realloc copies old into a fresh block of n bytes.
func (Heap) Realloc(old []byte, n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	return resize(old, n), nil
}

// Free is a no-op for the heap; the garbage collector reclaims the block.
func (Heap) Free([]byte) {}

func resize(old []byte, n int) []byte {
	block := make([]byte, n)
	copy(block, old)
	return block
}

var _ Allocator = Heap{}
