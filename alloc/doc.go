/*
Package alloc provides the memory layer underneath sstring buffers.

Every backing allocation of a buffer is requested from an Allocator. The
default Heap allocator is backed by the Go runtime and never fails. A Budget
allocator tracks the bytes it has handed out and refuses requests which would
exceed a hard limit; this is the only way a buffer operation can observe an
allocation failure, and it lets clients put a ceiling on the memory consumed by
a family of buffers.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package alloc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sstring'
func tracer() tracing.Trace {
	return tracing.Select("sstring")
}
