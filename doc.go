/*
Package sstring offers a growable byte buffer with explicit length and capacity
bookkeeping and in-place structural editing.

Strings

A Str keeps a run of bytes together with its logical length and the size of
its backing storage. Appending is amortized O(1): whenever storage runs out,
capacity is rounded up to the next power of two. Unlike strings.Builder or
bytes.Buffer, a Str supports random-access edits (insert, remove, replace,
padding, trimming) which shift the payload inside the single backing block
instead of building a new one.

	s := sstring.FromString("hello")
	_ = s.Replace(0, []byte("lo"), []byte("p"))   // "help"
	_ = s.PadCenter('*', 8)                        // "**help**"

Invariants

Capacity is always a power of two and never smaller than the length. One zero
byte is kept right after the last payload byte, so CBytes may be handed to
consumers which scan for a terminator; it is not counted in the length. Bytes
past the length are zero after every removal, shrink or clear, so stale data
cannot reappear when the buffer grows again.

Buffers are encoding-agnostic; all operations work on bytes. Case mapping is
ASCII only.

Ownership

A Str has exactly one owner and no internal locking. Clients sharing a buffer
between goroutines must synchronize access themselves. Slices returned by Bytes
and CBytes alias the backing storage and become stale with the next mutation,
because growing or shrinking moves the payload to a new block. After Free a
buffer must not be used any more.

Allocation

Backing storage is requested from an alloc.Allocator. The default allocator
never fails; a buffer configured with an alloc.Budget reports
ErrAllocationFailure when its budget is exhausted. A failed operation leaves the
buffer exactly as it was.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package sstring

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// StrError is an error type for the sstring module
type StrError string

func (e StrError) Error() string {
	return string(e)
}

// ErrAllocationFailure is flagged whenever the allocator of a buffer cannot
// satisfy a growth or shrink request. The buffer is left unchanged.
const ErrAllocationFailure = StrError("allocation failure")

// ErrIndexOutOfBounds is flagged whenever an index or offset is
// greater than the length of the buffer.
const ErrIndexOutOfBounds = StrError("index out of bounds")

// ErrNotFound is flagged when a search or replace target is absent.
const ErrNotFound = StrError("not found")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = StrError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
