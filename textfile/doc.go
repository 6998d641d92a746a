/*
Package textfile provides API helpers to load files into sstring buffers.

A file is read fragment by fragment by a background goroutine, feeding a
bounded pipeline, while the loading goroutine appends fragments to the
buffer. The buffer itself is never touched concurrently. Clients may subscribe
to progress events, e.g. to drive a progress bar for large files.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sstring'
func tracer() tracing.Trace {
	return tracing.Select("sstring")
}
