/*
Package console renders diagnostic dumps of sstring buffers for terminals.

The line format is the one of sstring's Debug method,

	{ sstr(0xc000012345): "hello", cap: 8, len: 5 }

but parts are colored, non-printable bytes are escaped, and the content is
truncated to the width of the terminal, measured in fixed-width ‘en’s.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package console

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sstring'
func tracer() tracing.Trace {
	return tracing.Select("sstring")
}
