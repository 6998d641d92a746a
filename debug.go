package sstring

import (
	"fmt"
	"io"
	"os"
)

// Debug writes a one-line description of s to stderr:
//
//	{ sstr(0xc000012345): "hello", cap: 8, len: 5 }
//
// The output is informational only.
func (s *Str) Debug() {
	s.DebugTo(os.Stderr)
}

// DebugTo writes the line produced by Debug to w.
func (s *Str) DebugTo(w io.Writer) {
	s.live()
	fmt.Fprintf(w, "{ sstr(%p): \"%s\", cap: %d, len: %d }\n",
		s.data, s.data[:s.length], s.capacity, s.length)
}

// Address returns the address of the backing block, as printed by Debug.
func (s *Str) Address() string {
	s.live()
	return fmt.Sprintf("%p", s.data)
}
