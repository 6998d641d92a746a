package sstring

import "unsafe"

// shift moves n bytes inside b from offset src to offset dst.
//
// Source and destination may overlap in either direction; every source byte is
// read before it is overwritten. All structural edits open or close gaps
// with shift.
func shift(b []byte, dst, src, n int) {
	if n <= 0 || dst == src {
		return
	}
	copy(b[dst:dst+n], b[src:src+n]) // copy has memmove semantics
}

// zero clears n bytes of b starting at offset off.
func zero(b []byte, off, n int) {
	if n <= 0 {
		return
	}
	clear(b[off : off+n])
}

// overlaps reports whether p shares memory with the backing block of s.
func (s *Str) overlaps(p []byte) bool {
	if len(p) == 0 || len(s.data) == 0 {
		return false
	}
	lo := uintptr(unsafe.Pointer(unsafe.SliceData(s.data)))
	hi := lo + uintptr(len(s.data))
	start := uintptr(unsafe.Pointer(unsafe.SliceData(p)))
	end := start + uintptr(len(p))
	return start < hi && lo < end
}

// detach returns p, or a private copy of p if p aliases the buffer's own
// storage and would be clobbered while shifting.
func (s *Str) detach(p []byte) []byte {
	if s.overlaps(p) {
		return append([]byte(nil), p...)
	}
	return p
}
