package sstring

import "fmt"

// Format appends text formatted according to a fmt format specifier.
//
// The formatted output is measured first; if the remaining capacity cannot
// hold it, the buffer grows by the deficit. Format appends and never replaces
// existing content.
func (s *Str) Format(format string, args ...any) error {
	s.live()
	out := fmt.Appendf(nil, format, args...)
	if len(out) == 0 {
		return nil
	}
	if err := s.ensure(s.length + len(out)); err != nil {
		return err
	}
	copy(s.data[s.length:], out)
	s.setLen(s.length + len(out))
	return nil
}
