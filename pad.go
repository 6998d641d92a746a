package sstring

// PadLeft inserts n copies of ch in front of the payload. n is an increment,
// not a target length.
func (s *Str) PadLeft(ch byte, n int) error {
	s.live()
	if n < 0 {
		return ErrIllegalArguments
	}
	if n == 0 {
		return nil
	}
	if err := s.ensure(s.length + n); err != nil {
		return err
	}
	shift(s.data, n, 0, s.length)
	fill(s.data[:n], ch)
	s.setLen(s.length + n)
	return nil
}

// PadRight appends n copies of ch. n is an increment, not a target length.
func (s *Str) PadRight(ch byte, n int) error {
	s.live()
	if n < 0 {
		return ErrIllegalArguments
	}
	if n == 0 {
		return nil
	}
	if err := s.ensure(s.length + n); err != nil {
		return err
	}
	fill(s.data[s.length:s.length+n], ch)
	s.setLen(s.length + n)
	return nil
}

// PadCenter pads the buffer with ch on both sides up to a total length of n.
// If the difference is odd, the left side receives the extra byte:
//
//	"hi" padded to 7 with '*'  ⇒  "***hi**"
//
// PadCenter is a no-op if the length is already n or more.
func (s *Str) PadCenter(ch byte, n int) error {
	s.live()
	if n <= s.length {
		return nil
	}
	// grow once, so that a refused allocation cannot leave a half-padded buffer
	if err := s.ensure(n); err != nil {
		return err
	}
	diff := n - s.length
	right := diff / 2
	left := diff - right
	if err := s.PadLeft(ch, left); err != nil {
		return err
	}
	return s.PadRight(ch, right)
}

// TrimLeft removes the maximal run of leading whitespace.
func (s *Str) TrimLeft() {
	s.live()
	if s.length == 0 {
		return
	}
	i := 0
	for i < s.length && isSpace(s.data[i]) {
		i++
	}
	_ = s.Remove(0, i)
}

// TrimRight removes the maximal run of trailing whitespace.
func (s *Str) TrimRight() {
	s.live()
	if s.length == 0 {
		return
	}
	i := s.length
	for i > 0 && isSpace(s.data[i-1]) {
		i--
	}
	_ = s.Remove(i, s.length-i)
}

// Trim removes leading and trailing whitespace.
func (s *Str) Trim() {
	s.TrimRight()
	s.TrimLeft()
}

// isSpace reports whether c is whitespace in the C locale:
// space, \t, \n, \v, \f or \r.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func fill(b []byte, ch byte) {
	for i := range b {
		b[i] = ch
	}
}
