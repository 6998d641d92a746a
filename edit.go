package sstring

// Insert inserts p before position index. Inserting at Len() appends.
//
// If index is greater than the length, ErrIndexOutOfBounds is returned.
// Inserting an empty p is a no-op.
func (s *Str) Insert(index int, p []byte) error {
	s.live()
	if len(p) == 0 {
		return nil
	}
	if index < 0 || index > s.length {
		return ErrIndexOutOfBounds
	}
	p = s.detach(p)
	if err := s.ensure(s.length + len(p)); err != nil {
		return err
	}
	shift(s.data, index+len(p), index, s.length-index)
	copy(s.data[index:], p)
	s.setLen(s.length + len(p))
	return nil
}

// InsertString inserts the bytes of str before position index.
func (s *Str) InsertString(index int, str string) error {
	return s.Insert(index, []byte(str))
}

// Remove removes n bytes starting at offset. The remainder is shifted left and
// the vacated tail is zeroed.
//
// If offset is greater than the length, ErrIndexOutOfBounds is returned. If n
// exceeds the length, the whole content is cleared. A span reaching beyond
// the end is clipped at the end.
func (s *Str) Remove(offset, n int) error {
	s.live()
	if n < 0 {
		return ErrIllegalArguments
	}
	if offset < 0 || offset > s.length {
		return ErrIndexOutOfBounds
	}
	if n > s.length {
		s.Clear()
		return nil
	}
	n = min(n, s.length-offset)
	if n == 0 {
		return nil
	}
	shift(s.data, offset, offset+n, s.length-offset-n)
	zero(s.data, s.length-n, n)
	s.setLen(s.length - n)
	return nil
}

// Replace replaces the first occurrence of needle at or after position start
// with replacement.
//
// If needle does not occur, ErrNotFound is returned and the buffer is left
// unchanged. An empty replacement removes the needle's span.
func (s *Str) Replace(start int, needle, replacement []byte) error {
	s.live()
	if len(needle) == 0 {
		return ErrIllegalArguments
	}
	idx, err := s.Find(start, needle)
	if err != nil {
		return err
	}
	if len(replacement) == 0 {
		return s.Remove(idx, len(needle))
	}
	replacement = s.detach(replacement)
	newlen := s.length - len(needle) + len(replacement)
	if err := s.ensure(newlen); err != nil {
		return err
	}
	tail := s.length - idx - len(needle)
	shift(s.data, idx+len(replacement), idx+len(needle), tail)
	if len(replacement) < len(needle) {
		zero(s.data, newlen, len(needle)-len(replacement))
	}
	copy(s.data[idx:], replacement)
	s.setLen(newlen)
	return nil
}

// ReplaceString is Replace with string arguments.
func (s *Str) ReplaceString(start int, needle, replacement string) error {
	return s.Replace(start, []byte(needle), []byte(replacement))
}

// ReplaceAll replaces every non-overlapping occurrence of needle at or after
// position start and returns the number of replacements.
func (s *Str) ReplaceAll(start int, needle, replacement []byte) (int, error) {
	s.live()
	if len(needle) == 0 {
		return 0, ErrIllegalArguments
	}
	needle = s.detach(needle)
	replacement = s.detach(replacement)
	cnt := 0
	for {
		idx, err := s.Find(start, needle)
		if err == ErrNotFound {
			return cnt, nil
		} else if err != nil {
			return cnt, err
		}
		if err = s.Replace(idx, needle, replacement); err != nil {
			return cnt, err
		}
		cnt++
		start = idx + len(replacement)
	}
}

// Concat appends p. Capacity grows by exactly the deficit between the current
// capacity and the required total, rounded to a power of two.
func (s *Str) Concat(p []byte) error {
	s.live()
	if len(p) == 0 {
		return nil
	}
	p = s.detach(p)
	if err := s.ensure(s.length + len(p)); err != nil {
		return err
	}
	copy(s.data[s.length:], p)
	s.setLen(s.length + len(p))
	return nil
}

// ConcatString appends the bytes of str.
func (s *Str) ConcatString(str string) error {
	return s.Concat([]byte(str))
}

// Prepend inserts p in front of the payload.
func (s *Str) Prepend(p []byte) error {
	return s.Insert(0, p)
}

// Push appends a single byte. Pushing a zero byte is a no-op: zero is
// reserved for the terminator.
func (s *Str) Push(ch byte) error {
	s.live()
	if ch == 0 {
		return nil
	}
	if err := s.ensure(s.length + 1); err != nil {
		return err
	}
	s.data[s.length] = ch
	s.setLen(s.length + 1)
	return nil
}

// Pop removes and returns the last byte. On an empty buffer Pop returns 0 and
// leaves the buffer untouched.
func (s *Str) Pop() byte {
	s.live()
	if s.length == 0 {
		return 0
	}
	ch := s.data[s.length-1]
	s.setLen(s.length - 1)
	return ch
}

// Clear zeroes all payload bytes and sets the length to 0. Capacity is retained.
func (s *Str) Clear() {
	s.live()
	zero(s.data, 0, s.length)
	s.setLen(0)
}

// Truncate shortens the buffer to n bytes, zeroing the cut-off tail.
// It is a no-op if n is not less than the length.
func (s *Str) Truncate(n int) error {
	s.live()
	if n < 0 {
		return ErrIllegalArguments
	}
	if n >= s.length {
		return nil
	}
	return s.Remove(n, s.length-n)
}
