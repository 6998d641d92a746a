package sstring

import "io"

// Write appends p, making a buffer usable as an io.Writer.
func (s *Str) Write(p []byte) (n int, err error) {
	if err = s.Concat(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString appends str.
func (s *Str) WriteString(str string) (n int, err error) {
	if err = s.ConcatString(str); err != nil {
		return 0, err
	}
	return len(str), nil
}

// minRead is the least amount of free capacity ReadFrom offers to a reader.
const minRead = 512

// ReadFrom appends everything from r until io.EOF. It returns the number of
// bytes appended. A read error other than io.EOF is returned; bytes read
// before the error stay appended.
func (s *Str) ReadFrom(r io.Reader) (int64, error) {
	s.live()
	var total int64
	for {
		if s.capacity-s.length < minRead {
			if err := s.ensure(s.length + minRead); err != nil {
				return total, err
			}
		}
		n, err := r.Read(s.data[s.length:s.capacity])
		if n < 0 || n > s.capacity-s.length {
			return total, ErrIllegalArguments
		}
		s.setLen(s.length + n)
		zero(s.data, s.length, s.capacity-s.length) // readers may scribble on all of p
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// Reader returns a reader for the bytes of s. The reader sees mutations of
// s which happen between calls to Read.
func (s *Str) Reader() io.Reader {
	return &strReader{str: s}
}

type strReader struct {
	str    *Str
	cursor int
}

func (sr *strReader) Read(p []byte) (n int, err error) {
	if sr.cursor >= sr.str.Len() {
		return 0, io.EOF
	}
	n = copy(p, sr.str.Bytes()[sr.cursor:])
	sr.cursor += n
	return n, nil
}

var _ io.Writer = (*Str)(nil)
var _ io.StringWriter = (*Str)(nil)
var _ io.ReaderFrom = (*Str)(nil)
