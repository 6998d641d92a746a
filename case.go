package sstring

// ToLower maps ASCII upper-case letters of the payload to lower case.
// All other bytes are left untouched.
func (s *Str) ToLower() {
	s.live()
	for i, c := range s.data[:s.length] {
		if 'A' <= c && c <= 'Z' {
			s.data[i] = c + ('a' - 'A')
		}
	}
}

// ToUpper maps ASCII lower-case letters of the payload to upper case.
// All other bytes are left untouched.
func (s *Str) ToUpper() {
	s.live()
	for i, c := range s.data[:s.length] {
		if 'a' <= c && c <= 'z' {
			s.data[i] = c - ('a' - 'A')
		}
	}
}
