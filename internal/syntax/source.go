package syntax

// source is a read-only, rewindable cursor over 7-bit ASCII input.
// The read offset only moves through next and rewind.
type source struct {
	buf  []byte // input bytes, never modified
	offs int    // read offset, 0 <= offs <= len(buf)
}

// newSource copies input into a cursor. Any character above 0x7F,
// including bytes that are not valid UTF-8, is rejected with an
// *EncodingError before a single byte is handed out.
func newSource(filename, input string) (*source, error) {
	line, col := uint32(1), uint32(1)
	buf := make([]byte, 0, len(input))
	for _, r := range input {
		if r > 0x7F {
			return nil, &EncodingError{Pos: NewPos(filename, line, col), Rune: r}
		}
		b := byte(r)
		buf = append(buf, b)
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return &source{buf: buf}, nil
}

// next returns the byte at the read offset and advances past it.
// ok is false once the end of input is reached.
func (s *source) next() (b byte, ok bool) {
	if s.offs >= len(s.buf) {
		return 0, false
	}
	b = s.buf[s.offs]
	s.offs++
	return b, true
}

// rewind steps the read offset back by one byte.
// Rewinding at offset 0 is a scanner bug.
func (s *source) rewind() {
	if s.offs == 0 {
		panic("syntax: rewind at offset 0")
	}
	s.offs--
}

// atEnd reports whether every byte has been consumed.
func (s *source) atEnd() bool {
	return s.offs >= len(s.buf)
}

// Character classification helpers

// isLetter reports whether b is an ASCII letter.
func isLetter(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

// isDigit reports whether b is a decimal digit.
func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// isAlnum reports whether b may continue an identifier.
func isAlnum(b byte) bool {
	return isLetter(b) || isDigit(b)
}

// isWhitespace reports whether b is skipped without a line change.
// Newline is handled separately because it resets the column.
func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}
