package syntax

import (
	"math"
	"strings"
)

// Scanner turns an expression into a sequence of positioned tokens.
type Scanner struct {
	src *source

	// Position tracking
	filename string
	line     uint32 // current line (1-based)
	col      uint32 // column of the next unread byte (1-based)

	err error // first non-lexical scan error (integer overflow)

	litBuf strings.Builder
}

// NewScanner creates a Scanner over input. filename only labels
// positions and may be empty. It fails with an *EncodingError if
// input contains anything other than 7-bit ASCII.
func NewScanner(filename, input string) (*Scanner, error) {
	src, err := newSource(filename, input)
	if err != nil {
		return nil, err
	}
	return &Scanner{
		src:      src,
		filename: filename,
		line:     1,
		col:      1,
	}, nil
}

// pos returns the position of the next unread byte.
func (s *Scanner) pos() Pos {
	return NewPos(s.filename, s.line, s.col)
}

// Err returns the first integer overflow seen so far, if any.
func (s *Scanner) Err() error {
	return s.err
}

// Next scans and returns the next token. Whitespace and newlines are
// skipped. At end of input it returns an EOF token positioned just past
// the last consumed byte, and keeps doing so on further calls.
func (s *Scanner) Next() Token {
	for {
		b, ok := s.src.next()
		if !ok {
			return Token{Kind: EOF, Pos: s.pos()}
		}

		switch {
		case b == '\n':
			s.line++
			s.col = 1
			continue

		case isWhitespace(b):
			s.col++
			continue

		case isLetter(b):
			s.src.rewind()
			return s.scanName()

		case isDigit(b):
			s.src.rewind()
			return s.scanNumber()
		}

		tok := Token{Kind: operatorKind(b), Pos: s.pos()}
		if tok.Kind == Invalid {
			tok.Byte = b
		}
		s.col++
		return tok
	}
}

// operatorKind maps a single-byte operator or parenthesis to its kind,
// or Invalid for any other byte.
func operatorKind(b byte) Kind {
	switch b {
	case '=':
		return Assign
	case '+':
		return Add
	case '-':
		return Sub
	case '*':
		return Mul
	case '/':
		return Div
	case '%':
		return Rem
	case '|':
		return Or
	case '^':
		return Xor
	case '&':
		return And
	case '(':
		return Lparen
	case ')':
		return Rparen
	}
	return Invalid
}

// scanName scans the maximal run of alphanumeric bytes.
func (s *Scanner) scanName() Token {
	pos := s.pos()
	s.litBuf.Reset()
	for {
		b, ok := s.src.next()
		if !ok {
			break
		}
		if !isAlnum(b) {
			s.src.rewind()
			break
		}
		s.litBuf.WriteByte(b)
		s.col++
	}
	return Token{Kind: Name, Lit: s.litBuf.String(), Pos: pos}
}

// scanNumber scans the maximal run of decimal digits. A literal that
// does not fit in an int64 is consumed in full and recorded as an
// *OverflowError; the returned token then carries value 0.
func (s *Scanner) scanNumber() Token {
	pos := s.pos()
	s.litBuf.Reset()
	var n int64
	overflow := false
	for {
		b, ok := s.src.next()
		if !ok {
			break
		}
		if !isDigit(b) {
			s.src.rewind()
			break
		}
		s.litBuf.WriteByte(b)
		s.col++

		d := int64(b - '0')
		if n > (math.MaxInt64-d)/10 {
			overflow = true
		}
		if !overflow {
			n = n*10 + d
		}
	}

	if overflow {
		if s.err == nil {
			s.err = &OverflowError{Pos: pos, Lit: s.litBuf.String()}
		}
		n = 0
	}
	return Token{Kind: Number, Value: n, Pos: pos}
}

// Collect scans the whole input and returns every token before EOF.
// It stops at the first invalid byte with a *LexError, or at the first
// oversized literal with an *OverflowError; no partial sequence is
// returned in either case.
func (s *Scanner) Collect() ([]Token, error) {
	var toks []Token
	for {
		tok := s.Next()
		if err := s.Err(); err != nil {
			return nil, err
		}
		switch tok.Kind {
		case Invalid:
			return nil, &LexError{Pos: tok.Pos, Byte: tok.Byte}
		case EOF:
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// Scan is a convenience wrapper that creates a Scanner over input and
// collects all of its tokens.
func Scan(filename, input string) ([]Token, error) {
	s, err := NewScanner(filename, input)
	if err != nil {
		return nil, err
	}
	return s.Collect()
}
