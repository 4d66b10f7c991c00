package syntax

import "fmt"

// EncodingError reports a character outside 7-bit ASCII.
type EncodingError struct {
	Pos  Pos
	Rune rune
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: non-ASCII character %U in input", e.Pos, e.Rune)
}

// LexError reports a byte that does not start any token.
type LexError struct {
	Pos  Pos
	Byte byte
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: invalid token %s", e.Pos, Token{Kind: Invalid, Byte: e.Byte})
}

// OverflowError reports a decimal literal that does not fit in an int64.
type OverflowError struct {
	Pos Pos
	Lit string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s: integer literal %s overflows int64", e.Pos, e.Lit)
}
