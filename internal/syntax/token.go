// Package syntax implements lexical analysis for arithmetic expressions.
package syntax

import (
	"fmt"
	"strconv"
)

// Kind is the type of a lexical token.
type Kind uint8

const (
	// Special tokens
	Invalid Kind = iota // unrecognised byte; Token.Byte holds it
	EOF                 // end of input

	// Operands
	Number // decimal integer; Token.Value holds it
	Name   // identifier; Token.Lit holds it

	// Operators (ordered by precedence, low to high)
	Assign // =
	Or     // |
	Xor    // ^
	And    // &
	Add    // +
	Sub    // -
	Mul    // *
	Div    // /
	Rem    // %

	// Delimiters
	Lparen // (
	Rparen // )

	kindCount
)

// kindNames maps kinds to their string representation.
var kindNames = [...]string{
	Invalid: "INVALID",
	EOF:     "EOF",

	Number: "NUMBER",
	Name:   "NAME",

	Assign: "=",
	Or:     "|",
	Xor:    "^",
	And:    "&",
	Add:    "+",
	Sub:    "-",
	Mul:    "*",
	Div:    "/",
	Rem:    "%",

	Lparen: "(",
	Rparen: ")",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Precedence returns the binding strength of a binary operator.
// Higher binds tighter. Operands and delimiters report 0; Assign
// reports -1 so that it never pulls another operator off the stack.
//
//	-1: =
//	 1: |
//	 2: ^
//	 3: &
//	 5: + -
//	 6: * / %
func (k Kind) Precedence() int {
	switch k {
	case Assign:
		return -1
	case Or:
		return 1
	case Xor:
		return 2
	case And:
		return 3
	case Add, Sub:
		return 5
	case Mul, Div, Rem:
		return 6
	}
	return 0
}

// IsOperand reports whether k is a number or an identifier.
func (k Kind) IsOperand() bool {
	return k == Number || k == Name
}

// IsOperator reports whether k is a binary operator.
func (k Kind) IsOperator() bool {
	return k >= Assign && k <= Rem
}

// IsParen reports whether k is a parenthesis.
func (k Kind) IsParen() bool {
	return k == Lparen || k == Rparen
}

// Token is a positioned lexical token. Only the payload field that
// matches Kind is meaningful; the others are zero.
type Token struct {
	Kind  Kind
	Value int64  // Number
	Lit   string // Name
	Byte  byte   // Invalid
	Pos   Pos    // start of the token
}

// String returns the source text of the token.
func (t Token) String() string {
	switch t.Kind {
	case Number:
		return strconv.FormatInt(t.Value, 10)
	case Name:
		return t.Lit
	case Invalid:
		return strconv.QuoteRuneToASCII(rune(t.Byte))
	}
	return t.Kind.String()
}
