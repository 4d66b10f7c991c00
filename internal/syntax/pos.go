package syntax

import "fmt"

// Pos locates the first byte of a token in an expression. Input is
// 7-bit ASCII, so a column is also the byte offset within the line
// plus one. Tabs and carriage returns each occupy one column.
// The zero value is an invalid position, used for diagnostics that
// have no token to point at, such as an empty expression.
type Pos struct {
	filename string // "<arg>" for a command-line expression, else the -f path
	line     uint32 // counts newlines seen before the token, plus one
	col      uint32
}

// NewPos returns the position at line and col (both 1-based) of the
// expression labelled filename. filename may be empty.
func NewPos(filename string, line, col uint32) Pos {
	return Pos{filename: filename, line: line, col: col}
}

// String returns the diagnostic prefix form "filename:line:col", or
// "line:col" for an unlabelled expression.
func (p Pos) String() string {
	if p.filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.col)
	}
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether p points at a token. The scanner never
// produces line 0.
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() uint32 {
	return p.line
}

// Col returns the 1-based column number.
func (p Pos) Col() uint32 {
	return p.col
}

// Filename returns the label of the expression, or "".
func (p Pos) Filename() string {
	return p.filename
}
