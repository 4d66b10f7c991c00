package syntax

import (
	"io"
	"strings"
)

// Fprint writes toks to w separated by single spaces and terminated by
// a newline, e.g. "1 2 3 * +".
func Fprint(w io.Writer, toks []Token) error {
	_, err := io.WriteString(w, Sprint(toks)+"\n")
	return err
}

// Sprint returns the space-separated source text of toks.
func Sprint(toks []Token) string {
	var sb strings.Builder
	for i, t := range toks {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}
