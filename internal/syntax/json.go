package syntax

import (
	"encoding/json"
	"io"
)

// jsonToken is the wire form of a Token.
type jsonToken struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Value *int64 `json:"value,omitempty"`
	Pos   string `json:"pos"`
	Line  uint32 `json:"line"`
	Col   uint32 `json:"col"`
}

// FprintJSON writes a JSON array describing toks to w. Positions are
// written exactly as diagnostics print them, e.g. "<arg>:1:3".
func FprintJSON(w io.Writer, toks []Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(toJSON(toks))
}

func toJSON(toks []Token) []jsonToken {
	out := make([]jsonToken, 0, len(toks))
	for _, t := range toks {
		jt := jsonToken{
			Kind: t.Kind.String(),
			Text: t.String(),
			Pos:  t.Pos.String(),
			Line: t.Pos.Line(),
			Col:  t.Pos.Col(),
		}
		if t.Kind == Number {
			v := t.Value
			jt.Value = &v
		}
		out = append(out, jt)
	}
	return out
}
