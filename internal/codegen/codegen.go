// Package codegen lowers a validated postfix token sequence to a
// textual stack-machine IR with one instruction per stack operation.
//
// Format:
//
//	%0 = load 1
//	%1 = load 2
//	%2 = add %0, %1
//	; result %2
package codegen

import (
	"bytes"
	"fmt"
	"io"

	"github.com/you-not-fish/rpnc/internal/syntax"
)

// mnemonics maps each operator kind to its IR instruction.
// Assign has no instruction.
var mnemonics = map[syntax.Kind]string{
	syntax.Add: "add",
	syntax.Sub: "sub",
	syntax.Mul: "mul",
	syntax.Div: "div",
	syntax.Rem: "rem",
	syntax.And: "and",
	syntax.Xor: "xor",
	syntax.Or:  "or",
}

// generator tracks the ids produced so far in stack order.
type generator struct {
	e     emitter
	stack []int
}

// Generate writes the IR for toks, a postfix sequence, to w and
// returns the id of the final result. Each operand becomes a load of
// its literal text; each operator consumes the two most recent ids,
// with the second one popped as its left operand. Nothing is written
// to w unless the whole sequence lowers.
func Generate(w io.Writer, toks []syntax.Token) (int, error) {
	var buf bytes.Buffer
	g := &generator{e: emitter{w: &buf}}
	for _, tok := range toks {
		if err := g.lower(tok); err != nil {
			return 0, err
		}
	}
	if len(g.stack) != 1 {
		return 0, fmt.Errorf("codegen: %d values left on stack, want 1", len(g.stack))
	}

	result := g.stack[0]
	g.e.emitComment("result %s", valueName(result))
	if g.e.err != nil {
		return 0, g.e.err
	}
	if _, err := buf.WriteTo(w); err != nil {
		return 0, err
	}
	return result, nil
}

// lower emits the instruction for a single token.
func (g *generator) lower(tok syntax.Token) error {
	if tok.Kind.IsOperand() {
		id := g.e.nextID()
		g.e.emit("%s = load %s", valueName(id), tok)
		g.stack = append(g.stack, id)
		return nil
	}

	inst, ok := mnemonics[tok.Kind]
	if !ok {
		return fmt.Errorf("%s: codegen: no instruction for %s", tok.Pos, tok.Kind)
	}
	if len(g.stack) < 2 {
		return fmt.Errorf("%s: codegen: operator %s needs 2 operands, have %d", tok.Pos, tok.Kind, len(g.stack))
	}

	n := len(g.stack)
	right, left := g.stack[n-1], g.stack[n-2]
	g.stack = g.stack[:n-2]

	id := g.e.nextID()
	g.e.emit("%s = %s %s, %s", valueName(id), inst, valueName(left), valueName(right))
	g.stack = append(g.stack, id)
	return nil
}
