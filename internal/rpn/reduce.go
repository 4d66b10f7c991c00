// Package rpn reorders infix token sequences into postfix (reverse
// Polish) order with an operator-precedence stack.
package rpn

import (
	"fmt"

	"github.com/you-not-fish/rpnc/internal/syntax"
)

// MismatchedParenError reports a ')' with no open '(' in scope.
type MismatchedParenError struct {
	Pos syntax.Pos
}

func (e *MismatchedParenError) Error() string {
	return fmt.Sprintf("%s: mismatched parenthesis ')'", e.Pos)
}

// Reduce returns the postfix form of the infix sequence toks. Operands
// keep their relative order; each operator is emitted after both of
// its operands; parentheses never appear in the result. Operators of
// equal precedence associate to the left.
//
// An unmatched ')' fails with *MismatchedParenError. An unmatched '('
// is drained into the output like an operator and is left for the
// postfix check to reject. toks is not modified.
func Reduce(toks []syntax.Token) ([]syntax.Token, error) {
	out := make([]syntax.Token, 0, len(toks))
	var stack []syntax.Token

	for _, tok := range toks {
		switch {
		case tok.Kind.IsOperand():
			out = append(out, tok)

		case tok.Kind == syntax.Lparen:
			stack = append(stack, tok)

		case tok.Kind == syntax.Rparen:
			var ok bool
			stack, out, ok = closeGroup(stack, out)
			if !ok {
				return nil, &MismatchedParenError{Pos: tok.Pos}
			}

		default:
			stack, out = pushOperator(stack, out, tok)
		}
	}

	for len(stack) > 0 {
		top := len(stack) - 1
		out = append(out, stack[top])
		stack = stack[:top]
	}
	return out, nil
}

// pushOperator moves every operator that binds at least as tightly as
// op from the stack to the output, stopping at an open '(' scope, and
// then pushes op.
func pushOperator(stack, out []syntax.Token, op syntax.Token) ([]syntax.Token, []syntax.Token) {
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.Kind == syntax.Lparen || top.Kind.Precedence() < op.Kind.Precedence() {
			break
		}
		out = append(out, top)
		stack = stack[:len(stack)-1]
	}
	return append(stack, op), out
}

// closeGroup pops operators to the output up to and including the
// nearest '(' which is discarded. ok is false if no '(' was found.
func closeGroup(stack, out []syntax.Token) ([]syntax.Token, []syntax.Token, bool) {
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == syntax.Lparen {
			return stack, out, true
		}
		out = append(out, top)
	}
	return stack, out, false
}
