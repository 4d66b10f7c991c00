package check

import (
	"fmt"

	"github.com/you-not-fish/rpnc/internal/syntax"
)

// Postfix checks toks, a postfix sequence, by executing it on a
// virtual stack that holds placeholders instead of values. Every
// operand pushes one placeholder and every operator pops two and
// pushes one. It returns an *RPNError if the stack underflows, if a
// token other than an operand or operator appears, or if anything
// other than exactly one placeholder remains at the end.
func (conf *Config) Postfix(toks []syntax.Token) error {
	err := checkPostfix(toks)
	if err != nil {
		conf.report(err.Pos, err.Msg)
		return err
	}
	return nil
}

// ValidRPN reports whether toks passes Postfix.
func ValidRPN(toks []syntax.Token) bool {
	return (*Config)(nil).Postfix(toks) == nil
}

func checkPostfix(toks []syntax.Token) *RPNError {
	depth, at := execute(toks)
	if at >= 0 {
		tok := toks[at]
		var msg string
		switch {
		case tok.Kind.IsParen():
			msg = fmt.Sprintf("extra %s found", quote(tok))
		case !tok.Kind.IsOperator():
			msg = fmt.Sprintf("unexpected token %s in postfix sequence", quote(tok))
		case depth == 0:
			msg = fmt.Sprintf("operator %s has no operands but needs 2", quote(tok))
		default:
			msg = fmt.Sprintf("operator %s has 1 operand but needs 2", quote(tok))
		}
		return &RPNError{Pos: tok.Pos, Msg: msg}
	}

	if depth == 1 {
		return nil
	}
	var pos syntax.Pos
	if len(toks) > 0 {
		pos = toks[len(toks)-1].Pos
	}
	if depth == 0 {
		return &RPNError{Pos: pos, Msg: "internal error: missing elements on virtual stack"}
	}
	return &RPNError{
		Pos: pos,
		Msg: fmt.Sprintf("internal error: %d excess elements on virtual stack", depth-1),
	}
}

// execute folds toks over a placeholder stack. It returns the final
// stack depth and -1, or the depth just before the first token that
// cannot execute together with that token's index.
func execute(toks []syntax.Token) (depth, at int) {
	for i, tok := range toks {
		switch {
		case tok.Kind.IsOperand():
			depth++
		case tok.Kind.IsOperator():
			if depth < 2 {
				return depth, i
			}
			depth--
		default:
			return depth, i
		}
	}
	return depth, -1
}
