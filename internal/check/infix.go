package check

import (
	"fmt"

	"github.com/you-not-fish/rpnc/internal/syntax"
)

// Infix checks toks, an infix sequence, and returns an *InfixError for
// the first problem found:
//
//   - the number of '(' and ')' differ;
//   - an operand is followed by an operand or by '(';
//   - a ')' is followed by an operand or by '(';
//   - an operator is the last token or is followed by another operator.
//
// The ')' rule is stricter than balance and operator placement alone:
// "(a)b" and "(a)(b)" are rejected here rather than left for Postfix,
// so the diagnostic points at the juxtaposed token.
//
// Passing is necessary but not sufficient for a well-formed expression;
// Postfix completes the check once the sequence has been reduced.
func (conf *Config) Infix(toks []syntax.Token) error {
	if err := checkParenCount(toks); err != nil {
		conf.report(err.Pos, err.Msg)
		return err
	}
	if err := checkAdjacent(toks); err != nil {
		conf.report(err.Pos, err.Msg)
		return err
	}
	return nil
}

// ValidInfix reports whether toks passes Infix.
func ValidInfix(toks []syntax.Token) bool {
	return (*Config)(nil).Infix(toks) == nil
}

// checkParenCount compares the number of '(' and ')' and, on mismatch,
// cites the last parenthesis of the kind in excess.
func checkParenCount(toks []syntax.Token) *InfixError {
	var nopen, nclose int
	var lastOpen, lastClose syntax.Token
	for _, tok := range toks {
		switch tok.Kind {
		case syntax.Lparen:
			nopen++
			lastOpen = tok
		case syntax.Rparen:
			nclose++
			lastClose = tok
		}
	}

	switch {
	case nopen > nclose:
		return &InfixError{Pos: lastOpen.Pos, Msg: "extra parenthesis '(' found"}
	case nclose > nopen:
		return &InfixError{Pos: lastClose.Pos, Msg: "extra parenthesis ')' found"}
	}
	return nil
}

// checkAdjacent compares each token with its successor.
func checkAdjacent(toks []syntax.Token) *InfixError {
	for i, tok := range toks {
		last := i == len(toks)-1
		var next syntax.Token
		if !last {
			next = toks[i+1]
		}

		switch {
		case tok.Kind.IsOperand(), tok.Kind == syntax.Rparen:
			if last {
				continue
			}
			if next.Kind.IsOperand() || next.Kind == syntax.Lparen {
				return &InfixError{
					Pos: tok.Pos,
					Msg: fmt.Sprintf("expected operator after %s", quote(tok)),
				}
			}

		case tok.Kind.IsOperator():
			if last || next.Kind.IsOperator() {
				return &InfixError{
					Pos: tok.Pos,
					Msg: fmt.Sprintf("expected operand after %s", quote(tok)),
				}
			}
		}
	}
	return nil
}
