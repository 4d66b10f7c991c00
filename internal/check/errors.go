// Package check validates token sequences before and after they are
// reordered into postfix form.
package check

import (
	"fmt"

	"github.com/you-not-fish/rpnc/internal/syntax"
)

// InfixError reports a structural problem in an infix sequence.
type InfixError struct {
	Pos syntax.Pos
	Msg string
}

func (e *InfixError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// RPNError reports a postfix sequence that does not execute to exactly
// one value. Pos is the zero Pos when the sequence is empty.
type RPNError struct {
	Pos syntax.Pos
	Msg string
}

func (e *RPNError) Error() string {
	if !e.Pos.IsValid() {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// ErrorHandler is called for each problem found.
type ErrorHandler func(pos syntax.Pos, msg string)

// Config specifies how problems are reported. A nil *Config is valid
// and reports through the returned error only.
type Config struct {
	// Error is called for each problem before the check returns.
	// If nil, problems are only returned.
	Error ErrorHandler
}

func (conf *Config) report(pos syntax.Pos, msg string) {
	if conf != nil && conf.Error != nil {
		conf.Error(pos, msg)
	}
}

// quote returns the source text of tok in single quotes.
func quote(tok syntax.Token) string {
	return "'" + tok.String() + "'"
}
