// Package compiler runs the expression front end: scan, infix check,
// reduction to postfix and postfix check.
package compiler

import (
	"fmt"
	"io"
	"os"

	"github.com/you-not-fish/rpnc/internal/check"
	"github.com/you-not-fish/rpnc/internal/rpn"
	"github.com/you-not-fish/rpnc/internal/syntax"
)

// Stage names, in pipeline order.
const (
	StageScan    = "scan"
	StageInfix   = "infix"
	StageReduce  = "reduce"
	StagePostfix = "postfix"
)

// Stage is a single step over a token sequence.
type Stage struct {
	Name string
	Fn   func(toks []syntax.Token) ([]syntax.Token, error)
}

// Config controls a compilation.
type Config struct {
	Filename  string             // labels positions; may be empty
	DumpAfter string             // dump tokens after this stage ("*" for all)
	Dump      io.Writer          // dump destination; os.Stderr if nil
	Error     check.ErrorHandler // called for each problem the checks find
}

// Compile turns input into a validated postfix sequence. The stages
// run in a fixed order and the first failure is returned unchanged,
// so callers can inspect it with errors.As.
func Compile(input string, cfg Config) ([]syntax.Token, error) {
	toks, err := syntax.Scan(cfg.Filename, input)
	if err != nil {
		return nil, err
	}
	if err := cfg.dump(StageScan, toks); err != nil {
		return nil, err
	}
	return Run(toks, Stages(cfg), cfg)
}

// Stages returns the stages that follow scanning.
func Stages(cfg Config) []Stage {
	conf := &check.Config{Error: cfg.Error}
	return []Stage{
		{Name: StageInfix, Fn: verify(conf.Infix)},
		{Name: StageReduce, Fn: rpn.Reduce},
		{Name: StagePostfix, Fn: verify(conf.Postfix)},
	}
}

// verify adapts a read-only check to a Stage function.
func verify(fn func([]syntax.Token) error) func([]syntax.Token) ([]syntax.Token, error) {
	return func(toks []syntax.Token) ([]syntax.Token, error) {
		if err := fn(toks); err != nil {
			return nil, err
		}
		return toks, nil
	}
}

// Run executes stages on toks in order and stops at the first error.
// A failed dump write is an error too.
func Run(toks []syntax.Token, stages []Stage, cfg Config) ([]syntax.Token, error) {
	for _, s := range stages {
		var err error
		toks, err = s.Fn(toks)
		if err != nil {
			return nil, err
		}
		if err := cfg.dump(s.Name, toks); err != nil {
			return nil, err
		}
	}
	return toks, nil
}

// dump writes toks after stage if DumpAfter selects it.
func (cfg Config) dump(stage string, toks []syntax.Token) error {
	if cfg.DumpAfter != "*" && cfg.DumpAfter != stage {
		return nil
	}
	w := cfg.Dump
	if w == nil {
		w = os.Stderr
	}
	if _, err := fmt.Fprintf(w, "--- after %s ---\n", stage); err != nil {
		return fmt.Errorf("dump after %s: %w", stage, err)
	}
	if err := syntax.Fprint(w, toks); err != nil {
		return fmt.Errorf("dump after %s: %w", stage, err)
	}
	return nil
}
