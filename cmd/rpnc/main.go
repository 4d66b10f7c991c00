// Package main implements the rpnc expression compiler entry point.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/you-not-fish/rpnc/internal/codegen"
	"github.com/you-not-fish/rpnc/internal/compiler"
	"github.com/you-not-fish/rpnc/internal/syntax"
)

// Compiler flags
var (
	emit      = flag.String("emit", "rpn", "Output format: rpn, ir, tokens or json")
	output    = flag.String("o", "", "Output file")
	inFile    = flag.String("f", "", "Read the expression from a file instead of the argument")
	dumpAfter = flag.String("dump-after", "", "Dump tokens after stage (scan, infix, reduce, postfix or \"*\")")
	version   = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.1.0-dev"

// argName labels positions when the expression comes from the command line.
const argName = "<arg>"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "rpnc %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: rpnc [options] <expr>\n")
		fmt.Fprintf(os.Stderr, "       rpnc [options] -f <file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("rpnc version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	input, filename, err := readInput(*inFile, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var uerr *usageError
		if errors.As(err, &uerr) {
			flag.Usage()
			os.Exit(2)
		}
		os.Exit(1)
	}

	os.Exit(run(input, filename))
}

// usageError reports a command line that names no single expression.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// readInput returns the expression and the name that labels its
// positions. Exactly one source is allowed: a single argument, or a
// file given with -f and no arguments.
func readInput(file string, args []string) (string, string, error) {
	if file != "" {
		if len(args) != 0 {
			return "", "", &usageError{fmt.Sprintf("-f takes no expression argument, got %d", len(args))}
		}
		src, err := os.ReadFile(file)
		if err != nil {
			return "", "", err
		}
		return string(src), file, nil
	}
	if len(args) != 1 {
		return "", "", &usageError{fmt.Sprintf("want exactly 1 expression argument, got %d", len(args))}
	}
	return args[0], argName, nil
}

// run compiles input according to the flags and returns the exit code.
// Output goes to stdout or the -o file only when compilation succeeds.
func run(input, filename string) int {
	var buf bytes.Buffer
	var code int
	switch *emit {
	case "tokens":
		code = runEmitTokens(&buf, input, filename)
	case "rpn", "ir", "json":
		code = runCompile(&buf, input, filename, *emit)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown -emit format %q\n", *emit)
		code = 2
	}
	if code != 0 {
		return code
	}

	if err := writeOutput(*output, buf.Bytes()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// writeOutput writes data to path, or to stdout if path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// runCompile runs the full pipeline and writes the result as format.
func runCompile(w io.Writer, input, filename, format string) int {
	cfg := compiler.Config{
		Filename:  filename,
		DumpAfter: *dumpAfter,
		Dump:      os.Stderr,
	}

	toks, err := compiler.Compile(input, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	switch format {
	case "ir":
		_, err = codegen.Generate(w, toks)
	case "json":
		err = syntax.FprintJSON(w, toks)
	default:
		err = syntax.Fprint(w, toks)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// runEmitTokens scans the input and prints all tokens with positions.
// No validation runs in this mode.
func runEmitTokens(w io.Writer, input, filename string) int {
	toks, err := syntax.Scan(filename, input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fmt.Fprintf(w, "%-20s %-8s %s\n", "POSITION", "TOKEN", "TEXT")
	fmt.Fprintf(w, "%-20s %-8s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 8), strings.Repeat("-", 20))
	for _, tok := range toks {
		fmt.Fprintf(w, "%-20s %-8s %s\n", tok.Pos, tok.Kind, tok)
	}
	return 0
}
