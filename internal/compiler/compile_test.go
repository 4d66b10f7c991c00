package compiler

import (
	"bytes"
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/you-not-fish/rpnc/internal/check"
	"github.com/you-not-fish/rpnc/internal/rpn"
	"github.com/you-not-fish/rpnc/internal/syntax"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "1 2 3 * +"},
		{"8 - 3 - 2", "8 3 - 2 -"},
		{"(1 + 2) * 3", "1 2 + 3 *"},
		{"a % (b | 4) ^ c", "a b 4 | % c ^"},
		{"\n  width *\n  height\n", "width height *"},
		{"42", "42"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks, err := Compile(tt.src, Config{})
			if err != nil {
				t.Fatalf("Compile(%q): %v", tt.src, err)
			}
			if got := syntax.Sprint(toks); got != tt.want {
				t.Errorf("Compile(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	var (
		encErr   *syntax.EncodingError
		lexErr   *syntax.LexError
		ovfErr   *syntax.OverflowError
		infixErr *check.InfixError
		rpnErr   *check.RPNError
	)

	tests := []struct {
		src    string
		target interface{}
		msg    string
	}{
		{"1 + ü", &encErr, "in:1:5: non-ASCII character U+00FC in input"},
		{"1 @ 2", &lexErr, "in:1:3: invalid token '@'"},
		{"99999999999999999999", &ovfErr, "in:1:1: integer literal 99999999999999999999 overflows int64"},
		{"9 9 +", &infixErr, "in:1:1: expected operator after '9'"},
		{"1 + - 9", &infixErr, "in:1:3: expected operand after '+'"},
		{"((1 + 2)", &infixErr, "in:1:2: extra parenthesis '(' found"},
		{"", &rpnErr, "internal error: missing elements on virtual stack"},
		{"()", &rpnErr, "internal error: missing elements on virtual stack"},
		{"(+ 1)", &rpnErr, "in:1:2: operator '+' has 1 operand but needs 2"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks, err := Compile(tt.src, Config{Filename: "in"})
			if toks != nil {
				t.Errorf("tokens returned on error: %s", syntax.Sprint(toks))
			}
			if !errors.As(err, tt.target) {
				t.Fatalf("Compile(%q) error = %T %v, want %T", tt.src, err, err, tt.target)
			}
			if err.Error() != tt.msg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.msg)
			}
		})
	}
}

func TestCompileReportsToHandler(t *testing.T) {
	var got []string
	cfg := Config{Error: func(pos syntax.Pos, msg string) {
		got = append(got, pos.String()+": "+msg)
	}}

	if _, err := Compile("1 2", cfg); err == nil {
		t.Fatal("expected error")
	}
	if len(got) != 1 || got[0] != "1:1: expected operator after '1'" {
		t.Errorf("handler got %q", got)
	}
}

func TestCompileDump(t *testing.T) {
	tests := []struct {
		after string
		want  string
	}{
		{"", ""},
		{StageReduce, "--- after reduce ---\n1 2 3 * +\n"},
		{"*", "--- after scan ---\n1 + 2 * 3\n" +
			"--- after infix ---\n1 + 2 * 3\n" +
			"--- after reduce ---\n1 2 3 * +\n" +
			"--- after postfix ---\n1 2 3 * +\n"},
	}

	for _, tt := range tests {
		t.Run(tt.after, func(t *testing.T) {
			var buf bytes.Buffer
			if _, err := Compile("1 + 2 * 3", Config{DumpAfter: tt.after, Dump: &buf}); err != nil {
				t.Fatalf("Compile: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("dump:\n%s\nwant:\n%s", buf.String(), tt.want)
			}
		})
	}
}

func TestRunStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	var ran []string
	stages := []Stage{
		{Name: "a", Fn: func(toks []syntax.Token) ([]syntax.Token, error) {
			ran = append(ran, "a")
			return toks, nil
		}},
		{Name: "b", Fn: func([]syntax.Token) ([]syntax.Token, error) {
			ran = append(ran, "b")
			return nil, boom
		}},
		{Name: "c", Fn: func(toks []syntax.Token) ([]syntax.Token, error) {
			ran = append(ran, "c")
			return toks, nil
		}},
	}

	_, err := Run(nil, stages, Config{})
	if !errors.Is(err, boom) {
		t.Errorf("Run error = %v, want %v", err, boom)
	}
	if strings.Join(ran, ",") != "a,b" {
		t.Errorf("ran %v, want [a b]", ran)
	}
}

// genExpr builds a random well-formed infix expression.
func genExpr(r *rand.Rand, depth int) string {
	if depth == 0 || r.Intn(3) == 0 {
		if r.Intn(2) == 0 {
			return strconv.Itoa(r.Intn(1000))
		}
		return string(rune('a'+r.Intn(26))) + strconv.Itoa(r.Intn(10))
	}
	ops := "+-*/%&^|"
	op := string(ops[r.Intn(len(ops))])
	expr := genExpr(r, depth-1) + " " + op + " " + genExpr(r, depth-1)
	if r.Intn(2) == 0 {
		expr = "(" + expr + ")"
	}
	return expr
}

func TestRoundTripArity(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		src := genExpr(r, 5)
		toks, err := syntax.Scan("", src)
		if err != nil {
			t.Fatalf("Scan(%q): %v", src, err)
		}
		if !check.ValidInfix(toks) {
			t.Fatalf("ValidInfix(%q) = false", src)
		}

		out, err := rpn.Reduce(toks)
		if err != nil {
			t.Fatalf("Reduce(%q): %v", src, err)
		}
		if !check.ValidRPN(out) {
			t.Fatalf("ValidRPN(Reduce(%q)) = false: %s", src, syntax.Sprint(out))
		}

		var operands, operators int
		for _, tok := range toks {
			switch {
			case tok.Kind.IsOperand():
				operands++
			case tok.Kind.IsOperator():
				operators++
			}
		}
		if len(out) != operands+operators {
			t.Fatalf("Reduce(%q) has %d tokens, want %d", src, len(out), operands+operators)
		}
	}
}

type failWriter struct{}

var errWrite = errors.New("pipe closed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestCompileDumpWriteError(t *testing.T) {
	for _, after := range []string{StageScan, StagePostfix} {
		t.Run(after, func(t *testing.T) {
			toks, err := Compile("1 + 2", Config{DumpAfter: after, Dump: failWriter{}})
			if toks != nil {
				t.Errorf("tokens returned on dump failure: %s", syntax.Sprint(toks))
			}
			if !errors.Is(err, errWrite) {
				t.Fatalf("Compile error = %v, want %v", err, errWrite)
			}
			if !strings.Contains(err.Error(), "dump after "+after) {
				t.Errorf("Error() = %q, want stage name", err.Error())
			}
		})
	}
}
