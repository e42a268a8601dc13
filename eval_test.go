package exactcalc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/zephyrtronium/exactcalc"
	"github.com/zephyrtronium/exactcalc/decimal"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    string
	}{
		{"num", "1", "1"},
		{"frac", "0.50", "0.5"},
		{"lead-dot", ".25", "0.25"},
		{"trail-dot", "2.", "2"},
		{"neg", "-4", "-4"},
		{"negneg", "--4", "4"},
		{"exact-sum", "0.1+0.2", "0.3"},
		{"exact-diff", "1-0.9", "0.1"},
		{"exact-prod", "1.1*1.1", "1.21"},
		{"cancel", "1.5+1.5", "3"},
		{"add", "4+5+6", "15"},
		{"sub", "4-5-6", "-7"},
		{"mul", "4*5*6", "120"},
		{"div", "8/4/2", "1"},
		{"alt", "7×8÷2−3", "25"},
		{"prec", "1+2*3", "7"},
		{"prec-paren", "(1+2)*3", "9"},
		{"nested", "12+4*(6-2)", "28"},
		{"assoc", "8-3-2", "3"},
		{"unary-first", "-3+2", "-1"},
		{"unary-paren", "(-3)+2", "-1"},
		{"unary-after-op", "2*-3", "-6"},
		{"unary-after-sub", "2--3", "5"},
		{"unary-of-group", "-(1+2)*2", "-6"},
		{"zero-product", "-0*5", "0"},
		{"big", "99999999999999999999*99999999999999999999", "9999999999999999999800000000000000000001"},
		{"tiny", "0.00000000000000000001*0.1", "0.000000000000000000001"},
		{"third", "1/3", "0.33333333333333333333"},
		{"two-thirds", "2/3", "0.66666666666666666667"},
		{"neg-third", "-1/3", "-0.33333333333333333333"},
		{"exact-quo", "1/8", "0.125"},
		{"quo-of-fracs", "0.3/0.1", "3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := exactcalc.EvalString(c.src)
			if err != nil {
				t.Fatalf("evaluating %q: %v", c.src, err)
			}
			if s := r.String(); s != c.r {
				t.Errorf("%q: want %s, got %s", c.src, c.r, s)
			}
		})
	}
}

func TestEvalPrecision(t *testing.T) {
	cases := []struct {
		src  string
		prec int
		r    string
	}{
		{"10/3", 4, "3.3333"},
		{"10/3", 0, "3"},
		{"1/3", 0, "0"},
		{"2/3", 0, "1"},
		{"-2/3", 0, "-1"},
		{"2/-3", 0, "-1"},
		{"-2/-3", 0, "1"},
		{"-1/3", 0, "0"},
		{"-1/3", 1, "-0.3"},
		{"-1/3", 5, "-0.33333"},
		{"-1/3", 30, "-0.333333333333333333333333333333"},
		// ties
		{"1/2", 0, "1"},
		{"-1/2", 0, "-1"},
		{"5/2", 0, "3"},
		{"-5/2", 0, "-3"},
		{"1/8", 2, "0.13"},
		{"-1/8", 2, "-0.13"},
		{"0.125/-1", 2, "-0.13"},
		{"1/16", 3, "0.063"},
		// trailing zeros after rounding are not kept
		{"1/4", 5, "0.25"},
		{"0.2/3", 1, "0.1"},
		{"0.29/3", 1, "0.1"},
		{"19/2", 0, "10"},
		// a negative precision is ignored
		{"1/3", -1, "0.33333333333333333333"},
		// precision only affects quotients
		{"1.23456*1.1", 0, "1.358016"},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%s@%d", c.src, c.prec), func(t *testing.T) {
			r, err := exactcalc.EvalString(c.src, exactcalc.Precision(c.prec))
			if err != nil {
				t.Fatalf("evaluating %q: %v", c.src, err)
			}
			if s := r.String(); s != c.r {
				t.Errorf("%q at precision %d: want %s, got %s", c.src, c.prec, c.r, s)
			}
		})
	}
}

func TestEvalOptions(t *testing.T) {
	n := mustParse(t, "2/3")
	a, err := exactcalc.Eval(n, exactcalc.Precision(2), nil, exactcalc.Precision(4))
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != "0.6667" {
		t.Errorf("later option should win: got %v", a)
	}
	// Evaluating again gives the same result.
	b, err := exactcalc.Eval(n, exactcalc.Precision(4))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("second evaluation differs: %v then %v", a, b)
	}
	if s := n.String(); s != "([2] / [3])" {
		t.Errorf("evaluation changed tree to %s", s)
	}
}

func TestEvalStringErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		code exactcalc.Code
	}{
		{"div-zero", "1/0", exactcalc.CodeDivByZero},
		{"div-zero-frac", "1/0.000", exactcalc.CodeDivByZero},
		{"div-zero-expr", "1/(2-2)", exactcalc.CodeDivByZero},
		{"div-zero-alt", "0÷0", exactcalc.CodeDivByZero},
		{"parens", "(1+2", exactcalc.CodeMismatchedParens},
		{"empty", "", exactcalc.CodeEmptyExpression},
		{"operand", "1+", exactcalc.CodeMalformedExpression},
		{"char", "1@2", exactcalc.CodeUnexpectedChar},
		{"dot", "1+.", exactcalc.CodeMalformedNumber},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := exactcalc.EvalString(c.src)
			if err == nil {
				t.Fatalf("evaluating %q gave %v with no error", c.src, r)
			}
			if got := exactcalc.CodeOf(err); got != c.code {
				t.Errorf("%q: want code %s, got %s (%v)", c.src, c.code, got, err)
			}
			if !r.IsZero() {
				t.Errorf("%q gave non-zero result %v with error", c.src, r)
			}
		})
	}
}

func TestEvalDivByZero(t *testing.T) {
	_, err := exactcalc.EvalString("5/(1-1)")
	if !errors.Is(err, decimal.ErrDivisionByZero) {
		t.Errorf("%#v does not wrap decimal.ErrDivisionByZero", err)
	}
	var e *exactcalc.EvalError
	if !errors.As(err, &e) {
		t.Fatalf("%#v is not *EvalError", err)
	}
	if e.Code != exactcalc.CodeDivByZero || e.Error() != "division by zero" {
		t.Errorf("wrong error %q with code %s", e.Error(), e.Code)
	}
}

func TestEvalBadTrees(t *testing.T) {
	num := func(s string) *exactcalc.Node {
		return &exactcalc.Node{Kind: exactcalc.NumberLiteral, Text: s}
	}
	cases := []struct {
		name string
		n    *exactcalc.Node
		code exactcalc.Code
	}{
		{"nil", nil, exactcalc.CodeUnknownNode},
		{"none", &exactcalc.Node{}, exactcalc.CodeUnknownNode},
		{"kind", &exactcalc.Node{Kind: 100}, exactcalc.CodeUnknownNode},
		{"numeral", num("1e3"), exactcalc.CodeInvalidNumber},
		{"empty-numeral", num(""), exactcalc.CodeInvalidNumber},
		{"unary-op", &exactcalc.Node{Kind: exactcalc.UnaryExpr, Op: "+", Left: num("1")}, exactcalc.CodeUnsupportedOperator},
		{"unary-missing", &exactcalc.Node{Kind: exactcalc.UnaryExpr, Op: "-"}, exactcalc.CodeUnknownNode},
		{"binary-op", &exactcalc.Node{Kind: exactcalc.BinaryExpr, Op: "^", Left: num("1"), Right: num("2")}, exactcalc.CodeUnsupportedOperator},
		{"binary-missing", &exactcalc.Node{Kind: exactcalc.BinaryExpr, Op: "+", Left: num("1")}, exactcalc.CodeUnknownNode},
		// The left operand is evaluated first.
		{"left-first", &exactcalc.Node{Kind: exactcalc.BinaryExpr, Op: "+", Left: num("x"), Right: &exactcalc.Node{}}, exactcalc.CodeInvalidNumber},
		// Operands are evaluated before the operator is checked.
		{"operand-first", &exactcalc.Node{Kind: exactcalc.BinaryExpr, Op: "%", Left: num("1"), Right: num("")}, exactcalc.CodeInvalidNumber},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := exactcalc.Eval(c.n)
			if err == nil {
				t.Fatalf("evaluating %v gave %v with no error", c.n, r)
			}
			if got := exactcalc.CodeOf(err); got != c.code {
				t.Errorf("want code %s, got %s (%v)", c.code, got, err)
			}
		})
	}
}

func TestEvalInvalidNumberWraps(t *testing.T) {
	_, err := exactcalc.Eval(&exactcalc.Node{Kind: exactcalc.NumberLiteral, Text: "1.2.3"})
	var ne *decimal.NumberError
	if !errors.As(err, &ne) {
		t.Fatalf("%#v does not wrap *decimal.NumberError", err)
	}
	if ne.Text != "1.2.3" {
		t.Errorf("wrong text %q", ne.Text)
	}
}

func mustParse(t testing.TB, src string) *exactcalc.Node {
	t.Helper()
	toks, err := exactcalc.Tokenize(src)
	if err != nil {
		t.Fatalf("failed to tokenize %q: %v", src, err)
	}
	n, err := exactcalc.Parse(toks)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", src, err)
	}
	return n
}

func BenchmarkEval(b *testing.B) {
	b.Run("sum", func(b *testing.B) {
		b.ReportAllocs()
		n := mustParse(b, "2+3.5+4.25")
		for i := 0; i < b.N; i++ {
			exactcalc.Eval(n)
		}
	})
	b.Run("quo", func(b *testing.B) {
		b.ReportAllocs()
		n := mustParse(b, "1/7+2/7")
		for i := 0; i < b.N; i++ {
			exactcalc.Eval(n, exactcalc.Precision(50))
		}
	})
	b.Run("string", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			exactcalc.EvalString("12+4*(6-2)/3")
		}
	})
}
