package exactcalc

import (
	"strconv"

	"github.com/zephyrtronium/exactcalc/decimal"
)

// DefaultPrecision is the number of digits after the decimal point to which
// quotients are rounded unless a Precision option says otherwise.
const DefaultPrecision = 20

// EvalOption is an option used when evaluating.
type EvalOption interface {
	evalOption(*evalctx)
}

type evalctx struct {
	prec int
}

type precopt int

func (p precopt) evalOption(c *evalctx) {
	if p >= 0 {
		c.prec = int(p)
	}
}

// Precision sets the number of digits after the decimal point to which
// quotients are rounded. A negative precision is ignored, leaving the
// default.
func Precision(prec int) EvalOption {
	return precopt(prec)
}

// Eval evaluates a syntax tree. Evaluation is pure: the tree is not modified
// and may be evaluated any number of times.
func Eval(n *Node, opts ...EvalOption) (decimal.Decimal, error) {
	ctx := evalctx{prec: DefaultPrecision}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.evalOption(&ctx)
	}
	return n.eval(&ctx)
}

// EvalString is a shortcut to tokenize, parse, and evaluate an expression.
// The error, if any, is that of the first stage to fail.
func EvalString(src string, opts ...EvalOption) (decimal.Decimal, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return decimal.Decimal{}, err
	}
	n, err := Parse(toks)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return Eval(n, opts...)
}

// eval computes the node's value. The left operand of a binary node is
// evaluated before the right.
func (n *Node) eval(ctx *evalctx) (decimal.Decimal, error) {
	if n == nil {
		return decimal.Decimal{}, &EvalError{Code: CodeUnknownNode, Detail: "<nil>"}
	}
	switch n.Kind {
	case NumberLiteral:
		d, err := decimal.Parse(n.Text)
		if err != nil {
			return decimal.Decimal{}, &EvalError{Code: CodeInvalidNumber, Detail: n.Text, Err: err}
		}
		return d, nil
	case UnaryExpr:
		v, err := n.Left.eval(ctx)
		if err != nil {
			return decimal.Decimal{}, err
		}
		if n.Op != "-" {
			return decimal.Decimal{}, &EvalError{Code: CodeUnsupportedOperator, Detail: n.Op, Unary: true}
		}
		return v.Neg(), nil
	case BinaryExpr:
		l, err := n.Left.eval(ctx)
		if err != nil {
			return decimal.Decimal{}, err
		}
		r, err := n.Right.eval(ctx)
		if err != nil {
			return decimal.Decimal{}, err
		}
		switch n.Op {
		case "+":
			return l.Add(r), nil
		case "-":
			return l.Sub(r), nil
		case "*":
			return l.Mul(r), nil
		case "/":
			q, err := l.Quo(r, ctx.prec)
			if err != nil {
				return decimal.Decimal{}, &EvalError{Code: CodeDivByZero, Detail: "/", Err: err}
			}
			return q, nil
		default:
			return decimal.Decimal{}, &EvalError{Code: CodeUnsupportedOperator, Detail: n.Op}
		}
	default:
		return decimal.Decimal{}, &EvalError{Code: CodeUnknownNode, Detail: n.Kind.String()}
	}
}

// EvalError is an error from evaluating a syntax tree. It implements Coder.
// Trees built by Parse only ever produce CodeDivByZero; the other codes
// indicate a tree built by hand.
type EvalError struct {
	// Code is CodeDivByZero, CodeInvalidNumber, CodeUnsupportedOperator, or
	// CodeUnknownNode.
	Code Code
	// Detail is the operator, numeral, or node kind that caused the error.
	Detail string
	// Unary is whether an unsupported operator was on a unary node.
	Unary bool
	// Err is the underlying arithmetic error, if any. For CodeDivByZero it is
	// decimal.ErrDivisionByZero.
	Err error
}

func (err *EvalError) Error() string {
	switch err.Code {
	case CodeDivByZero:
		return "division by zero"
	case CodeInvalidNumber:
		return "invalid number " + strconv.Quote(err.Detail)
	case CodeUnsupportedOperator:
		if err.Unary {
			return "unsupported unary operator " + strconv.Quote(err.Detail)
		}
		return "unsupported operator " + strconv.Quote(err.Detail)
	default:
		return "unknown node " + err.Detail
	}
}

func (err *EvalError) Unwrap() error {
	return err.Err
}

func (err *EvalError) ErrCode() Code {
	return err.Code
}
