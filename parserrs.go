package exactcalc

import "strconv"

// BracketError is an error indicating a parenthesis without a partner. It
// implements InputError and Coder with CodeMismatchedParens.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the unclosed opening bracket, if any.
	Left string
	// Right is the unopened closing bracket, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) ErrCode() Code {
	return CodeMismatchedParens
}

// OperandError is an error indicating an operator without enough operands,
// or operands without an operator joining them. It implements InputError and
// Coder with CodeMalformedExpression.
type OperandError struct {
	// Col is the position of the operator, or of the end of the input if
	// Operator is empty.
	Col int
	// Operator is the operator missing an operand.
	Operator string
	// Unary is whether Operator is a negation.
	Unary bool
	// Extra is whether there are operands left over, e.g. "1 2" or "(1)(2)".
	Extra bool
}

func (err *OperandError) Error() string {
	switch {
	case err.Operator != "":
		s := "binary"
		if err.Unary {
			s = "unary"
		}
		return errpos(err.Col, "missing operand for "+s+" operator "+strconv.Quote(err.Operator))
	case err.Extra:
		return errpos(err.Col, "operands with no operator between them")
	default:
		return errpos(err.Col, "no expression")
	}
}

func (err *OperandError) Pos() int {
	return err.Col
}

func (err *OperandError) ErrCode() Code {
	return CodeMalformedExpression
}

// EmptyExpressionError is an error indicating an input with no tokens.
type EmptyExpressionError struct {
	// Col is always 1.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "empty expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) ErrCode() Code {
	return CodeEmptyExpression
}

// TokenError is an error indicating a token which Tokenize would not produce,
// such as an operator token with text "^". It implements InputError and Coder
// with CodeUnknownToken.
type TokenError struct {
	// Token is the token that was not understood.
	Token Token
}

func (err *TokenError) Error() string {
	return errpos(err.Token.Pos, "unknown token "+err.Token.String())
}

func (err *TokenError) Pos() int {
	return err.Token.Pos
}

func (err *TokenError) ErrCode() Code {
	return CodeUnknownToken
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*LexError)(nil)

	_ Coder = (*BracketError)(nil)
	_ Coder = (*OperandError)(nil)
	_ Coder = (*EmptyExpressionError)(nil)
	_ Coder = (*TokenError)(nil)
	_ Coder = (*LexError)(nil)
	_ Coder = (*EvalError)(nil)
)
