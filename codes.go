package exactcalc

import "errors"

// Code is a machine-checkable error discriminant.
type Code string

const (
	// CodeUnexpectedChar is a character that cannot start any token.
	CodeUnexpectedChar Code = "UNEXPECTED_CHAR"
	// CodeMalformedNumber is a numeral with no digits, i.e. a lone ".".
	CodeMalformedNumber Code = "MALFORMED_NUMBER"

	// CodeEmptyExpression is an input with no tokens.
	CodeEmptyExpression Code = "EMPTY_EXPRESSION"
	// CodeMismatchedParens is a parenthesis without a partner.
	CodeMismatchedParens Code = "MISMATCHED_PARENS"
	// CodeMalformedExpression is a missing or extra operand.
	CodeMalformedExpression Code = "MALFORMED_EXPRESSION"
	// CodeUnknownToken is a token that Tokenize never produces.
	CodeUnknownToken Code = "UNKNOWN_TOKEN"

	// CodeDivByZero is division by zero.
	CodeDivByZero Code = "DIV_BY_ZERO"
	// CodeInvalidNumber is a number literal node whose text is not a numeral.
	CodeInvalidNumber Code = "INVALID_NUMBER"
	// CodeUnsupportedOperator is an operator node with an unknown operator.
	CodeUnsupportedOperator Code = "UNSUPPORTED_OPERATOR"
	// CodeUnknownNode is a node of unknown kind, or a missing node.
	CodeUnknownNode Code = "UNKNOWN_NODE"
)

// Coder is an error with a Code. Every error returned by Tokenize, Parse, and
// Eval implements Coder.
type Coder interface {
	error
	ErrCode() Code
}

// CodeOf returns the Code of the first error in err's chain that has one, or
// the empty string if there is none.
func CodeOf(err error) Code {
	var c Coder
	if errors.As(err, &c) {
		return c.ErrCode()
	}
	return ""
}
