package exactcalc

import "unicode/utf8"

// Expr = num | Neg | Add | Sub | Mul | Div | '(' Expr ')'
// Neg = '-' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr

// Parse builds the syntax tree of a token sequence as produced by Tokenize.
//
// Parsing happens in two passes. The first reorders the tokens into postfix
// order using an operator stack. The second builds the tree from the postfix
// sequence using a node stack.
func Parse(tokens []Token) (*Node, error) {
	if len(tokens) == 0 {
		return nil, &EmptyExpressionError{Col: 1}
	}
	rpn, err := postfix(tokens)
	if err != nil {
		return nil, err
	}
	last := tokens[len(tokens)-1]
	return build(rpn, last.Pos+utf8.RuneCountInString(last.Text))
}

// item is an entry in the postfix sequence or on the operator stack. op.kind
// is NodeNone for numbers and parentheses.
type item struct {
	tok Token
	op  operator
}

// postfix reorders tokens into postfix order, dropping parentheses.
func postfix(tokens []Token) ([]item, error) {
	out := make([]item, 0, len(tokens))
	var stack []item
	for i, tok := range tokens {
		switch tok.Kind {
		case TokenNumber:
			out = append(out, item{tok: tok})
		case TokenParen:
			switch tok.Text {
			case "(":
				stack = append(stack, item{tok: tok})
			case ")":
				for len(stack) > 0 && stack[len(stack)-1].tok.Kind != TokenParen {
					out = append(out, stack[len(stack)-1])
					stack = stack[:len(stack)-1]
				}
				if len(stack) == 0 {
					return nil, &BracketError{Col: tok.Pos, Right: tok.Text}
				}
				// Discard the matching open bracket.
				stack = stack[:len(stack)-1]
			default:
				return nil, &TokenError{Token: tok}
			}
		case TokenOperator:
			op := binop(tok.Text)
			if op.kind == NodeNone {
				return nil, &TokenError{Token: tok}
			}
			if unaryAt(tokens, i) {
				op = negprec
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.tok.Kind == TokenParen || op.moreBinding(top.op) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, item{tok: tok, op: op})
		default:
			return nil, &TokenError{Token: tok}
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.tok.Kind == TokenParen {
			return nil, &BracketError{Col: top.tok.Pos, Left: top.tok.Text}
		}
		out = append(out, top)
	}
	return out, nil
}

// unaryAt reports whether the token at i is a negation rather than a
// subtraction.
func unaryAt(tokens []Token, i int) bool {
	tok := tokens[i]
	if tok.Kind != TokenOperator || tok.Text != "-" {
		return false
	}
	if i == 0 {
		return true
	}
	prev := tokens[i-1]
	return prev.Kind == TokenOperator || prev.Kind == TokenParen && prev.Text == "("
}

// build creates the syntax tree from a postfix sequence. end is the column
// just past the last token.
func build(rpn []item, end int) (*Node, error) {
	var stack []*Node
	for _, it := range rpn {
		switch it.op.kind {
		case NodeNone:
			stack = append(stack, &Node{Kind: NumberLiteral, Text: it.tok.Text})
		case UnaryExpr:
			if len(stack) < 1 {
				return nil, &OperandError{Col: it.tok.Pos, Operator: it.tok.Text, Unary: true}
			}
			stack[len(stack)-1] = &Node{Kind: UnaryExpr, Op: it.op.sym, Left: stack[len(stack)-1]}
		case BinaryExpr:
			if len(stack) < 2 {
				return nil, &OperandError{Col: it.tok.Pos, Operator: it.tok.Text}
			}
			l, r := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]
			stack = append(stack, &Node{Kind: BinaryExpr, Op: it.op.sym, Left: l, Right: r})
		default:
			panic("exactcalc: invalid postfix item " + it.tok.String())
		}
	}
	if len(stack) != 1 {
		return nil, &OperandError{Col: end, Extra: len(stack) > 1}
	}
	return stack[0], nil
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// kind is the node kind to use when this operator is selected.
	kind NodeKind
	// sym is the operator of the node.
	sym string
}

// moreBinding reports whether p, appearing after than, binds its left
// operand more tightly than than binds its right one. When it does not, than
// is complete and moves to the output before p is stacked.
func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has a kind of NodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, BinaryExpr, "+"}
	case "-":
		return operator{1, false, BinaryExpr, "-"}
	case "*":
		return operator{2, false, BinaryExpr, "*"}
	case "/":
		return operator{2, false, BinaryExpr, "/"}
	default:
		return operator{}
	}
}

// negprec is negation.
var negprec = operator{3, true, UnaryExpr, "-"}
