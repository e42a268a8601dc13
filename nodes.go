package exactcalc

import (
	"strconv"
	"strings"
)

// Node is a node in the abstract syntax tree of an expression. Parse builds
// trees which are never modified afterward, and each node is the only owner
// of its children.
type Node struct {
	Kind NodeKind
	// Text is the numeral of a NumberLiteral.
	Text string
	// Op is the operator of a UnaryExpr or BinaryExpr.
	Op string
	// Left is the operand of a UnaryExpr or the left operand of a
	// BinaryExpr. Right is the right operand of a BinaryExpr.
	Left, Right *Node
}

// NodeKind is the kind of a node.
type NodeKind int8

const (
	NodeNone NodeKind = iota

	NumberLiteral // push Text
	UnaryExpr     // evaluate Left, then negate
	BinaryExpr    // evaluate Left, then Right, then apply Op
)

func (k NodeKind) String() string {
	switch k {
	case NodeNone:
		return "None"
	case NumberLiteral:
		return "NumberLiteral"
	case UnaryExpr:
		return "UnaryExpr"
	case BinaryExpr:
		return "BinaryExpr"
	default:
		return "NodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// String creates a string representation of the tree, with alternating round
// and square brackets grouping each term.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	if n == nil {
		b.WriteString("<nil>")
		return
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.Kind {
	case NumberLiteral:
		b.WriteString(n.Text)
	case UnaryExpr:
		b.WriteString(n.Op)
		n.Left.fmt(b, !square)
	case BinaryExpr:
		n.Left.fmt(b, !square)
		b.WriteString(" " + n.Op + " ")
		n.Right.fmt(b, !square)
	default:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.Left != nil {
			n.Left.fmt(b, !square)
		}
		b.WriteByte('#')
		if n.Right != nil {
			n.Right.fmt(b, !square)
		}
		b.WriteByte('$')
	}
}
