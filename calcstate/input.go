package calcstate

import (
	"strings"
	"unicode"

	"github.com/zephyrtronium/exactcalc"
)

func isOperator(r rune) bool {
	switch r {
	case '+', '-', '*', '/':
		return true
	}
	return false
}

// LastNonSpace returns the last rune of s which is not a space, or 0 if
// there is none.
func LastNonSpace(s string) rune {
	r := []rune(s)
	for i := len(r) - 1; i >= 0; i-- {
		if r[i] != ' ' {
			return r[i]
		}
	}
	return 0
}

// CanAppendDot reports whether the number at the end of expr has no decimal
// point yet. The number ends at the nearest operator, parenthesis, or space.
func CanAppendDot(expr string) bool {
	r := []rune(expr)
	for i := len(r) - 1; i >= 0; i-- {
		switch c := r[i]; {
		case c == '.':
			return false
		case c == '(', c == ')', c == ' ', isOperator(c):
			return true
		}
	}
	return true
}

// Sanitize collapses runs of whitespace to single spaces, trims the ends,
// and replaces × ÷ − with * / -.
func Sanitize(expr string) string {
	var b strings.Builder
	b.Grow(len(expr))
	space := false
	for _, r := range strings.TrimSpace(expr) {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteRune(exactcalc.NormalizeOperator(r))
	}
	return b.String()
}

func trimRightSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
