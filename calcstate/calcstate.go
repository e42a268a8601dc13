// Package calcstate holds the input state of an interactive calculator and
// the transitions between states.
//
// A State is a value. Reduce returns a new State for each Action without
// modifying the old one, so a front end may keep any State it has seen.
package calcstate

import (
	"github.com/zephyrtronium/exactcalc"
)

// Snapshot is the part of a State which undo and redo restore.
type Snapshot struct {
	Expression string
	Result     string
	Error      string
	HasResult  bool
}

// State is the state of a calculator.
type State struct {
	// Expression is the text entered so far.
	Expression string
	// Result is the value of the last evaluation, if HasResult.
	Result    string
	HasResult bool
	// Error is the message of the last failed evaluation, or empty.
	Error string
	// Precision is the number of digits after the decimal point to which
	// quotients are rounded. It is not part of the undo history.
	Precision int

	past   []Snapshot
	future []Snapshot
}

// New returns an empty State evaluating with the given precision.
func New(prec int) State {
	return State{Precision: prec}
}

func (s State) snapshot() Snapshot {
	return Snapshot{Expression: s.Expression, Result: s.Result, Error: s.Error, HasResult: s.HasResult}
}

func (s State) restore(snap Snapshot) State {
	s.Expression = snap.Expression
	s.Result = snap.Result
	s.Error = snap.Error
	s.HasResult = snap.HasResult
	return s
}

// CanUndo reports whether there is a state to return to.
func (s State) CanUndo() bool {
	return len(s.past) > 0
}

// CanRedo reports whether there is an undone state to return to.
func (s State) CanRedo() bool {
	return len(s.future) > 0
}

// record returns next with s pushed onto its history and its redo history
// cleared.
func record(s, next State) State {
	past := make([]Snapshot, len(s.past), len(s.past)+1)
	copy(past, s.past)
	next.past = append(past, s.snapshot())
	next.future = nil
	return next
}

// edit returns s with a new expression and no result or error, recorded.
func edit(s State, expr string) State {
	next := s
	next.Expression = expr
	next.Result = ""
	next.HasResult = false
	next.Error = ""
	return record(s, next)
}

// Reduce applies an action to a state. Actions which do not apply, such as
// a backspace on an empty expression or a second dot in a number, return s
// unchanged and are not recorded.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case ClearAll:
		return record(s, State{Precision: s.Precision})

	case Backspace:
		if s.Expression == "" {
			return s
		}
		r := []rune(s.Expression)
		return edit(s, string(r[:len(r)-1]))

	case InputDigit:
		if a < '0' || a > '9' {
			return s
		}
		return edit(s, s.Expression+string(rune(a)))

	case InputDot:
		if !CanAppendDot(s.Expression) {
			return s
		}
		prefix := ""
		switch last := LastNonSpace(s.Expression); {
		case last == 0, isOperator(last), last == '(':
			prefix = "0"
		}
		return edit(s, s.Expression+prefix+".")

	case InputParen:
		if a != '(' && a != ')' {
			return s
		}
		return edit(s, s.Expression+string(rune(a)))

	case InputOperator:
		op := exactcalc.NormalizeOperator(rune(a))
		if !isOperator(op) {
			return s
		}
		trimmed := trimRightSpace(s.Expression)
		last := LastNonSpace(trimmed)
		switch {
		case last == 0:
			// Only negation may start an expression.
			if op != '-' {
				return s
			}
			return edit(s, "-")
		case isOperator(last):
			r := []rune(trimmed)
			return edit(s, string(r[:len(r)-1])+string(op))
		default:
			return edit(s, trimmed+string(op))
		}

	case Evaluate:
		expr := Sanitize(s.Expression)
		if expr == "" {
			return s
		}
		next := s
		v, err := exactcalc.EvalString(expr, exactcalc.Precision(s.Precision))
		if err != nil {
			next.Result = ""
			next.HasResult = false
			next.Error = ErrorMessage(err)
		} else {
			next.Result = v.String()
			next.HasResult = true
			next.Error = ""
		}
		return record(s, next)

	case Undo:
		if len(s.past) == 0 {
			return s
		}
		prev := s.past[len(s.past)-1]
		next := s.restore(prev)
		next.past = s.past[:len(s.past)-1:len(s.past)-1]
		next.future = append([]Snapshot{s.snapshot()}, s.future...)
		return next

	case Redo:
		if len(s.future) == 0 {
			return s
		}
		next := s.restore(s.future[0])
		past := make([]Snapshot, len(s.past), len(s.past)+1)
		copy(past, s.past)
		next.past = append(past, s.snapshot())
		next.future = s.future[1:]
		return next

	default:
		return s
	}
}

// ErrorMessage gives the text shown for a failed evaluation.
func ErrorMessage(err error) string {
	if exactcalc.CodeOf(err) == exactcalc.CodeDivByZero {
		return "Error: division by zero"
	}
	return "Error: " + err.Error()
}
