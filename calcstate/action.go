package calcstate

// Action is a transition of a State. The concrete types are the actions
// defined in this package.
type Action interface {
	action()
}

type (
	// ClearAll empties the expression, result, and error.
	ClearAll struct{}
	// Backspace removes the last character of the expression.
	Backspace struct{}
	// InputDigit appends a digit '0' through '9'.
	InputDigit rune
	// InputDot appends a decimal point, preceded by 0 if no number is in
	// progress. It does nothing if the current number already has a point.
	InputDot struct{}
	// InputParen appends '(' or ')'.
	InputParen rune
	// InputOperator appends an operator, replacing a trailing operator.
	// Only '-' may start an expression. × ÷ − are accepted as * / -.
	InputOperator rune
	// Evaluate computes the expression and sets the result or error.
	Evaluate struct{}
	// Undo returns to the state before the last recorded action.
	Undo struct{}
	// Redo reapplies the last undone action.
	Redo struct{}
)

func (ClearAll) action()      {}
func (Backspace) action()     {}
func (InputDigit) action()    {}
func (InputDot) action()      {}
func (InputParen) action()    {}
func (InputOperator) action() {}
func (Evaluate) action()      {}
func (Undo) action()          {}
func (Redo) action()          {}
