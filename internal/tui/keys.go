package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Digit    key.Binding
	Dot      key.Binding
	Paren    key.Binding
	Operator key.Binding
	Evaluate key.Binding
	Delete   key.Binding
	Clear    key.Binding
	Undo     key.Binding
	Redo     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Digit: key.NewBinding(
		key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("0-9", "digit"),
	),
	Dot: key.NewBinding(
		key.WithKeys("."),
		key.WithHelp(".", "point"),
	),
	Paren: key.NewBinding(
		key.WithKeys("(", ")"),
		key.WithHelp("( )", "group"),
	),
	Operator: key.NewBinding(
		key.WithKeys("+", "-", "*", "/", "×", "÷", "−"),
		key.WithHelp("+ - * /", "operator"),
	),
	Evaluate: key.NewBinding(
		key.WithKeys("enter", "="),
		key.WithHelp("enter", "evaluate"),
	),
	Delete: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("⌫", "delete"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	Undo: key.NewBinding(
		key.WithKeys("ctrl+z"),
		key.WithHelp("ctrl+z", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "redo"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Evaluate, k.Clear, k.Undo, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digit, k.Dot, k.Paren, k.Operator},
		{k.Evaluate, k.Delete, k.Clear},
		{k.Undo, k.Redo, k.Help, k.Quit},
	}
}
