// Package tui is an interactive terminal calculator.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/exactcalc/calcstate"
	"github.com/zephyrtronium/exactcalc/format"
)

// Model is the bubbletea model of the calculator.
type Model struct {
	state calcstate.State
	help  help.Model
	width int
}

// New creates a calculator which rounds quotients to prec digits after the
// decimal point.
func New(prec int) Model {
	return Model{state: calcstate.New(prec), help: help.New(), width: 40}
}

// State returns the calculator state.
func (m Model) State() calcstate.State {
	return m.state
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width-4, 20)
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if a := action(msg); a != nil {
			m.state = calcstate.Reduce(m.state, a)
		}
	}
	return m, nil
}

// action gives the calculator action for a key, or nil if there is none.
func action(msg tea.KeyMsg) calcstate.Action {
	var r rune
	if len(msg.Runes) == 1 {
		r = msg.Runes[0]
	}
	switch {
	case key.Matches(msg, keys.Digit):
		return calcstate.InputDigit(r)
	case key.Matches(msg, keys.Dot):
		return calcstate.InputDot{}
	case key.Matches(msg, keys.Paren):
		return calcstate.InputParen(r)
	case key.Matches(msg, keys.Operator):
		return calcstate.InputOperator(r)
	case key.Matches(msg, keys.Evaluate):
		return calcstate.Evaluate{}
	case key.Matches(msg, keys.Delete):
		return calcstate.Backspace{}
	case key.Matches(msg, keys.Clear):
		return calcstate.ClearAll{}
	case key.Matches(msg, keys.Undo):
		return calcstate.Undo{}
	case key.Matches(msg, keys.Redo):
		return calcstate.Redo{}
	}
	return nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("exactcalc"))
	b.WriteByte('\n')

	expr := m.state.Expression
	if expr == "" {
		expr = " "
	}
	lines := []string{expressionStyle.Render(expr)}
	switch {
	case m.state.Error != "":
		lines = append(lines, errorStyle.Render(m.state.Error))
	case m.state.HasResult:
		lines = append(lines, resultStyle.Render("= "+format.Thousands(m.state.Result)))
	default:
		lines = append(lines, " ")
	}
	b.WriteString(displayStyle.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Right, lines...)))
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render(m.help.View(keys)))
	b.WriteByte('\n')
	return b.String()
}

// Run starts the calculator and blocks until the user quits.
func Run(prec int) error {
	p := tea.NewProgram(New(prec), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
