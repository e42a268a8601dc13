package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) []tea.Msg {
	var msgs []tea.Msg
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func send(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var r tea.Model
		r, cmd = m.Update(msg)
		m = r.(Model)
	}
	return m, cmd
}

func TestTyping(t *testing.T) {
	cases := []struct {
		name string
		msgs []tea.Msg
		expr string
		res  string
		err  string
	}{
		{"digits", runes("12+3"), "12+3", "", ""},
		{"unicode", runes("6÷4"), "6/4", "", ""},
		{"evaluate", append(runes("0.1+0.2"), tea.KeyMsg{Type: tea.KeyEnter}), "0.1+0.2", "0.3", ""},
		{"equals", runes("2*(3+4)="), "2*(3+4)", "14", ""},
		{"div-zero", runes("1/0="), "1/0", "", "Error: division by zero"},
		{"backspace", append(runes("123"), tea.KeyMsg{Type: tea.KeyBackspace}), "12", "", ""},
		{"clear", append(runes("123="), tea.KeyMsg{Type: tea.KeyEsc}), "", "", ""},
		{"undo", append(runes("12"), tea.KeyMsg{Type: tea.KeyCtrlZ}), "1", "", ""},
		{"redo", append(runes("12"), tea.KeyMsg{Type: tea.KeyCtrlZ}, tea.KeyMsg{Type: tea.KeyCtrlY}), "12", "", ""},
		{"ignored", runes("1a%"), "1", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, _ := send(New(20), c.msgs...)
			s := m.State()
			if s.Expression != c.expr || s.Result != c.res || s.Error != c.err {
				t.Errorf("want %q = %q / %q, got %q = %q / %q", c.expr, c.res, c.err, s.Expression, s.Result, s.Error)
			}
		})
	}
}

func TestQuit(t *testing.T) {
	for _, msg := range []tea.Msg{tea.KeyMsg{Type: tea.KeyCtrlC}, runes("q")[0]} {
		_, cmd := send(New(20), msg)
		if cmd == nil {
			t.Fatalf("%v gave no command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v does not quit", msg)
		}
	}
}

func TestView(t *testing.T) {
	m, _ := send(New(20), runes("1000*1000=")...)
	v := m.View()
	if !strings.Contains(v, "1000*1000") {
		t.Errorf("view lacks expression:\n%s", v)
	}
	if !strings.Contains(v, "= 1,000,000") {
		t.Errorf("view lacks grouped result:\n%s", v)
	}

	m, _ = send(m, runes("?")...)
	if !m.help.ShowAll {
		t.Error("? did not expand help")
	}
	if v := m.View(); !strings.Contains(v, "redo") {
		t.Errorf("full help lacks redo:\n%s", v)
	}

	m, _ = send(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.width != 76 {
		t.Errorf("width %d after resize", m.width)
	}
}
