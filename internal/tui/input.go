package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputModel backs both Text and Password. The default is pre-filled as
// editable text, so clearing the field submits an empty answer.
type inputModel struct {
	question string
	input    textinput.Model
	done     bool
	aborted  bool
}

func newInputModel(question, def string, secret bool) inputModel {
	ti := textinput.New()
	ti.Prompt = pointerStyle.Render("› ")
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	} else {
		ti.SetValue(def)
		ti.CursorEnd()
	}
	ti.Focus()
	return inputModel{question: question, input: ti}
}

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	return qmarkStyle.Render("?") + " " + questionStyle.Render(m.question) + "\n  " + m.input.View() + "\n"
}

// Value returns the submitted text, trimmed.
func (m inputModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

type confirmModel struct {
	question string
	value    bool
	done     bool
	aborted  bool
}

func newConfirmModel(question string, def bool) confirmModel {
	return confirmModel{question: question, value: def}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch strings.ToLower(key.String()) {
	case "y":
		m.value = true
	case "n":
		m.value = false
	case "enter":
	case "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	hint := "(y/N)"
	if m.value {
		hint = "(Y/n)"
	}
	return qmarkStyle.Render("?") + " " + questionStyle.Render(m.question) + " " + mutedStyle.Render(hint) + "\n"
}
