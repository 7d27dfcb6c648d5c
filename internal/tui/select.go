package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jodagreyhame/ralph-wiggum-docker/internal/catalog"
	"github.com/jodagreyhame/ralph-wiggum-docker/internal/prompt"
)

type selectModel struct {
	question string
	choices  []catalog.Choice
	cursor   int
	chosen   bool
	aborted  bool
}

func newSelectModel(question string, choices []catalog.Choice, def string) selectModel {
	return selectModel{
		question: question,
		choices:  choices,
		cursor:   prompt.DefaultIndex(choices, def),
	}
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "enter":
			m.chosen = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.chosen || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(qmarkStyle.Render("?") + " " + questionStyle.Render(m.question) + "\n")
	b.WriteString(mutedStyle.Render("  Use ↑/↓ or j/k to navigate, Enter to select, Esc to cancel") + "\n")

	for i, c := range m.choices {
		cursor := "  "
		label := c.Label
		if i == m.cursor {
			cursor = pointerStyle.Render("» ")
			label = pointerStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf("  %s%s\n", cursor, label))
	}
	return b.String()
}

// Label returns the label under the cursor.
func (m selectModel) Label() string {
	if len(m.choices) == 0 {
		return ""
	}
	return m.choices[m.cursor].Label
}
