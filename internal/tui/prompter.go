package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/jodagreyhame/ralph-wiggum-docker/internal/catalog"
	"github.com/jodagreyhame/ralph-wiggum-docker/internal/prompt"
)

// Available reports whether the interactive prompter can run: both ends of
// the session have to be terminals.
func Available(in, out *os.File) bool {
	return isTerminal(in) && isTerminal(out)
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Prompter implements prompt.Prompter with one Bubble Tea program per
// question. Answered questions stay on screen as a single line.
type Prompter struct {
	in  io.Reader
	out io.Writer
}

var _ prompt.Prompter = (*Prompter)(nil)

// NewPrompter returns a Prompter bound to the given terminal streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

func (p *Prompter) Select(question string, choices []catalog.Choice, def string) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("select %q: no choices", question)
	}
	final, err := p.run(newSelectModel(question, choices, def))
	if err != nil {
		return "", err
	}
	m := final.(selectModel)
	if m.aborted {
		return "", prompt.ErrAborted
	}
	p.echo(question, m.Label())
	return m.Label(), nil
}

func (p *Prompter) Text(question, def string) (string, error) {
	final, err := p.run(newInputModel(question, def, false))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.aborted {
		return "", prompt.ErrAborted
	}
	p.echo(question, m.Value())
	return m.Value(), nil
}

func (p *Prompter) Password(question string) (string, error) {
	final, err := p.run(newInputModel(question, "", true))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.aborted {
		return "", prompt.ErrAborted
	}
	p.echo(question, strings.Repeat("•", len(m.Value())))
	return m.Value(), nil
}

func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	final, err := p.run(newConfirmModel(question, def))
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.aborted {
		return false, prompt.ErrAborted
	}
	answer := "No"
	if m.value {
		answer = "Yes"
	}
	p.echo(question, answer)
	return m.value, nil
}

func (p *Prompter) run(m tea.Model) (tea.Model, error) {
	prog := tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out))
	final, err := prog.Run()
	if err != nil {
		return nil, runError(err)
	}
	return final, nil
}

// runError maps a program failure to prompt.ErrAborted when the program was
// killed or interrupted (SIGINT).
func runError(err error) error {
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		return prompt.ErrAborted
	}
	return fmt.Errorf("tui: %w", err)
}

func (p *Prompter) echo(question, answer string) {
	fmt.Fprintln(p.out, answered(question, answer))
}
