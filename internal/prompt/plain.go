package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/term"

	"github.com/jodagreyhame/ralph-wiggum-docker/internal/catalog"
)

// Plain is a line-based Prompter. Choices are numbered and picked by number.
type Plain struct {
	in   *bufio.Reader
	out  io.Writer
	file *os.File // non-nil when input is a terminal, for no-echo reads
}

// NewPlain returns a Plain prompter reading from in and writing to out.
func NewPlain(in io.Reader, out io.Writer) *Plain {
	p := &Plain{in: bufio.NewReader(in), out: out}
	if f, ok := in.(*os.File); ok && term.IsTerminal(f.Fd()) {
		p.file = f
	}
	return p
}

// Select prints a numbered list and reads a number. Anything that is not a
// number in range is rejected and asked again. An empty answer takes the
// default shown in brackets.
func (p *Plain) Select(question string, choices []catalog.Choice, def string) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("select %q: no choices", question)
	}
	defIdx := DefaultIndex(choices, def)

	fmt.Fprintf(p.out, "\n%s\n", question)
	for i, c := range choices {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, c.Label)
	}
	for {
		fmt.Fprintf(p.out, "Enter number [%d]: ", defIdx+1)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			return choices[defIdx].Label, nil
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 && n <= len(choices) {
			return choices[n-1].Label, nil
		}
		fmt.Fprintln(p.out, "Invalid choice, try again.")
	}
}

// Text reads one line; an empty answer yields def.
func (p *Plain) Text(question, def string) (string, error) {
	fmt.Fprintf(p.out, "%s [%s]: ", question, def)
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Password reads one line with terminal echo disabled. When input is not a
// terminal the line is read as-is.
func (p *Plain) Password(question string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", question)
	if p.file == nil {
		return p.readLine()
	}
	b, err := term.ReadPassword(p.file.Fd())
	fmt.Fprintln(p.out)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// Confirm accepts y or yes (any case) as true and any other non-empty answer
// as false.
func (p *Plain) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(p.out, "%s [%s]: ", question, hint)
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// readLine returns the next trimmed line. Closed input counts as a cancel.
func (p *Plain) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				fmt.Fprintln(p.out)
				return "", ErrAborted
			}
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
