// Package prompt defines the question-asking interface the setup wizard is
// written against, plus the plain line-based implementation used when no
// interactive terminal is available.
package prompt

import (
	"errors"

	"github.com/jodagreyhame/ralph-wiggum-docker/internal/catalog"
)

// ErrAborted is returned when the user cancels a prompt. Callers must stop
// immediately and must not persist anything.
var ErrAborted = errors.New("prompt aborted")

// Prompter asks the user one question at a time.
type Prompter interface {
	// Select returns the label of the chosen option. def may be a value or a
	// label; when it matches nothing the first choice is the default.
	Select(question string, choices []catalog.Choice, def string) (string, error)
	// Text returns free-form input. def is offered as the answer; the plain
	// prompter returns it for an empty line, the interactive one pre-fills it
	// so it can be edited or cleared.
	Text(question, def string) (string, error)
	// Password reads a secret without echoing it.
	Password(question string) (string, error)
	// Confirm returns a yes/no answer, or def when the answer is empty.
	Confirm(question string, def bool) (bool, error)
}

// DefaultIndex returns the position of def in choices, matched by value first
// and then by label. It returns 0 when nothing matches.
func DefaultIndex(choices []catalog.Choice, def string) int {
	for i, c := range choices {
		if c.Value == def {
			return i
		}
	}
	for i, c := range choices {
		if c.Label == def {
			return i
		}
	}
	return 0
}
