package wizard

import (
	"fmt"
	"strings"

	"github.com/jodagreyhame/ralph-wiggum-docker/internal/catalog"
	"github.com/jodagreyhame/ralph-wiggum-docker/internal/prompt"
)

// scripted answers questions from a map keyed by question text. Unscripted
// questions take the offered default, as a user pressing Enter would.
type scripted struct {
	answers map[string]string
	abortOn string
	asked   []string
}

func script(answers map[string]string) *scripted {
	if answers == nil {
		answers = map[string]string{}
	}
	return &scripted{answers: answers}
}

func (s *scripted) ask(q string) (string, bool, error) {
	s.asked = append(s.asked, q)
	if q == s.abortOn {
		return "", false, prompt.ErrAborted
	}
	a, ok := s.answers[q]
	return a, ok, nil
}

func (s *scripted) Select(q string, choices []catalog.Choice, def string) (string, error) {
	a, ok, err := s.ask(q)
	if err != nil {
		return "", err
	}
	if !ok {
		return choices[prompt.DefaultIndex(choices, def)].Label, nil
	}
	for _, c := range choices {
		if c.Value == a || c.Label == a {
			return c.Label, nil
		}
	}
	return "", fmt.Errorf("answer %q for %q is not a choice", a, q)
}

func (s *scripted) Text(q, def string) (string, error) {
	a, ok, err := s.ask(q)
	if err != nil {
		return "", err
	}
	if !ok || strings.TrimSpace(a) == "" {
		return def, nil
	}
	return strings.TrimSpace(a), nil
}

func (s *scripted) Password(q string) (string, error) {
	a, _, err := s.ask(q)
	return a, err
}

func (s *scripted) Confirm(q string, def bool) (bool, error) {
	a, ok, err := s.ask(q)
	if err != nil || !ok {
		return def, err
	}
	return a == "y", nil
}

func (s *scripted) wasAsked(q string) bool {
	for _, a := range s.asked {
		if a == q {
			return true
		}
	}
	return false
}
