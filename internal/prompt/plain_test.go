package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jodagreyhame/ralph-wiggum-docker/internal/catalog"
)

func newTestPlain(input string) (*Plain, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPlain(strings.NewReader(input), &out), &out
}

func TestPlainSelect_RepromptsUntilValid(t *testing.T) {
	p, out := newTestPlain("abc\n0\n9\n2\n")

	got, err := p.Select("Builder backend:", catalog.Backends(), "claude")
	require.NoError(t, err)
	assert.Equal(t, "Gemini (Google)", got)
	assert.Equal(t, 3, strings.Count(out.String(), "Invalid choice, try again."))
	assert.Contains(t, out.String(), "  1. Claude (Anthropic)")
}

func TestPlainSelect_EmptyTakesDefault(t *testing.T) {
	p, out := newTestPlain("\n")

	got, err := p.Select("Builder backend:", catalog.Backends(), "codex")
	require.NoError(t, err)
	assert.Equal(t, "Codex (OpenAI)", got)
	assert.Contains(t, out.String(), "Enter number [3]: ")
}

func TestPlainSelect_OnlyNumbersOrEmpty(t *testing.T) {
	p, out := newTestPlain("abc\n0\n\n")

	got, err := p.Select("Builder auth mode:", catalog.AuthModes("gemini"), "gemini-api")
	require.NoError(t, err)
	assert.Equal(t, "Gemini API Key", got)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid choice, try again."))
	assert.Equal(t, 3, strings.Count(out.String(), "Enter number [2]: "))
}

func TestPlainSelect_DefaultByLabel(t *testing.T) {
	p, _ := newTestPlain("\n")

	got, err := p.Select("Reviewer backend:", catalog.ReviewerBackends(), catalog.SameAsBuilderLabel)
	require.NoError(t, err)
	assert.Equal(t, catalog.SameAsBuilderLabel, got)
}

func TestPlainSelect_EOFAborts(t *testing.T) {
	p, _ := newTestPlain("x\n")

	_, err := p.Select("Builder backend:", catalog.Backends(), "")
	assert.ErrorIs(t, err, ErrAborted)
}

func TestPlainText(t *testing.T) {
	cases := []struct {
		name  string
		input string
		def   string
		want  string
	}{
		{"empty takes default", "\n", "my-project", "my-project"},
		{"whitespace takes default", "   \n", "0", "0"},
		{"answer is trimmed", "  My Project \n", "my-project", "My Project"},
		{"last line without newline", "final", "", "final"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, _ := newTestPlain(tc.input)
			got, err := p.Text("Project name", tc.def)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPlainText_ShowsDefault(t *testing.T) {
	p, out := newTestPlain("\n")
	_, err := p.Text("Max iterations", "0")
	require.NoError(t, err)
	assert.Equal(t, "Max iterations [0]: ", out.String())
}

func TestPlainConfirm(t *testing.T) {
	cases := []struct {
		input string
		def   bool
		want  bool
	}{
		{"\n", true, true},
		{"\n", false, false},
		{"y\n", false, true},
		{"YES\n", false, true},
		{"Yes\n", false, true},
		{"n\n", true, false},
		{"sure\n", true, false},
	}
	for _, tc := range cases {
		p, _ := newTestPlain(tc.input)
		got, err := p.Confirm("Save?", tc.def)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "input %q def %v", tc.input, tc.def)
	}
}

func TestPlainConfirm_Hint(t *testing.T) {
	p, out := newTestPlain("\n")
	_, _ = p.Confirm("Enable reviewer?", false)
	assert.Equal(t, "Enable reviewer? [y/N]: ", out.String())
}

func TestPlainPassword_NonTerminalReadsLine(t *testing.T) {
	p, _ := newTestPlain("sk-secret\n")
	got, err := p.Password("Enter your API key")
	require.NoError(t, err)
	assert.Equal(t, "sk-secret", got)
}

func TestPlain_EOFAbortsEveryPrompt(t *testing.T) {
	p, _ := newTestPlain("")
	_, err := p.Text("a", "b")
	assert.ErrorIs(t, err, ErrAborted)
	_, err = p.Confirm("a", true)
	assert.ErrorIs(t, err, ErrAborted)
	_, err = p.Password("a")
	assert.ErrorIs(t, err, ErrAborted)
}

func TestDefaultIndex(t *testing.T) {
	choices := catalog.Backends()
	assert.Equal(t, 1, DefaultIndex(choices, "gemini"))
	assert.Equal(t, 2, DefaultIndex(choices, "Codex (OpenAI)"))
	assert.Equal(t, 0, DefaultIndex(choices, "unknown"))
	assert.Equal(t, 0, DefaultIndex(choices, ""))
}
