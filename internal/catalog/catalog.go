// Package catalog holds the static option tables offered by the setup wizard:
// agent backends and the authentication modes valid for each of them.
//
// Every option is a Choice. The Value is what gets persisted; the Label is
// what the user sees and only ever maps back to its Value.
package catalog

import "strings"

// Choice is a selectable option.
type Choice struct {
	Label string
	Value string
}

const (
	// SameAsBuilder is the synthetic reviewer backend meaning "reuse the
	// builder's backend".
	SameAsBuilder      = "(same)"
	SameAsBuilderLabel = "(same as builder)"

	// KeyAuthSuffix marks auth modes that need an API key.
	KeyAuthSuffix = "-api"

	// ProxyAuthMode is the only auth mode that takes a base URL.
	ProxyAuthMode       = "glm"
	DefaultProxyBaseURL = "https://api.z.ai/api/anthropic"

	DefaultBackend          = "claude"
	DefaultArchitectBackend = "gemini"
)

var backends = []Choice{
	{Label: "Claude (Anthropic)", Value: "claude"},
	{Label: "Gemini (Google)", Value: "gemini"},
	{Label: "Codex (OpenAI)", Value: "codex"},
	{Label: "OpenCode", Value: "opencode"},
	{Label: "Z.AI (GLM proxy for Claude)", Value: "zai"},
}

// Gemini first for its 1M token context.
var architectBackends = []Choice{
	{Label: "Gemini (Google) - recommended for 1M context", Value: "gemini"},
	{Label: "Claude (Anthropic)", Value: "claude"},
	{Label: "Codex (OpenAI)", Value: "codex"},
}

var authModes = map[string][]Choice{
	"claude": {
		{Label: "Anthropic OAuth (use host ~/.claude)", Value: "anthropic-oauth"},
		{Label: "Anthropic API Key", Value: "anthropic-api"},
	},
	"gemini": {
		{Label: "Gemini OAuth (use host ~/.gemini)", Value: "gemini-oauth"},
		{Label: "Gemini API Key", Value: "gemini-api"},
	},
	"codex": {
		{Label: "OpenAI OAuth (use host ~/.codex)", Value: "openai-oauth"},
		{Label: "OpenAI API Key", Value: "openai-api"},
	},
	"opencode": {
		{Label: "OpenCode OAuth (use host credentials)", Value: "opencode-oauth"},
		{Label: "OpenCode API Key", Value: "opencode-api"},
	},
	"zai": {
		{Label: "GLM (z.ai proxy)", Value: "glm"},
	},
}

// Backends returns the backends offered to the builder.
func Backends() []Choice {
	return clone(backends)
}

// ReviewerBackends returns Backends prefixed with the "same as builder" choice.
func ReviewerBackends() []Choice {
	out := make([]Choice, 0, len(backends)+1)
	out = append(out, Choice{Label: SameAsBuilderLabel, Value: SameAsBuilder})
	return append(out, backends...)
}

// ArchitectBackends returns the backends offered to the architect.
func ArchitectBackends() []Choice {
	return clone(architectBackends)
}

// AuthModes returns the auth modes valid for backend, in display order.
// Unknown backends get the default backend's modes.
func AuthModes(backend string) []Choice {
	if modes, ok := authModes[backend]; ok {
		return clone(modes)
	}
	return clone(authModes[DefaultBackend])
}

// KnownBackend reports whether backend has an entry in the catalog.
func KnownBackend(backend string) bool {
	_, ok := authModes[backend]
	return ok
}

// ValidAuthMode reports whether mode is listed for backend.
func ValidAuthMode(backend, mode string) bool {
	for _, c := range authModes[backend] {
		if c.Value == mode {
			return true
		}
	}
	return false
}

// ValueOf maps a label back to its value. A label with no match is returned
// unchanged, which lets hand-typed values through.
func ValueOf(choices []Choice, label string) string {
	for _, c := range choices {
		if c.Label == label {
			return c.Value
		}
	}
	return label
}

// LabelOf maps a value to its label, or returns "" when no choice has it.
func LabelOf(choices []Choice, value string) string {
	for _, c := range choices {
		if c.Value == value {
			return c.Label
		}
	}
	return ""
}

// BackendValue resolves a label picked from Backends or ReviewerBackends.
func BackendValue(label string) string {
	return ValueOf(ReviewerBackends(), label)
}

// AuthValue resolves a label picked from AuthModes(backend).
func AuthValue(label, backend string) string {
	return ValueOf(AuthModes(backend), label)
}

// IsSameAsBuilder reports whether v names the synthetic reviewer backend,
// by value or by label.
func IsSameAsBuilder(v string) bool {
	return v == SameAsBuilder || v == SameAsBuilderLabel
}

// IsKeyAuth reports whether mode authenticates with an API key.
func IsKeyAuth(mode string) bool {
	return strings.HasSuffix(mode, KeyAuthSuffix)
}

// IsProxyAuth reports whether mode goes through the GLM proxy.
func IsProxyAuth(mode string) bool {
	return mode == ProxyAuthMode
}

func clone(in []Choice) []Choice {
	out := make([]Choice, len(in))
	copy(out, in)
	return out
}
