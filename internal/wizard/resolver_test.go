package wizard

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jodagreyhame/ralph-wiggum-docker/internal/console"
	"github.com/jodagreyhame/ralph-wiggum-docker/internal/project"
	"github.com/jodagreyhame/ralph-wiggum-docker/internal/prompt"
)

func quiet() *console.Printer { return console.New(io.Discard, false) }

func resolve(t *testing.T, answers map[string]string, prior *project.Config) (project.Config, *Resolver, *scripted) {
	t.Helper()
	s := script(answers)
	r := NewResolver(s, prior, quiet())
	cfg, err := r.Resolve()
	require.NoError(t, err)
	return cfg, r, s
}

func TestResolve_DefaultsOnly(t *testing.T) {
	cfg, r, _ := resolve(t, nil, nil)

	assert.Equal(t, project.Default(""), cfg)
	assert.Equal(t, []State{StateBuilder, StateReviewer, StateLoop, StateSummary}, r.Visited())
}

func TestResolve_AllSections(t *testing.T) {
	cfg, r, _ := resolve(t, map[string]string{
		RoleQuestion("Builder", "backend"):   "codex",
		RoleQuestion("Builder", "model"):     "gpt-5-codex",
		QuestionEnableReviewer:               "y",
		RoleQuestion("Reviewer", "backend"):  "gemini",
		QuestionEnableArchitect:              "y",
		RoleQuestion("Architect", "backend"): "claude",
		QuestionEnableEscalation:             "y",
		QuestionMaxFailures:                  "5",
		QuestionMaxIterations:                "40",
		QuestionCompletion:                   "n",
	}, nil)

	assert.Equal(t, []State{StateBuilder, StateReviewer, StateArchitect, StateEscalation, StateLoop, StateSummary}, r.Visited())

	assert.Equal(t, "codex", cfg.Builder.Backend)
	assert.Equal(t, "openai-oauth", cfg.Builder.AuthMode)
	assert.Equal(t, "gpt-5-codex", cfg.Builder.ModelName())
	assert.Equal(t, project.SessionFresh, cfg.Builder.SessionMode)

	assert.True(t, cfg.Reviewer.Enabled)
	assert.Equal(t, "gemini", cfg.Reviewer.Backend)
	assert.Equal(t, "gemini-oauth", cfg.Reviewer.AuthMode)
	assert.Nil(t, cfg.Reviewer.Model)
	assert.Equal(t, project.SessionFresh, cfg.Reviewer.SessionMode)

	assert.True(t, cfg.Architect.Enabled)
	assert.Equal(t, "claude", cfg.Architect.Backend)
	assert.Equal(t, "anthropic-oauth", cfg.Architect.AuthMode)
	assert.Equal(t, project.SessionResume, cfg.Architect.SessionMode)

	assert.Equal(t, project.Escalation{Enabled: true, MaxBuilderFailures: 5}, cfg.Escalation)
	assert.Equal(t, 40, cfg.MaxIterations)
	assert.False(t, cfg.CompletionEnabled)
}

func TestResolve_ReviewerSameAsBuilder(t *testing.T) {
	cfg, _, _ := resolve(t, map[string]string{
		RoleQuestion("Builder", "backend"): "opencode",
		QuestionEnableReviewer:             "y",
	}, nil)

	assert.Equal(t, "opencode", cfg.Reviewer.Backend)
	assert.Equal(t, "opencode-oauth", cfg.Reviewer.AuthMode)
}

func TestResolve_ReviewerDisabledKeepsPrior(t *testing.T) {
	prior := project.Default("demo")
	prior.Reviewer = project.Tier{Enabled: true, Role: project.Role{
		Backend: "codex", AuthMode: "openai-api", Model: project.Optional("o3"),
		SessionMode: project.SessionFresh, APIKey: "sk-old",
	}}
	prior.Architect.Enabled = true
	prior.Architect.Model = project.Optional("gemini-2.5-pro")
	prior.Escalation = project.Escalation{Enabled: true, MaxBuilderFailures: 7}

	cfg, r, s := resolve(t, map[string]string{QuestionEnableReviewer: "n"}, &prior)

	assert.Equal(t, []State{StateBuilder, StateReviewer, StateLoop, StateSummary}, r.Visited())
	assert.False(t, s.wasAsked(QuestionEnableArchitect))
	assert.False(t, s.wasAsked(QuestionEnableEscalation))

	wantReviewer := prior.Reviewer
	wantReviewer.Enabled = false
	assert.Equal(t, wantReviewer, cfg.Reviewer)
	assert.Equal(t, prior.Architect, cfg.Architect)
	assert.Equal(t, prior.Escalation, cfg.Escalation)
}

func TestResolve_APIKeyOnlyForKeyAuth(t *testing.T) {
	cfg, _, s := resolve(t, nil, nil)
	assert.False(t, s.wasAsked(RoleQuestion("Builder", "api_key")))
	assert.Empty(t, cfg.Builder.APIKey)

	cfg, _, s = resolve(t, map[string]string{
		RoleQuestion("Builder", "auth"):    "anthropic-api",
		RoleQuestion("Builder", "api_key"): "sk-new",
	}, nil)
	assert.True(t, s.wasAsked(RoleQuestion("Builder", "api_key")))
	assert.Equal(t, "anthropic-api", cfg.Builder.AuthMode)
	assert.Equal(t, "sk-new", cfg.Builder.APIKey)
	assert.Empty(t, cfg.Builder.APIBaseURL)
}

func TestResolve_APIKeyRetention(t *testing.T) {
	prior := project.Default("demo")
	prior.Builder.AuthMode = "anthropic-api"
	prior.Builder.APIKey = "sk-kept"

	cfg, _, _ := resolve(t, nil, &prior)
	assert.Equal(t, "sk-kept", cfg.Builder.APIKey)

	cfg, _, _ = resolve(t, map[string]string{
		RoleQuestion("Builder", "backend"): "gemini",
		RoleQuestion("Builder", "auth"):    "gemini-api",
	}, &prior)
	assert.Empty(t, cfg.Builder.APIKey, "key for another auth mode must not carry over")

	cfg, _, _ = resolve(t, map[string]string{
		RoleQuestion("Builder", "auth"): "anthropic-oauth",
	}, &prior)
	assert.Empty(t, cfg.Builder.APIKey)
}

func TestResolve_ProxyBaseURL(t *testing.T) {
	cfg, _, s := resolve(t, map[string]string{
		RoleQuestion("Builder", "backend"): "zai",
	}, nil)
	assert.True(t, s.wasAsked(RoleQuestion("Builder", "api_base_url")))
	assert.Equal(t, "glm", cfg.Builder.AuthMode)
	assert.Equal(t, "https://api.z.ai/api/anthropic", cfg.Builder.APIBaseURL)
	assert.Empty(t, cfg.Builder.APIKey)

	prior := cfg
	cfg, _, _ = resolve(t, nil, &prior)
	assert.Equal(t, prior.Builder, cfg.Builder)
}

func TestResolve_NumericFallbacks(t *testing.T) {
	cases := []struct {
		name         string
		iterations   string
		failures     string
		wantIter     int
		wantFailures int
	}{
		{"not a number", "abc", "abc", 0, 3},
		{"negative", "-4", "-1", 0, 3},
		{"zero failures", "0", "0", 0, 3},
		{"padded", " 12 ", " 2 ", 12, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, _, _ := resolve(t, map[string]string{
				QuestionEnableReviewer:   "y",
				QuestionEnableEscalation: "y",
				QuestionMaxFailures:      tc.failures,
				QuestionMaxIterations:    tc.iterations,
			}, nil)
			assert.Equal(t, tc.wantIter, cfg.MaxIterations)
			assert.Equal(t, tc.wantFailures, cfg.Escalation.MaxBuilderFailures)
		})
	}
}

func TestResolve_UnknownPriorBackend(t *testing.T) {
	prior := project.Default("demo")
	prior.Builder.Backend = "llama"
	prior.Builder.AuthMode = "llama-oauth"

	cfg, _, _ := resolve(t, nil, &prior)
	assert.Equal(t, "claude", cfg.Builder.Backend)
	assert.Equal(t, "anthropic-oauth", cfg.Builder.AuthMode)
}

func TestResolve_AbortStops(t *testing.T) {
	s := script(map[string]string{QuestionEnableReviewer: "y"})
	s.abortOn = RoleQuestion("Reviewer", "model")
	r := NewResolver(s, nil, quiet())

	_, err := r.Resolve()
	assert.ErrorIs(t, err, prompt.ErrAborted)
	assert.False(t, s.wasAsked(QuestionEnableArchitect))
	assert.Equal(t, []State{StateBuilder, StateReviewer}, r.Visited())
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 7, parseCount("7", 0, 1))
	assert.Equal(t, 1, parseCount("", 0, 1))
	assert.Equal(t, 1, parseCount("1.5", 0, 1))
	assert.Equal(t, 0, parseCount("0", 0, 9))
	assert.Equal(t, 9, parseCount("0", 1, 9))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "escalation", StateEscalation.String())
	assert.Equal(t, "state(42)", State(42).String())
}
