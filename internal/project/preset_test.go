package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPreset(t *testing.T) {
	cases := []struct {
		preset     string
		reviewer   bool
		architect  bool
		escalation bool
	}{
		{"minimal", false, false, false},
		{"standard", true, false, false},
		{"three-tier", true, true, true},
		{"full", true, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.preset, func(t *testing.T) {
			cfg, err := ApplyPreset(Default("demo"), tc.preset)
			require.NoError(t, err)
			assert.Equal(t, tc.reviewer, cfg.Reviewer.Enabled)
			assert.Equal(t, tc.architect, cfg.Architect.Enabled)
			assert.Equal(t, tc.escalation, cfg.Escalation.Enabled)
			assert.Empty(t, Validate(cfg))
		})
	}
}

func TestApplyPreset_ArchitectGoesToGemini(t *testing.T) {
	base := Default("demo")
	base.Architect.Backend = "codex"
	base.Architect.AuthMode = "openai-api"
	base.Escalation.MaxBuilderFailures = 9

	cfg, err := ApplyPreset(base, "three-tier")
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.Architect.Backend)
	assert.Equal(t, "gemini-oauth", cfg.Architect.AuthMode)
	assert.Equal(t, 9, cfg.Escalation.MaxBuilderFailures)

	cfg, err = ApplyPreset(base, "full")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Escalation.MaxBuilderFailures)
}

func TestApplyPreset_Unknown(t *testing.T) {
	base := Default("demo")
	cfg, err := ApplyPreset(base, "everything")
	assert.ErrorContains(t, err, "minimal, standard, three-tier, full")
	assert.Equal(t, base, cfg)
}
