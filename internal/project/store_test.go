package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal_KeyOrderAndNulls(t *testing.T) {
	data, err := Marshal(Default("demo"))
	require.NoError(t, err)

	want := `{
  "name": "demo",
  "description": "",
  "version": "0.1.0",
  "prompts": {
    "dir": ".project/prompts",
    "goal": "GOAL.md",
    "builder": "BUILDER.md",
    "reviewer": "REVIEWER.md",
    "architect": "ARCHITECT.md"
  },
  "builder": {
    "backend": "claude",
    "auth_mode": "anthropic-oauth",
    "model": null,
    "session_mode": "fresh"
  },
  "reviewer": {
    "enabled": false,
    "backend": "claude",
    "auth_mode": "anthropic-oauth",
    "model": null,
    "session_mode": "fresh"
  },
  "architect": {
    "enabled": false,
    "backend": "gemini",
    "auth_mode": "gemini-oauth",
    "model": null,
    "session_mode": "resume"
  },
  "escalation": {
    "enabled": false,
    "max_builder_failures": 3
  },
  "max_iterations": 0,
  "completion_enabled": true,
  "knowledge_dir": ".project"
}
`
	assert.Equal(t, want, string(data))
}

func TestMarshal_OptionalRoleFields(t *testing.T) {
	cfg := Default("demo")
	cfg.Builder.Model = Optional("opus")
	cfg.Builder.APIKey = "sk-<key>&"
	cfg.Builder.APIBaseURL = "https://example.test"

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"model": "opus"`)
	assert.Contains(t, string(data), `"api_key": "sk-<key>&"`)
	assert.Contains(t, string(data), `"api_base_url": "https://example.test"`)
}

func TestDecode_MissingKeysKeepBase(t *testing.T) {
	cfg, err := Decode([]byte(`{"name":"x","builder":{"backend":"gemini","model":"pro"},"reviewer":{"enabled":true}}`), Default(""))
	require.NoError(t, err)

	assert.Equal(t, "x", cfg.Name)
	assert.Equal(t, "gemini", cfg.Builder.Backend)
	assert.Equal(t, "anthropic-oauth", cfg.Builder.AuthMode)
	assert.Equal(t, "pro", cfg.Builder.ModelName())
	assert.True(t, cfg.Reviewer.Enabled)
	assert.Equal(t, "claude", cfg.Reviewer.Backend)
	assert.Equal(t, DefaultPrompts(), cfg.Prompts)
	assert.Equal(t, 3, cfg.Escalation.MaxBuilderFailures)
	assert.True(t, cfg.CompletionEnabled)
}

func TestDecode_ExplicitNullModel(t *testing.T) {
	base := Default("")
	base.Builder.Model = Optional("keep")
	cfg, err := Decode([]byte(`{"builder":{"model":null}}`), base)
	require.NoError(t, err)
	assert.Nil(t, cfg.Builder.Model)
}

func TestDecode_Malformed(t *testing.T) {
	for _, in := range []string{`{not json`, `{"max_iterations":"abc"}`, `[1,2]`} {
		_, err := Decode([]byte(in), Default(""))
		assert.Error(t, err, in)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "config.json"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := Default("round")
	cfg.Reviewer.Enabled = true
	cfg.Reviewer.Model = Optional("gpt-5")
	cfg.MaxIterations = 12

	require.NoError(t, Save(path, cfg))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestSave_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, Save(path, Default("same")))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, Save(path, cfg))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestOptional(t *testing.T) {
	assert.Nil(t, Optional(""))
	assert.Nil(t, Optional("   "))
	require.NotNil(t, Optional(" opus "))
	assert.Equal(t, "opus", *Optional(" opus "))
}
