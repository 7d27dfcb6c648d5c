// Package project owns the on-disk side of a project: the config.json schema
// consumed by the orchestration loop, loading and saving it, validating it,
// and the per-project directory layout under the projects root.
package project

import (
	"fmt"
	"strings"
)

const (
	ConfigFile = "config.json"
	LogsDir    = "logs"

	SessionFresh  = "fresh"
	SessionResume = "resume"

	DefaultName               = "my-project"
	DefaultVersion            = "0.1.0"
	DefaultKnowledgeDir       = ".project"
	DefaultMaxBuilderFailures = 3
	DefaultMaxIterations      = 0
)

// Prompts names the prompt files the loop feeds to each role.
type Prompts struct {
	Dir       string `json:"dir" yaml:"dir"`
	Goal      string `json:"goal" yaml:"goal"`
	Builder   string `json:"builder" yaml:"builder"`
	Reviewer  string `json:"reviewer" yaml:"reviewer"`
	Architect string `json:"architect" yaml:"architect"`
}

// Role is the agent settings shared by builder, reviewer and architect.
// Model is nil when the backend's default model should be used.
type Role struct {
	Backend     string  `json:"backend" yaml:"backend"`
	AuthMode    string  `json:"auth_mode" yaml:"auth_mode"`
	Model       *string `json:"model" yaml:"model"`
	SessionMode string  `json:"session_mode" yaml:"session_mode"`
	APIKey      string  `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	APIBaseURL  string  `json:"api_base_url,omitempty" yaml:"api_base_url,omitempty"`
}

// Tier is an optional role that can be switched off.
type Tier struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Role    `yaml:",inline"`
}

// Escalation promotes roles after the builder fails repeatedly.
type Escalation struct {
	Enabled            bool `json:"enabled" yaml:"enabled"`
	MaxBuilderFailures int  `json:"max_builder_failures" yaml:"max_builder_failures"`
}

// Config is the persisted config.json. Field order is the key order on disk
// and every key is always written.
type Config struct {
	Name              string     `json:"name" yaml:"name"`
	Description       string     `json:"description" yaml:"description"`
	Version           string     `json:"version" yaml:"version"`
	Prompts           Prompts    `json:"prompts" yaml:"prompts"`
	Builder           Role       `json:"builder" yaml:"builder"`
	Reviewer          Tier       `json:"reviewer" yaml:"reviewer"`
	Architect         Tier       `json:"architect" yaml:"architect"`
	Escalation        Escalation `json:"escalation" yaml:"escalation"`
	MaxIterations     int        `json:"max_iterations" yaml:"max_iterations"`
	CompletionEnabled bool       `json:"completion_enabled" yaml:"completion_enabled"`
	KnowledgeDir      string     `json:"knowledge_dir" yaml:"knowledge_dir"`
}

// DefaultPrompts returns the stock prompt file layout.
func DefaultPrompts() Prompts {
	return Prompts{
		Dir:       ".project/prompts",
		Goal:      "GOAL.md",
		Builder:   "BUILDER.md",
		Reviewer:  "REVIEWER.md",
		Architect: "ARCHITECT.md",
	}
}

// Default returns the configuration a brand new project starts from.
func Default(name string) Config {
	return Config{
		Name:        name,
		Description: "",
		Version:     DefaultVersion,
		Prompts:     DefaultPrompts(),
		Builder: Role{
			Backend:     "claude",
			AuthMode:    "anthropic-oauth",
			SessionMode: SessionFresh,
		},
		Reviewer: Tier{
			Enabled: false,
			Role: Role{
				Backend:     "claude",
				AuthMode:    "anthropic-oauth",
				SessionMode: SessionFresh,
			},
		},
		Architect: Tier{
			Enabled: false,
			Role: Role{
				Backend:     "gemini",
				AuthMode:    "gemini-oauth",
				SessionMode: SessionResume,
			},
		},
		Escalation: Escalation{
			Enabled:            false,
			MaxBuilderFailures: DefaultMaxBuilderFailures,
		},
		MaxIterations:     DefaultMaxIterations,
		CompletionEnabled: true,
		KnowledgeDir:      DefaultKnowledgeDir,
	}
}

// Optional turns a free-text answer into an optional value: blank input
// becomes nil.
func Optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ModelName returns the model or "" when unset.
func (r Role) ModelName() string {
	if r.Model == nil {
		return ""
	}
	return *r.Model
}

// Tiers lists the enabled roles in loop order, e.g. ["Builder", "Reviewer"].
func (c Config) Tiers() []string {
	tiers := []string{"Builder"}
	if c.Reviewer.Enabled {
		tiers = append(tiers, "Reviewer")
	}
	if c.Architect.Enabled {
		tiers = append(tiers, "Architect")
	}
	return tiers
}

// PresetInfo describes a named starting configuration.
type PresetInfo struct {
	Name        string
	Description string
}

// Presets lists the presets accepted by ApplyPreset.
var Presets = []PresetInfo{
	{Name: "minimal", Description: "Builder only, no review"},
	{Name: "standard", Description: "Builder + Reviewer"},
	{Name: "three-tier", Description: "Builder + Reviewer + Architect"},
	{Name: "full", Description: "All tiers plus escalation after 3 builder failures"},
}

// PresetNames returns the preset names in display order.
func PresetNames() []string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = p.Name
	}
	return names
}

// ApplyPreset switches tiers on and off according to the named preset.
// Fields a preset does not mention keep their value in cfg.
func ApplyPreset(cfg Config, name string) (Config, error) {
	switch name {
	case "minimal":
		cfg.Reviewer.Enabled = false
		cfg.Architect.Enabled = false
		cfg.Escalation.Enabled = false
	case "standard":
		cfg.Reviewer.Enabled = true
		cfg.Architect.Enabled = false
		cfg.Escalation.Enabled = false
	case "three-tier":
		cfg.Reviewer.Enabled = true
		cfg.Architect.Enabled = true
		cfg.Architect.Backend = "gemini"
		cfg.Architect.AuthMode = "gemini-oauth"
		cfg.Escalation.Enabled = true
	case "full":
		cfg.Reviewer.Enabled = true
		cfg.Architect.Enabled = true
		cfg.Architect.Backend = "gemini"
		cfg.Architect.AuthMode = "gemini-oauth"
		cfg.Escalation.Enabled = true
		cfg.Escalation.MaxBuilderFailures = DefaultMaxBuilderFailures
	default:
		return cfg, fmt.Errorf("unknown preset %q (want %s)", name, strings.Join(PresetNames(), ", "))
	}
	return cfg, nil
}
