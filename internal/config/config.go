package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// RALPH_PROJECTS_DIR for --projects-dir.
const EnvPrefix = "RALPH"

// Keys shared by cobra flags and viper.
const (
	KeyProjectsDir = "projects-dir"
	KeyTemplateDir = "template-dir"
	KeyPlain       = "plain"
	KeyVerbose     = "verbose"
	KeyNoColor     = "no-color"
)

// Config holds all runtime configuration for a ralph-setup run.
type Config struct {
	// Layout
	ProjectsDir string
	TemplateDir string

	// Terminal
	Plain   bool
	Verbose bool
	NoColor bool
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		ProjectsDir: ".projects",
		TemplateDir: "template",
	}
}

// NewViper returns a viper instance with the defaults registered and
// environment overrides enabled.
func NewViper() *viper.Viper {
	d := Default()
	v := viper.New()
	v.SetDefault(KeyProjectsDir, d.ProjectsDir)
	v.SetDefault(KeyTemplateDir, d.TemplateDir)
	v.SetDefault(KeyPlain, d.Plain)
	v.SetDefault(KeyVerbose, d.Verbose)
	v.SetDefault(KeyNoColor, d.NoColor)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// FromViper reads the resolved values: flag, then environment, then default.
func FromViper(v *viper.Viper) Config {
	return Config{
		ProjectsDir: v.GetString(KeyProjectsDir),
		TemplateDir: v.GetString(KeyTemplateDir),
		Plain:       v.GetBool(KeyPlain),
		Verbose:     v.GetBool(KeyVerbose),
		NoColor:     v.GetBool(KeyNoColor),
	}
}
