// Package output renders a saved project configuration for people and tools.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/jodagreyhame/ralph-wiggum-docker/internal/project"
)

// Mode represents the rendering format.
type Mode string

const (
	ModeSummary Mode = "summary"
	ModeJSON    Mode = "json"
	ModeYAML    Mode = "yaml"
)

// ValidMode returns true if m is a known output mode.
func ValidMode(m string) bool {
	switch Mode(m) {
	case ModeSummary, ModeJSON, ModeYAML:
		return true
	}
	return false
}

// Render writes cfg in the given mode.
func Render(w io.Writer, slug string, cfg project.Config, mode Mode) error {
	switch mode {
	case ModeSummary:
		Summary(w, slug, cfg)
		return nil
	case ModeJSON:
		return JSON(w, cfg)
	case ModeYAML:
		return YAML(w, cfg)
	default:
		return fmt.Errorf("unknown output mode %q", mode)
	}
}

// JSON writes cfg exactly as it is stored in config.json.
func JSON(w io.Writer, cfg project.Config) error {
	data, err := project.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// YAML writes cfg as YAML with the same keys as the JSON form.
func YAML(w io.Writer, cfg project.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

var rule = strings.Repeat("═", 55)

// Summary writes the human-readable review shown before a config is saved.
// Optional fields are listed only when set; the API key is never shown.
func Summary(w io.Writer, slug string, cfg project.Config) {
	bold := color.New(color.Bold).SprintFunc()
	val := color.New(color.FgGreen).SprintFunc()
	off := color.New(color.FgYellow).SprintFunc()

	field := func(label string, v any) {
		fmt.Fprintf(w, "     %-12s%s\n", label+":", val(v))
	}
	enabled := func(on bool) {
		if on {
			field("Enabled", "Yes")
			return
		}
		fmt.Fprintf(w, "     %-12s%s\n", "Enabled:", off("No"))
	}
	role := func(r project.Role) {
		field("Backend", r.Backend)
		field("Auth", r.AuthMode)
		if m := r.ModelName(); m != "" {
			field("Model", m)
		}
		if r.APIBaseURL != "" {
			field("API URL", r.APIBaseURL)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, bold(rule))
	fmt.Fprintln(w, bold("  CONFIGURATION SUMMARY"))
	fmt.Fprintln(w, bold(rule))
	fmt.Fprintf(w, "  Project: %s\n\n", val(slug))

	fmt.Fprintln(w, color.CyanString("  BUILDER:"))
	role(cfg.Builder)
	fmt.Fprintln(w)

	fmt.Fprintln(w, color.YellowString("  REVIEWER:"))
	enabled(cfg.Reviewer.Enabled)
	if cfg.Reviewer.Enabled {
		role(cfg.Reviewer.Role)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, color.MagentaString("  ARCHITECT:"))
	enabled(cfg.Architect.Enabled)
	if cfg.Architect.Enabled {
		role(cfg.Architect.Role)
		field("Session", "resume (full context)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, color.RedString("  ESCALATION:"))
	enabled(cfg.Escalation.Enabled)
	if cfg.Escalation.Enabled {
		field("Threshold", fmt.Sprintf("%d failures", cfg.Escalation.MaxBuilderFailures))
	}
	fmt.Fprintln(w)

	maxIter := "infinite"
	if cfg.MaxIterations > 0 {
		maxIter = fmt.Sprint(cfg.MaxIterations)
	}
	completion := "Disabled"
	if cfg.CompletionEnabled {
		completion = "Enabled"
	}
	fmt.Fprintln(w, color.GreenString("  LOOP:"))
	field("Max Iter", maxIter)
	field("Completion", completion)
	fmt.Fprintln(w)
	fmt.Fprintln(w, bold(rule))
}
