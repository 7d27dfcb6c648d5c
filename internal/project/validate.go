package project

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/jodagreyhame/ralph-wiggum-docker/internal/catalog"
)

var semverPrefix = regexp.MustCompile(`^\d+\.\d+\.\d+`)

// ValidationError is one problem found in a config, addressed by its
// dotted key path.
type ValidationError struct {
	Path    string
	Message string
}

func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

// Validate checks a config for values the orchestration loop cannot run
// with. Reviewer and architect are only checked when enabled.
func Validate(cfg Config) []ValidationError {
	var errs []ValidationError
	add := func(path, format string, args ...any) {
		errs = append(errs, ValidationError{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(cfg.Name) == "" {
		add("name", "project name is required")
	}
	if strings.TrimSpace(cfg.Version) == "" {
		add("version", "project version is required")
	} else if !semverPrefix.MatchString(cfg.Version) {
		add("version", "version must be in semver format (e.g. 1.0.0)")
	}
	if strings.TrimSpace(cfg.KnowledgeDir) == "" {
		add("knowledge_dir", "knowledge_dir is required")
	}

	prompts := map[string]string{
		"dir":       cfg.Prompts.Dir,
		"goal":      cfg.Prompts.Goal,
		"builder":   cfg.Prompts.Builder,
		"reviewer":  cfg.Prompts.Reviewer,
		"architect": cfg.Prompts.Architect,
	}
	for _, key := range []string{"dir", "goal", "builder", "reviewer", "architect"} {
		if prompts[key] == "" {
			add("prompts."+key, "prompts.%s is required", key)
		}
	}

	errs = append(errs, validateRole("builder", cfg.Builder)...)
	if cfg.Reviewer.Enabled {
		errs = append(errs, validateRole("reviewer", cfg.Reviewer.Role)...)
	}
	if cfg.Architect.Enabled {
		errs = append(errs, validateRole("architect", cfg.Architect.Role)...)
	}

	if cfg.Escalation.Enabled && cfg.Escalation.MaxBuilderFailures < 1 {
		add("escalation.max_builder_failures", "must be at least 1")
	}
	if cfg.MaxIterations < 0 {
		add("max_iterations", "max_iterations must be a non-negative integer")
	}
	return errs
}

func validateRole(path string, r Role) []ValidationError {
	var errs []ValidationError
	switch {
	case !catalog.KnownBackend(r.Backend):
		errs = append(errs, ValidationError{Path: path + ".backend", Message: fmt.Sprintf("invalid backend: %q", r.Backend)})
	case !catalog.ValidAuthMode(r.Backend, r.AuthMode):
		errs = append(errs, ValidationError{Path: path + ".auth_mode", Message: fmt.Sprintf("invalid auth mode for %s: %q", r.Backend, r.AuthMode)})
	}
	if r.SessionMode != "" && r.SessionMode != SessionFresh && r.SessionMode != SessionResume {
		errs = append(errs, ValidationError{Path: path + ".session_mode", Message: `session_mode must be "fresh" or "resume"`})
	}
	return errs
}

// ValidateFile parses path without filling in defaults, so missing keys are
// reported, and validates the result. A parse failure is returned as error.
func ValidateFile(path string) ([]ValidationError, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Decode(data, Config{})
	if err != nil {
		return nil, err
	}
	return Validate(cfg), nil
}
