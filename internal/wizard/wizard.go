// Package wizard runs the interactive project bootstrap: it picks or creates
// the project directory, resolves every configuration section through a
// Prompter, shows a summary and saves config.json on confirmation.
package wizard

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jodagreyhame/ralph-wiggum-docker/internal/console"
	"github.com/jodagreyhame/ralph-wiggum-docker/internal/output"
	"github.com/jodagreyhame/ralph-wiggum-docker/internal/project"
	"github.com/jodagreyhame/ralph-wiggum-docker/internal/prompt"
	"github.com/jodagreyhame/ralph-wiggum-docker/internal/tui"
)

// ErrDeclined is returned when the user declines to reconfigure an existing
// project or to save the resolved configuration. Nothing is written.
var ErrDeclined = errors.New("cancelled")

const (
	QuestionName = "Project name"
	QuestionSave = "Save this configuration?"
)

// QuestionReconfigure is asked when the project directory already exists.
func QuestionReconfigure(slug string) string {
	return fmt.Sprintf("Project '%s' exists. Reconfigure?", slug)
}

// Wizard ties the project store, a Prompter and the console together.
type Wizard struct {
	Projects *project.Manager
	Prompter prompt.Prompter
	Out      *console.Printer
	Version  string

	visited []State
}

// New returns a Wizard.
func New(projects *project.Manager, p prompt.Prompter, out *console.Printer, version string) *Wizard {
	return &Wizard{Projects: projects, Prompter: p, Out: out, Version: version}
}

// Visited returns the sections asked during the last Run.
func (w *Wizard) Visited() []State { return w.visited }

// Run is the main entry point for a bootstrap session. It returns the slug
// of the saved project.
func (w *Wizard) Run() (string, error) {
	tui.Banner(w.Out.Writer(), w.Version, w.Projects.Root)

	// ── 1. Existing projects hint ──────────────────────────────────────────
	existing, err := w.Projects.List()
	if err != nil {
		w.Out.Debug("list projects: %v", err)
	} else if len(existing) > 0 {
		w.Out.Dim("Existing projects: %s", strings.Join(existing, ", "))
	}

	// ── 2. Project name ────────────────────────────────────────────────────
	name, err := w.Prompter.Text(QuestionName, project.DefaultName)
	if err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	slug := project.Slugify(name)
	if slug == "" {
		return "", fmt.Errorf("project name %q has no usable characters", name)
	}

	// ── 3. Create or reopen ────────────────────────────────────────────────
	var prior *project.Config
	if w.Projects.Exists(slug) {
		ok, err := w.Prompter.Confirm(QuestionReconfigure(slug), true)
		if err != nil {
			return "", err
		}
		if !ok {
			w.Out.Warn("Cancelled.")
			return "", ErrDeclined
		}
		prior = w.loadPrior(slug)
	} else {
		w.Out.Dim("Creating project: %s", slug)
		if err := w.Projects.Create(slug); err != nil {
			return "", err
		}
		w.Out.Success("Template files copied")
	}

	return w.configure(slug, name, prior)
}

// Edit reconfigures an existing project without asking for its name. The
// saved name is kept; a project without config.json starts from defaults.
func (w *Wizard) Edit(slug string) (string, error) {
	if slug == "" || !w.Projects.Exists(slug) {
		return "", fmt.Errorf("project '%s': %w", slug, project.ErrNotFound)
	}
	tui.Banner(w.Out.Writer(), w.Version, w.Projects.Root)
	w.Out.Info("Editing project: %s", slug)

	prior := w.loadPrior(slug)
	name := slug
	if prior != nil && strings.TrimSpace(prior.Name) != "" {
		name = prior.Name
	}
	return w.configure(slug, name, prior)
}

// configure resolves every section for slug, shows the summary and saves
// on confirmation.
func (w *Wizard) configure(slug, name string, prior *project.Config) (string, error) {
	if err := w.Projects.EnsureLogs(slug); err != nil {
		return "", err
	}

	// ── 4. Resolve sections ────────────────────────────────────────────────
	r := NewResolver(w.Prompter, prior, w.Out)
	cfg, err := r.Resolve()
	w.visited = r.Visited()
	if err != nil {
		return "", err
	}
	cfg.Name = name
	w.Out.Debug("visited: %v", w.visited)

	// ── 5. Summary and save ────────────────────────────────────────────────
	output.Summary(w.Out.Writer(), slug, cfg)
	ok, err := w.Prompter.Confirm(QuestionSave, true)
	if err != nil {
		return "", err
	}
	if !ok {
		w.Out.Warn("Configuration cancelled.")
		return "", ErrDeclined
	}
	if err := w.Projects.Save(slug, cfg); err != nil {
		return "", err
	}

	w.printNextSteps(slug)
	return slug, nil
}

// loadPrior returns the saved config of an existing project, or nil when
// there is none or it cannot be parsed.
func (w *Wizard) loadPrior(slug string) *project.Config {
	cfg, err := w.Projects.Load(slug)
	if errors.Is(err, project.ErrNotFound) {
		return nil
	}
	if err != nil {
		w.Out.Warn("Ignoring unreadable %s: %v", project.ConfigFile, err)
		return nil
	}
	return &cfg
}

func (w *Wizard) printNextSteps(slug string) {
	dir := w.Projects.Dir(slug)
	fmt.Fprintln(w.Out.Writer())
	w.Out.Success("Project configured: %s", slug)
	w.Out.Dim("Location: %s", dir)
	fmt.Fprintln(w.Out.Writer())
	w.Out.Dim("Next steps:")
	w.Out.Info("1. Edit %s with your project objective and completion criteria", filepath.Join(dir, "GOAL.md"))
	w.Out.Info("2. Run: ./scripts/run.sh %s", slug)
	w.Out.Info("   Or:  .\\scripts\\run.ps1 -Project %s", slug)
}
