package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jodagreyhame/ralph-wiggum-docker/internal/catalog"
	"github.com/jodagreyhame/ralph-wiggum-docker/internal/output"
	"github.com/jodagreyhame/ralph-wiggum-docker/internal/project"
)

// roleFlags holds the per-role flag values of the new command.
type roleFlags struct {
	backend string
	auth    string
	model   string
	session string
	apiKey  string
	baseURL string
}

var newOpts struct {
	interactive bool
	description string
	preset      string

	builder   roleFlags
	reviewer  roleFlags
	architect roleFlags

	maxIterations      int
	escalationFailures int
}

var newCmd = &cobra.Command{
	Use:   "new [project-name]",
	Short: "Create a project from flags, or interactively without a name",
	Long: `Creates a project under --projects-dir and writes its config.json without
asking any questions. Start from a preset and override single values with
flags. Without a project name, or with --interactive, the setup wizard runs.

Presets:
  minimal     Builder only, no review
  standard    Builder + Reviewer
  three-tier  Builder + Reviewer + Architect
  full        All tiers plus escalation after 3 builder failures`,
	Example: `  # Builder and reviewer on Claude
  ralph-setup new my-app --preset standard

  # Gemini builder reviewed by Codex, at most 20 iterations
  ralph-setup new my-app --builder-backend gemini \
    --reviewer-enabled --reviewer-backend codex --max-iterations 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || newOpts.interactive {
			_, err := newWizard(cmd).Run()
			return err
		}

		name := strings.TrimSpace(args[0])
		slug := project.Slugify(name)
		if slug == "" {
			return fmt.Errorf("project name %q has no usable characters", name)
		}
		m := manager()
		if m.Exists(slug) {
			return fmt.Errorf("project '%s' already exists; use 'ralph-setup edit %s' to reconfigure it", slug, slug)
		}

		pc, err := configFromFlags(cmd, name)
		if err != nil {
			return err
		}
		p := printer(cmd)
		if errs := project.Validate(pc); len(errs) > 0 {
			for _, e := range errs {
				p.Fail("%s", e.Error())
			}
			return fmt.Errorf("%w: %s", errInvalid, joinProblems(errs))
		}

		p.Dim("Creating project: %s", slug)
		if err := m.Create(slug); err != nil {
			return err
		}
		if err := m.EnsureLogs(slug); err != nil {
			return err
		}
		if err := m.Save(slug, pc); err != nil {
			return err
		}

		output.Summary(cmd.OutOrStdout(), slug, pc)
		dir := m.Dir(slug)
		p.Success("Project created: %s", slug)
		p.Dim("Location: %s", dir)
		p.Info("Next: edit %s, then run ./scripts/run.sh %s", filepath.Join(dir, "GOAL.md"), slug)
		return nil
	},
}

// configFromFlags builds the config for name: defaults, then the preset,
// then every flag the user set.
func configFromFlags(cmd *cobra.Command, name string) (project.Config, error) {
	pc := project.Default(name)
	pc.Description = newOpts.description

	if newOpts.preset != "" {
		var err error
		if pc, err = project.ApplyPreset(pc, newOpts.preset); err != nil {
			return pc, err
		}
	}

	flags := cmd.Flags()
	if err := applyRole("builder", &pc.Builder, newOpts.builder, flags.Changed); err != nil {
		return pc, err
	}

	for _, tier := range []struct {
		name  string
		tier  *project.Tier
		flags roleFlags
	}{
		{"reviewer", &pc.Reviewer, newOpts.reviewer},
		{"architect", &pc.Architect, newOpts.architect},
	} {
		on, set, err := toggle(cmd, tier.name)
		if err != nil {
			return pc, err
		}
		if set {
			tier.tier.Enabled = on
		}
		if err := applyRole(tier.name, &tier.tier.Role, tier.flags, flags.Changed); err != nil {
			return pc, err
		}
	}

	on, set, err := toggle(cmd, "escalation")
	if err != nil {
		return pc, err
	}
	if set {
		pc.Escalation.Enabled = on
	}
	if flags.Changed("escalation-failures") {
		pc.Escalation.MaxBuilderFailures = newOpts.escalationFailures
	}

	if flags.Changed("max-iterations") {
		pc.MaxIterations = newOpts.maxIterations
	}
	on, set, err = toggle(cmd, "completion")
	if err != nil {
		return pc, err
	}
	if set {
		pc.CompletionEnabled = on
	}
	return pc, nil
}

// applyRole copies the set flags of one role onto r. A new backend without
// an explicit auth mode gets that backend's first auth mode when the current
// one does not fit.
func applyRole(name string, r *project.Role, f roleFlags, changed func(string) bool) error {
	if changed(name + "-backend") {
		if !catalog.KnownBackend(f.backend) {
			return fmt.Errorf("--%s-backend: unknown backend %q (want %s)", name, f.backend, strings.Join(backendValues(), ", "))
		}
		r.Backend = f.backend
		if !changed(name+"-auth") && !catalog.ValidAuthMode(r.Backend, r.AuthMode) {
			r.AuthMode = catalog.AuthModes(r.Backend)[0].Value
		}
	}
	if changed(name + "-auth") {
		if !catalog.ValidAuthMode(r.Backend, f.auth) {
			return fmt.Errorf("--%s-auth: %q is not an auth mode of %s (want %s)",
				name, f.auth, r.Backend, strings.Join(authValues(r.Backend), ", "))
		}
		r.AuthMode = f.auth
	}
	if changed(name + "-model") {
		r.Model = project.Optional(f.model)
	}
	if changed(name + "-session") {
		r.SessionMode = f.session
	}
	if changed(name + "-api-key") {
		r.APIKey = strings.TrimSpace(f.apiKey)
	}
	if changed(name + "-api-base-url") {
		r.APIBaseURL = strings.TrimSpace(f.baseURL)
	}
	if catalog.IsProxyAuth(r.AuthMode) && r.APIBaseURL == "" {
		r.APIBaseURL = catalog.DefaultProxyBaseURL
	}
	return nil
}

// toggle reads a --<name>-enabled / --no-<name> pair. set is false when
// neither was given.
func toggle(cmd *cobra.Command, name string) (on, set bool, err error) {
	enable, disable := name+"-enabled", "no-"+name
	flags := cmd.Flags()
	switch {
	case flags.Changed(enable) && flags.Changed(disable):
		return false, false, fmt.Errorf("--%s and --%s cannot be used together", enable, disable)
	case flags.Changed(enable):
		return true, true, nil
	case flags.Changed(disable):
		return false, true, nil
	}
	return false, false, nil
}

func backendValues() []string {
	var out []string
	for _, c := range catalog.Backends() {
		out = append(out, c.Value)
	}
	return out
}

func authValues(backend string) []string {
	var out []string
	for _, c := range catalog.AuthModes(backend) {
		out = append(out, c.Value)
	}
	return out
}

func roleFlagSet(cmd *cobra.Command, name string, f *roleFlags) {
	cmd.Flags().StringVar(&f.backend, name+"-backend", "",
		fmt.Sprintf("%s backend: %s", name, strings.Join(backendValues(), " | ")))
	cmd.Flags().StringVar(&f.auth, name+"-auth", "",
		fmt.Sprintf("%s auth mode (default: first mode of the backend)", name))
	cmd.Flags().StringVar(&f.model, name+"-model", "",
		fmt.Sprintf("%s model (empty: backend default)", name))
	cmd.Flags().StringVar(&f.session, name+"-session", "",
		fmt.Sprintf("%s session mode: fresh | resume", name))
	cmd.Flags().StringVar(&f.apiKey, name+"-api-key", "",
		fmt.Sprintf("%s API key for *-api auth modes", name))
	cmd.Flags().StringVar(&f.baseURL, name+"-api-base-url", "",
		fmt.Sprintf("%s API base URL for the glm proxy", name))
}

func init() {
	newCmd.Flags().BoolVarP(&newOpts.interactive, "interactive", "i", false,
		"Run the setup wizard instead of reading flags")
	newCmd.Flags().StringVarP(&newOpts.description, "description", "d", "",
		"Project description")
	newCmd.Flags().StringVarP(&newOpts.preset, "preset", "p", "",
		"Starting point: "+strings.Join(project.PresetNames(), " | "))

	// Roles
	roleFlagSet(newCmd, "builder", &newOpts.builder)
	roleFlagSet(newCmd, "reviewer", &newOpts.reviewer)
	roleFlagSet(newCmd, "architect", &newOpts.architect)
	newCmd.Flags().Bool("reviewer-enabled", false, "Enable the reviewer")
	newCmd.Flags().Bool("no-reviewer", false, "Disable the reviewer")
	newCmd.Flags().Bool("architect-enabled", false, "Enable the architect")
	newCmd.Flags().Bool("no-architect", false, "Disable the architect")

	// Escalation
	newCmd.Flags().Bool("escalation-enabled", false, "Enable escalation")
	newCmd.Flags().Bool("no-escalation", false, "Disable escalation")
	newCmd.Flags().IntVar(&newOpts.escalationFailures, "escalation-failures", project.DefaultMaxBuilderFailures,
		"Builder failures before escalating")

	// Loop
	newCmd.Flags().IntVar(&newOpts.maxIterations, "max-iterations", 0,
		"Maximum loop iterations (0 = unlimited)")
	newCmd.Flags().Bool("completion-enabled", false, "Let the agent end the loop with a completion signal")
	newCmd.Flags().Bool("no-completion", false, "Ignore completion signals")
}
