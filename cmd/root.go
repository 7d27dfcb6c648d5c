package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jodagreyhame/ralph-wiggum-docker/internal/config"
	"github.com/jodagreyhame/ralph-wiggum-docker/internal/console"
	"github.com/jodagreyhame/ralph-wiggum-docker/internal/project"
	"github.com/jodagreyhame/ralph-wiggum-docker/internal/prompt"
	"github.com/jodagreyhame/ralph-wiggum-docker/internal/tui"
	"github.com/jodagreyhame/ralph-wiggum-docker/internal/wizard"
)

const Version = "0.1.0"

var cfg config.Config

// v resolves the persistent flags against RALPH_* environment variables.
var v = config.NewViper()

var rootCmd = &cobra.Command{
	Use:   "ralph-setup",
	Short: "Bootstrap and configure Ralph Wiggum loop projects",
	Long: `ralph-setup walks through the settings of a Ralph Wiggum Docker loop
project and writes them to <projects-dir>/<project>/config.json.

New projects are created from the template directory. Existing projects are
reconfigured with their saved answers offered as defaults.

Roles:
  builder    does the work (always on)
  reviewer   pass/fail gate after every iteration
  architect  final approval with full context (requires reviewer)`,
	Example: `  # Create or reconfigure a project interactively
  ralph-setup

  # Use numbered line prompts instead of the full-screen picker
  ralph-setup --plain

  # Create a project without prompts
  ralph-setup new my-app --preset three-tier

  # Keep projects somewhere else
  RALPH_PROJECTS_DIR=~/ralph ralph-setup list`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.FromViper(v)
		if cfg.NoColor {
			color.NoColor = true
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := newWizard(cmd).Run()
		return err
	},
}

func manager() *project.Manager {
	return project.NewManager(cfg.ProjectsDir, cfg.TemplateDir)
}

func printer(cmd *cobra.Command) *console.Printer {
	return console.New(cmd.OutOrStdout(), cfg.Verbose)
}

// prompter picks the interactive prompter when both streams are terminals
// and --plain is not set, and the line-based one otherwise.
func prompter(cmd *cobra.Command) prompt.Prompter {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	inFile, _ := in.(*os.File)
	outFile, _ := out.(*os.File)
	if !cfg.Plain && tui.Available(inFile, outFile) {
		return tui.NewPrompter(in, out)
	}
	return prompt.NewPlain(in, out)
}

func newWizard(cmd *cobra.Command) *wizard.Wizard {
	return wizard.New(manager(), prompter(cmd), printer(cmd), Version)
}

// Execute is the entry point called by main.
func Execute() {
	os.Exit(run(rootCmd, os.Args[1:], os.Stderr))
}

// run executes root with args and maps the outcome to an exit code: 0 on
// success, 1 on cancellation or any error.
func run(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	err := root.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, prompt.ErrAborted):
		fmt.Fprintln(stderr, color.YellowString("Aborted."))
	case errors.Is(err, wizard.ErrDeclined):
		// already reported
	default:
		fmt.Fprintf(stderr, "%s %v\n", color.RedString("Error:"), err)
	}
	return 1
}

func init() {
	defaults := config.Default()

	// Layout
	rootCmd.PersistentFlags().String(config.KeyProjectsDir, defaults.ProjectsDir,
		"Directory holding one subdirectory per project (env RALPH_PROJECTS_DIR)")
	rootCmd.PersistentFlags().String(config.KeyTemplateDir, defaults.TemplateDir,
		"Template copied into new projects (env RALPH_TEMPLATE_DIR)")

	// Terminal
	rootCmd.PersistentFlags().Bool(config.KeyPlain, false,
		"Use numbered line prompts even on a terminal (env RALPH_PLAIN)")
	rootCmd.PersistentFlags().Bool(config.KeyVerbose, false,
		"Print debug details while resolving")
	rootCmd.PersistentFlags().Bool(config.KeyNoColor, false,
		"Disable colored output")

	if err := v.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(newCmd, editCmd, listCmd, showCmd, validateCmd, deleteCmd)
}
