package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jodagreyhame/ralph-wiggum-docker/internal/project"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List configured projects",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := manager()
		out := cmd.OutOrStdout()
		p := printer(cmd)

		slugs, err := m.List()
		if err != nil {
			return err
		}
		if len(slugs) == 0 {
			fmt.Fprintln(out, color.YellowString("No projects found."))
			p.Dim("Create a new project with: ralph-setup")
			return nil
		}

		fmt.Fprintln(out, color.New(color.Bold).Sprint("Projects:"))
		fmt.Fprintln(out)
		for _, slug := range slugs {
			cfg, err := m.Load(slug)
			if err != nil || len(project.Validate(cfg)) > 0 {
				fmt.Fprintf(out, "  %s %s\n", color.RedString(slug), color.New(color.Faint).Sprint("(invalid config)"))
				p.Debug("%s: %v", slug, loadProblem(cfg, err))
				continue
			}
			fmt.Fprintf(out, "  %s\n", color.GreenString(slug))
			fmt.Fprintf(out, "    %s %s\n", color.New(color.Faint).Sprint("Backend:"), cfg.Builder.Backend)
			fmt.Fprintf(out, "    %s %s\n", color.New(color.Faint).Sprint("Tiers:"), strings.Join(cfg.Tiers(), " → "))
			fmt.Fprintln(out)
		}
		return nil
	},
}

func loadProblem(cfg project.Config, err error) string {
	if err != nil {
		return err.Error()
	}
	return joinProblems(project.Validate(cfg))
}

func joinProblems(errs []project.ValidationError) string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}
