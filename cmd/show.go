package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jodagreyhame/ralph-wiggum-docker/internal/output"
	"github.com/jodagreyhame/ralph-wiggum-docker/internal/project"
)

var showFormat string

var showCmd = &cobra.Command{
	Use:   "show <project>",
	Short: "Print a project's configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !output.ValidMode(showFormat) {
			return fmt.Errorf("invalid --format %q (want summary, json or yaml)", showFormat)
		}
		m := manager()
		slug := project.Slugify(args[0])
		if slug == "" || !m.Exists(slug) {
			return fmt.Errorf("project '%s': %w", args[0], project.ErrNotFound)
		}
		cfg, err := m.Load(slug)
		if err != nil {
			return fmt.Errorf("load config for '%s': %w", slug, err)
		}
		return output.Render(cmd.OutOrStdout(), slug, cfg, output.Mode(showFormat))
	},
}

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", string(output.ModeSummary),
		"Output format: summary | json | yaml")
}
