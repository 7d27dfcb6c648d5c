package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jodagreyhame/ralph-wiggum-docker/internal/project"
)

var editCmd = &cobra.Command{
	Use:   "edit <project>",
	Short: "Reconfigure an existing project interactively",
	Long: `Runs the setup wizard on an existing project. Saved answers are offered
as defaults and the project name is kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := newWizard(cmd).Edit(project.Slugify(args[0]))
		return err
	},
}
