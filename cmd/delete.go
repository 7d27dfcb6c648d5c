package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jodagreyhame/ralph-wiggum-docker/internal/project"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <project>",
	Short: "Remove a project directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := manager()
		p := printer(cmd)
		slug := project.Slugify(args[0])
		if slug == "" || !m.Exists(slug) {
			return fmt.Errorf("project '%s': %w", args[0], project.ErrNotFound)
		}

		if !deleteForce {
			q := fmt.Sprintf("Are you sure you want to delete project '%s'? This cannot be undone.", slug)
			ok, err := prompter(cmd).Confirm(q, false)
			if err != nil {
				return err
			}
			if !ok {
				p.Warn("Cancelled.")
				return nil
			}
		}

		dir := m.Dir(slug)
		if err := m.Delete(slug); err != nil {
			return err
		}
		p.Success("Deleted project: %s", slug)
		p.Dim("Removed: %s", dir)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteForce, "force", false, "Delete without asking")
}
