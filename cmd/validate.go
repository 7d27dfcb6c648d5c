package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jodagreyhame/ralph-wiggum-docker/internal/project"
)

var errInvalid = errors.New("configuration is invalid")

var validateCmd = &cobra.Command{
	Use:   "validate <path|project>",
	Short: "Check a config.json for values the loop cannot run with",
	Long: `Validates a config.json file. The argument may be the file itself, a
directory containing config.json, or the name of a project under
--projects-dir.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath(manager(), args[0])
		p := printer(cmd)

		errs, err := project.ValidateFile(path)
		if err != nil {
			return err
		}
		if len(errs) == 0 {
			p.Success("%s is valid", path)
			return nil
		}
		for _, e := range errs {
			p.Fail("%s", e.Error())
		}
		return fmt.Errorf("%s: %w (%d problem(s))", path, errInvalid, len(errs))
	},
}

// configPath resolves the validate argument to a config.json path.
func configPath(m *project.Manager, arg string) string {
	info, err := os.Stat(arg)
	if err == nil && info.IsDir() {
		return filepath.Join(arg, project.ConfigFile)
	}
	if err != nil {
		if slug := project.Slugify(arg); slug != "" && m.HasConfig(slug) {
			return m.ConfigPath(slug)
		}
	}
	return arg
}
