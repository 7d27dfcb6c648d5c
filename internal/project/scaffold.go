package project

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrTemplateMissing is returned when the template directory does not exist.
var ErrTemplateMissing = errors.New("template directory not found")

const (
	agentsFile = "AGENTS.md"
	claudeFile = "CLAUDE.md"
)

func checkTemplate(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrTemplateMissing, dir)
	}
	return nil
}

// CopyTemplate copies every file under src into dst, overwriting files that
// already exist. Afterwards CLAUDE.md is linked to AGENTS.md when only the
// latter exists; if symlinks are unsupported it is copied instead.
func CopyTemplate(src, dst string) error {
	if err := checkTemplate(src); err != nil {
		return err
	}

	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		if d.Type()&fs.ModeSymlink != 0 {
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			os.Remove(target)
			return os.Symlink(link, target)
		}
		return copyFile(path, target)
	})
	if err != nil {
		return fmt.Errorf("copy template %s: %w", src, err)
	}

	return linkInstructions(dst)
}

// linkInstructions points CLAUDE.md at AGENTS.md so both agent CLIs read the
// same instructions.
func linkInstructions(dir string) error {
	agents := filepath.Join(dir, agentsFile)
	claude := filepath.Join(dir, claudeFile)

	if _, err := os.Stat(agents); err != nil {
		return nil
	}
	if _, err := os.Lstat(claude); err == nil {
		return nil
	}
	if err := os.Symlink(agentsFile, claude); err == nil {
		return nil
	}
	// e.g. Windows without developer mode
	if err := copyFile(agents, claude); err != nil {
		return fmt.Errorf("create %s: %w", claudeFile, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
