package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Manager resolves, creates and removes project directories under Root.
// One directory per project slug, each holding a config.json once saved.
type Manager struct {
	Root        string
	TemplateDir string
}

// NewManager returns a Manager for projects under root, scaffolded from
// templateDir.
func NewManager(root, templateDir string) *Manager {
	return &Manager{Root: root, TemplateDir: templateDir}
}

// Dir returns the directory of the project with the given slug.
func (m *Manager) Dir(slug string) string {
	return filepath.Join(m.Root, slug)
}

// ConfigPath returns the config.json path of the project.
func (m *Manager) ConfigPath(slug string) string {
	return filepath.Join(m.Dir(slug), ConfigFile)
}

// Exists reports whether the project directory exists, with or without a
// saved config.
func (m *Manager) Exists(slug string) bool {
	info, err := os.Stat(m.Dir(slug))
	return err == nil && info.IsDir()
}

// HasConfig reports whether the project has a saved config.json.
func (m *Manager) HasConfig(slug string) bool {
	info, err := os.Stat(m.ConfigPath(slug))
	return err == nil && !info.IsDir()
}

// List returns the slugs of all projects that have a config.json, sorted.
// Directories starting with "_" are skipped. A missing root is not an error.
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.Root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list projects in %s: %w", m.Root, err)
	}

	var slugs []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), "_") {
			continue
		}
		if m.HasConfig(e.Name()) {
			slugs = append(slugs, e.Name())
		}
	}
	sort.Strings(slugs)
	return slugs, nil
}

// Create makes the project directory and fills it from the template. The
// template is checked first so a missing template leaves nothing behind.
func (m *Manager) Create(slug string) error {
	if err := checkTemplate(m.TemplateDir); err != nil {
		return err
	}
	dir := m.Dir(slug)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create project dir %q: %w", dir, err)
	}
	return CopyTemplate(m.TemplateDir, dir)
}

// EnsureLogs creates the project's logs directory.
func (m *Manager) EnsureLogs(slug string) error {
	dir := filepath.Join(m.Dir(slug), LogsDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create logs dir %q: %w", dir, err)
	}
	return nil
}

// Load reads the project's config.json.
func (m *Manager) Load(slug string) (Config, error) {
	return Load(m.ConfigPath(slug))
}

// Save writes the project's config.json.
func (m *Manager) Save(slug string, cfg Config) error {
	return Save(m.ConfigPath(slug), cfg)
}

// Delete removes the project directory and everything in it.
func (m *Manager) Delete(slug string) error {
	if slug == "" || !m.Exists(slug) {
		return fmt.Errorf("%q: %w", slug, ErrNotFound)
	}
	if err := os.RemoveAll(m.Dir(slug)); err != nil {
		return fmt.Errorf("delete project %q: %w", slug, err)
	}
	return nil
}
