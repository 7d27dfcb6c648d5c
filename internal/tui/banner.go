package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ralphIcon is a compact pixel-art "R" shown next to the banner title.
const ralphIcon = `█▀▀▄
█▄▄▀
█  █`

// Banner renders the static wizard header: title, subtitle and the
// directory new projects are created under.
func Banner(w io.Writer, version, projectsDir string) {
	icon := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Render(ralphIcon)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))

	title := BannerStyle.Render("RALPH WIGGUM DOCKER LOOP") + " " + mutedStyle.Render("v"+version)
	sub := SubtitleStyle.Render("Project Bootstrap")
	dir := titleStyle.Render("projects ") + mutedStyle.Render(shortenHome(projectsDir))

	info := lipgloss.NewStyle().
		PaddingLeft(2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, sub, dir))

	content := lipgloss.JoinHorizontal(lipgloss.Center, icon, info)
	fmt.Fprintln(w)
	fmt.Fprintln(w, BoxStyle.Render(content))
	fmt.Fprintln(w)
}

func shortenHome(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + filepath.ToSlash(path[len(home):])
	}
	return path
}
