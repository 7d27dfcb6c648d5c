package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
const (
	ColorPrimary = lipgloss.Color("#00B7C3") // cyan
	ColorAccent  = lipgloss.Color("#C678DD") // magenta
	ColorAnswer  = lipgloss.Color("#98C379") // green
	ColorMuted   = lipgloss.Color("#6C7086") // subdued gray
)

var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2)

	qmarkStyle    = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	questionStyle = lipgloss.NewStyle().Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(ColorAnswer).Bold(true)
	pointerStyle  = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
)

// answered renders the one-line record left behind once a question is done.
func answered(question, answer string) string {
	return qmarkStyle.Render("?") + " " + questionStyle.Render(question) + " " + answerStyle.Render(answer)
}
