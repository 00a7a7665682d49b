package styles

import "github.com/charmbracelet/lipgloss"

// Palette, adapted to light and dark terminals
var (
	Accent  = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"} // cyan
	Good    = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"} // green
	Faint   = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"} // gray
	Caution = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"} // amber
	Danger  = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"} // red
)

// Prompt
var (
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent)

	Subtitle = lipgloss.NewStyle().
			Foreground(Faint).
			Italic(true).
			MarginBottom(1)

	InputLabel = lipgloss.NewStyle().
			Bold(true)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Accent).
			Padding(0, 1)

	HelpKey = lipgloss.NewStyle().
		Foreground(Accent)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Faint)
)

// Report
var (
	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent)

	// Rule colors the "====" separators around each section
	Rule = lipgloss.NewStyle().
		Foreground(Faint)

	Success = lipgloss.NewStyle().
		Foreground(Good)

	WarningMsg = lipgloss.NewStyle().
			Foreground(Caution)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)
)
