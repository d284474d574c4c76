package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Use these named colors instead of inline lipgloss.Color
// literals.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, pattern keys.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" step status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings and the recommended badge.
	ColorYellow = lipgloss.Color("220")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorMagenta is used for the banner.
	ColorMagenta = lipgloss.Color("213")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (project names, paths, pattern keys).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles headings and action verbs.
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome and secondary text.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleCommand styles shell commands the user is asked to run.
	StyleCommand = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleBadge styles the recommended badge.
	StyleBadge = lipgloss.NewStyle().Bold(true).Foreground(ColorYellow)
)

// Step status constants.
const (
	StatusCreated = "created"
	StatusSkipped = "skipped"
	StatusWarning = "warning"
)

// StatusStyle returns the lipgloss style for a step status.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusSkipped:
		return lipgloss.NewStyle().Faint(true)
	case StatusWarning:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	default:
		return lipgloss.NewStyle()
	}
}

// minStepColumnWidth keeps status words aligned across step lines.
const minStepColumnWidth = 32

// FormatStepLine renders a step name with a right-aligned, color-coded
// status suffix.
func FormatStepLine(step, status string) string {
	padding := minStepColumnWidth - lipgloss.Width(step)
	if padding < 2 {
		padding = 2
	}
	return StyleDim.Render("•") + " " + step + strings.Repeat(" ", padding) + StatusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatWarning renders a yellow warning marker with a message.
func FormatWarning(msg string) string {
	mark := lipgloss.NewStyle().Foreground(ColorYellow).Render("⚠")
	return mark + " " + msg
}

// FormatBanner renders the program banner line.
func FormatBanner(name, tagline string) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(ColorMagenta).Render(name)
	return fmt.Sprintf("%s %s", title, StyleDim.Render(tagline))
}
