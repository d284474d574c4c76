package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Card is a rounded box with a title line, body text and an optional footer.
type Card struct {
	Title     string
	Badge     string
	Body      string
	Footer    string
	Highlight bool
}

const cardWidth = 64

// RenderCard renders c. Highlighted cards get a yellow border.
func RenderCard(c Card) string {
	border := ColorDimGray
	if c.Highlight {
		border = ColorYellow
	}

	title := StyleAction.Render(c.Title)
	if c.Badge != "" {
		title += "  " + StyleBadge.Render(c.Badge)
	}

	lines := []string{title}
	if c.Body != "" {
		lines = append(lines, c.Body)
	}
	if c.Footer != "" {
		lines = append(lines, "", StyleDim.Render(c.Footer))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(cardWidth).
		Render(strings.Join(lines, "\n"))
}

// RenderSummaryBox renders labelled key/value rows followed by a list of
// commands, inside a rounded box.
func RenderSummaryBox(title string, rows [][2]string, commandsTitle string, commands []string) string {
	width := 0
	for _, r := range rows {
		if w := lipgloss.Width(r[0]); w > width {
			width = w
		}
	}

	var b strings.Builder
	b.WriteString(StyleSummary.Render(title))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(StyleDim.Render(r[0] + ":" + strings.Repeat(" ", width-lipgloss.Width(r[0])+1)))
		b.WriteString(StyleNoun.Render(r[1]))
		b.WriteString("\n")
	}

	if len(commands) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleAction.Render(commandsTitle))
		for _, c := range commands {
			b.WriteString("\n  ")
			b.WriteString(StyleCommand.Render(c))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorGreen).
		Padding(0, 1).
		Render(b.String())
}
