package components

import (
	"charm.land/lipgloss/v2"

	"github.com/smarted/studykit/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used by centred screens so
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	// border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), 64)
}

// Centered places content in the middle of a width x height area.
func Centered(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}
