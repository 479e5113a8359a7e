package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/smarted/studykit/internal/progress"
	"github.com/smarted/studykit/internal/ui/components"
	"github.com/smarted/studykit/internal/ui/theme"
)

const titleFull = `███████╗████████╗██╗   ██╗██████╗ ██╗   ██╗██╗  ██╗██╗████████╗
██╔════╝╚══██╔══╝██║   ██║██╔══██╗╚██╗ ██╔╝██║ ██╔╝██║╚══██╔══╝
███████╗   ██║   ██║   ██║██║  ██║ ╚████╔╝ █████╔╝ ██║   ██║
╚════██║   ██║   ██║   ██║██║  ██║  ╚██╔╝  ██╔═██╗ ██║   ██║
███████║   ██║   ╚██████╔╝██████╔╝   ██║   ██║  ██╗██║   ██║
╚══════╝   ╚═╝    ╚═════╝ ╚═════╝    ╚═╝   ╚═╝  ╚═╝╚═╝   ╚═╝`

const titleCompact = "S · T · U · D · Y · K · I · T"

// renderTitle returns the block-letter title or its compact fallback.
func renderTitle(cw int, compact bool) string {
	text := titleFull
	if compact {
		text = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(text))
}

// renderStatsBar renders today's study time, the all-time total and the
// average quiz score in a bordered box.
func renderStatsBar(st stats, cw int, compact bool) string {
	today := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	total := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
	score := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	avg := "n/a"
	if st.quizzes > 0 {
		avg = fmt.Sprintf("%.0f%%", st.avgScore)
	}

	var line string
	if compact {
		line = fmt.Sprintf("%s  %s  %s",
			today.Render("⏱ "+progress.FormatMinutes(st.todayMinutes)),
			total.Render("★ "+progress.FormatMinutes(st.totalMinutes)),
			score.Render("✓ "+avg),
		)
	} else {
		line = fmt.Sprintf("%s   %s   %s",
			today.Render("⏱ "+progress.FormatMinutes(st.todayMinutes)+" TODAY"),
			total.Render("★ "+progress.FormatMinutes(st.totalMinutes)+" TOTAL"),
			score.Render("✓ "+avg+" AVG SCORE"),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// renderGoal shows the weekly goal with a bar of this week's completed hours.
func renderGoal(gp progress.GoalProgress, cw int) string {
	hours := fmt.Sprintf("%.1f / %.1fh", gp.CompletedHours, gp.Goal.TotalHours)
	label := "WEEKLY GOAL: " + gp.Goal.Description
	bar := components.ProgressBar{
		Fraction:    gp.Percent / 100,
		ShowPercent: true,
		Width:       min(cw, 50),
	}
	if gp.Done() {
		bar.Fill = theme.Success
	}
	body := theme.Label.Render(label) + "\n" +
		theme.Value.Render(hours) + "  " + bar.View()
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(body)
}

// renderLLMBanner explains why the coach is disabled.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set GEMINI_API_KEY (or another provider key) to chat with the study coach")
}
