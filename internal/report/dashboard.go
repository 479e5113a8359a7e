package report

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/smarted/studykit/internal/progress"
	"github.com/smarted/studykit/internal/ui/theme"
)

const (
	barChar   = "█"
	emptyChar = "░"
	noScore   = "·"
)

// Dashboard renders s as the terminal progress view, fitted to width.
func Dashboard(s progress.Summary, width int) string {
	if width < 40 {
		width = 40
	}

	sections := []string{
		StatCards(s.Totals, width),
		"",
		section(fmt.Sprintf("Last %d days", len(s.Trend.Dates)), TrendChart(s.Trend, width)),
		"",
		section("Focus quality", FocusBar(s.Focus, width)),
		"",
		section("Subjects", SubjectTable(s.Subjects)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func section(title, body string) string {
	heading := theme.Heading.Render(title)
	return heading + "\n" + body
}

// StatCards renders the three headline numbers side by side.
func StatCards(t progress.Totals, width int) string {
	avg := "n/a"
	if t.TotalQuizzes > 0 {
		avg = fmt.Sprintf("%.0f%%", t.AverageScorePercent)
	}

	cardWidth := (width - 6) / 3
	cards := []string{
		statCard("Study time", progress.FormatMinutes(t.TotalStudyMinutes), cardWidth),
		statCard("Quizzes", fmt.Sprintf("%d", t.TotalQuizzes), cardWidth),
		statCard("Avg score", avg, cardWidth),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func statCard(label, value string, width int) string {
	body := theme.Label.Render(label) + "\n" +
		theme.Value.Render(value)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(width).
		Render(body)
}

// TrendChart draws one row per day: a bar of study minutes scaled to the
// busiest day, then the day's average score. Days without a quiz show a
// gap marker instead of a score.
func TrendChart(ts progress.TrendSeries, width int) string {
	peak := 0
	for _, m := range ts.StudyMinutesByDay {
		peak = max(peak, m)
	}
	barWidth := max(width-24, 10)

	minutesStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	gapStyle := lipgloss.NewStyle().Foreground(theme.Border)

	var b strings.Builder
	for i, label := range ts.Labels {
		minutes := ts.StudyMinutesByDay[i]
		filled := 0
		if peak > 0 {
			filled = minutes * barWidth / peak
		}
		if minutes > 0 && filled == 0 {
			filled = 1
		}

		bar := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat(barChar, filled)) +
			strings.Repeat(" ", barWidth-filled)

		score := gapStyle.Render(fmt.Sprintf("%5s", noScore))
		if p := ts.AvgScoreByDay[i]; p != nil {
			score = lipgloss.NewStyle().Foreground(scoreColor(*p)).Render(fmt.Sprintf("%4.0f%%", *p))
		}

		fmt.Fprintf(&b, "%-3s %s %s %s", label, bar,
			minutesStyle.Render(fmt.Sprintf("%7s", progress.FormatMinutes(minutes))), score)
		if i < len(ts.Labels)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FocusBar draws the deep versus distracted split, or a neutral note when no
// sessions are recorded.
func FocusBar(f progress.FocusBreakdown, width int) string {
	if f.IsEmpty() {
		return theme.Hint.Render("No focus sessions recorded yet. Finish a Pomodoro to see your focus quality.")
	}

	barWidth := max(width-4, 10)
	deep, distracted := focusShares(f)
	filled := int(deep/100*float64(barWidth) + 0.5)

	bar := lipgloss.NewStyle().Foreground(theme.DeepFocus).Render(strings.Repeat(barChar, filled)) +
		lipgloss.NewStyle().Foreground(theme.Distracted).Render(strings.Repeat(emptyChar, barWidth-filled))
	legend := fmt.Sprintf("Deep %s (%.0f%%)   Distracted %s (%.0f%%)",
		progress.FormatMinutes(f.DeepMinutes), deep,
		progress.FormatMinutes(f.DistractedMinutes), distracted)
	return bar + "\n" + theme.Label.Render(legend)
}

// SubjectTable lists subjects by average score.
func SubjectTable(stats []progress.SubjectStat) string {
	if len(stats) == 0 {
		return theme.Hint.Render("No quizzes with a subject yet.")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		Headers("Subject", "Quizzes", "Avg score").
		StyleFunc(func(row, col int) lipgloss.Style {
			cell := lipgloss.NewStyle().PaddingRight(2)
			if col > 0 {
				cell = cell.Align(lipgloss.Right)
			}
			switch {
			case row == table.HeaderRow:
				return cell.Bold(true).Foreground(theme.TextDim)
			case col == 2 && row >= 0 && row < len(stats):
				return cell.Foreground(scoreColor(stats[row].AverageScorePercent))
			}
			return cell.Foreground(theme.Text)
		})
	for _, st := range stats {
		t.Row(st.Subject, fmt.Sprintf("%d", st.QuizzesTaken), fmt.Sprintf("%.0f%%", st.AverageScorePercent))
	}
	return t.String()
}

func scoreColor(pct float64) color.Color {
	switch {
	case pct >= 75:
		return theme.Success
	case pct >= 50:
		return theme.Accent
	}
	return theme.Error
}
