package progress

import (
	"fmt"
	"time"
)

// Summary bundles every aggregate needed by the dashboard and the exporters.
type Summary struct {
	GeneratedAt time.Time      `json:"generatedAt"`
	Totals      Totals         `json:"totals"`
	Trend       TrendSeries    `json:"trend"`
	Focus       FocusBreakdown `json:"focus"`
	Subjects    []SubjectStat  `json:"subjects"`
}

// Summarize computes all aggregates of d as of now.
func Summarize(d Data, now time.Time, windowDays int) Summary {
	return Summary{
		GeneratedAt: now,
		Totals:      TotalsOf(d),
		Trend:       Trend(d, now, windowDays),
		Focus:       FocusBreakdownOf(d.StudyHistory),
		Subjects:    SubjectBreakdownOf(d.QuizHistory),
	}
}

// FormatMinutes renders a duration in minutes as "1h 5m" or "45m".
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
