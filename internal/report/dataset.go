// Package report renders progress summaries for the terminal and exports
// them as CSV, PDF or JSON.
package report

import (
	"fmt"
	"strconv"

	"github.com/smarted/studykit/internal/progress"
)

// Dataset is one exportable table.
type Dataset struct {
	Title   string
	Headers []string
	Rows    []map[string]string
}

// Table names accepted by DatasetByName.
const (
	TableDaily    = "daily"
	TableSubjects = "subjects"
	TableSessions = "sessions"
	TableQuizzes  = "quizzes"
)

// TableNames lists every exportable table.
var TableNames = []string{TableDaily, TableSubjects, TableSessions, TableQuizzes}

// DatasetByName builds the named table from a summary or the raw history.
func DatasetByName(name string, s progress.Summary, d progress.Data) (Dataset, error) {
	switch name {
	case TableDaily:
		return DailyDataset(s), nil
	case TableSubjects:
		return SubjectDataset(s), nil
	case TableSessions:
		return SessionDataset(d), nil
	case TableQuizzes:
		return QuizDataset(d), nil
	}
	return Dataset{}, fmt.Errorf("unknown table %q (want one of %v)", name, TableNames)
}

// DailyDataset is the trend window, one row per day. Days without a quiz
// leave the score cell empty.
func DailyDataset(s progress.Summary) Dataset {
	data := Dataset{
		Title:   "Daily activity",
		Headers: []string{"date", "day", "study_minutes", "avg_score_percent"},
	}
	for i, date := range s.Trend.Dates {
		data.Rows = append(data.Rows, map[string]string{
			"date":              date,
			"day":               s.Trend.Labels[i],
			"study_minutes":     strconv.Itoa(s.Trend.StudyMinutesByDay[i]),
			"avg_score_percent": optionalPercent(s.Trend.AvgScoreByDay[i]),
		})
	}
	return data
}

// SubjectDataset is the per-subject breakdown.
func SubjectDataset(s progress.Summary) Dataset {
	data := Dataset{
		Title:   "Subjects",
		Headers: []string{"subject", "quizzes_taken", "avg_score_percent"},
	}
	for _, st := range s.Subjects {
		data.Rows = append(data.Rows, map[string]string{
			"subject":           st.Subject,
			"quizzes_taken":     strconv.Itoa(st.QuizzesTaken),
			"avg_score_percent": formatPercent(st.AverageScorePercent),
		})
	}
	return data
}

// SessionDataset lists every recorded study session.
func SessionDataset(d progress.Data) Dataset {
	data := Dataset{
		Title:   "Study sessions",
		Headers: []string{"date", "minutes", "rating"},
	}
	for _, s := range d.StudyHistory {
		data.Rows = append(data.Rows, map[string]string{
			"date":    s.Date,
			"minutes": strconv.Itoa(s.Minutes),
			"rating":  string(s.Rating),
		})
	}
	return data
}

// QuizDataset lists every recorded quiz.
func QuizDataset(d progress.Data) Dataset {
	data := Dataset{
		Title:   "Quizzes",
		Headers: []string{"date", "subject", "score", "total"},
	}
	for _, q := range d.QuizHistory {
		data.Rows = append(data.Rows, map[string]string{
			"date":    q.Date,
			"subject": q.Subject,
			"score":   strconv.Itoa(q.Score),
			"total":   strconv.Itoa(q.Total),
		})
	}
	return data
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64)
}

func optionalPercent(p *float64) string {
	if p == nil {
		return ""
	}
	return formatPercent(*p)
}
