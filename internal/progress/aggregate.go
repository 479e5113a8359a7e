package progress

import (
	"sort"
	"strings"
)

// Totals are the headline numbers of the progress view.
type Totals struct {
	TotalStudyMinutes   int     `json:"totalStudyMinutes"`
	TotalQuizzes        int     `json:"totalQuizzes"`
	AverageScorePercent float64 `json:"averageScorePercent"`
}

// FocusBreakdown splits recorded study time by focus rating.
type FocusBreakdown struct {
	DeepMinutes       int `json:"deepMinutes"`
	DistractedMinutes int `json:"distractedMinutes"`
}

// IsEmpty reports whether there is no study time to chart yet.
func (f FocusBreakdown) IsEmpty() bool {
	return f.DeepMinutes == 0 && f.DistractedMinutes == 0
}

// SubjectStat is one row of the per-subject table.
type SubjectStat struct {
	Subject             string  `json:"subject"`
	QuizzesTaken        int     `json:"quizzesTaken"`
	AverageScorePercent float64 `json:"averageScorePercent"`
}

// TotalsOf sums study minutes, counts quizzes and averages the per-quiz score
// percentage. Quizzes without a positive total are counted but do not affect
// the average.
func TotalsOf(d Data) Totals {
	var t Totals
	for _, s := range d.StudyHistory {
		t.TotalStudyMinutes += s.Minutes
	}
	t.TotalQuizzes = len(d.QuizHistory)
	t.AverageScorePercent = meanPercent(d.QuizHistory)
	return t
}

// FocusBreakdownOf sums minutes per rating. Sessions with an unknown rating
// are ignored.
func FocusBreakdownOf(sessions []StudySession) FocusBreakdown {
	var f FocusBreakdown
	for _, s := range sessions {
		switch s.Rating {
		case RatingDeep:
			f.DeepMinutes += s.Minutes
		case RatingDistracted:
			f.DistractedMinutes += s.Minutes
		}
	}
	return f
}

// SubjectBreakdownOf groups quizzes by subject and computes a point-weighted
// average, sum(score)/sum(total), per subject. Rows are sorted by descending
// average; ties keep the order in which subjects first appeared.
func SubjectBreakdownOf(quizzes []QuizResult) []SubjectStat {
	type acc struct {
		count  int
		score  int
		points int
	}
	var order []string
	groups := make(map[string]*acc)

	for _, q := range quizzes {
		subject := strings.TrimSpace(q.Subject)
		if subject == "" {
			continue
		}
		g, ok := groups[subject]
		if !ok {
			g = &acc{}
			groups[subject] = g
			order = append(order, subject)
		}
		g.count++
		if q.Total > 0 {
			g.score += q.Score
			g.points += q.Total
		}
	}

	out := make([]SubjectStat, 0, len(order))
	for _, subject := range order {
		g := groups[subject]
		var avg float64
		if g.points > 0 {
			avg = float64(g.score) / float64(g.points) * 100
		}
		out = append(out, SubjectStat{
			Subject:             subject,
			QuizzesTaken:        g.count,
			AverageScorePercent: avg,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AverageScorePercent > out[j].AverageScorePercent
	})
	return out
}

// meanPercent averages the score percentage of quizzes with a positive total.
// Returns 0 when there are none.
func meanPercent(quizzes []QuizResult) float64 {
	var sum float64
	n := 0
	for _, q := range quizzes {
		pct, ok := q.Percent()
		if !ok {
			continue
		}
		sum += pct
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
