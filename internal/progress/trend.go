package progress

import "time"

// DefaultTrendWindow is the number of days shown in the trend chart.
const DefaultTrendWindow = 7

// TrendSeries holds per-day values for the trailing window, oldest first.
// AvgScoreByDay is nil for days without a quiz so renderers can tell
// "no quiz taken" apart from a zero score.
type TrendSeries struct {
	Dates             []string   `json:"dates"`
	Labels            []string   `json:"labels"`
	StudyMinutesByDay []int      `json:"studyMinutesByDay"`
	AvgScoreByDay     []*float64 `json:"avgScoreByDay"`
}

// Trend computes daily study minutes and mean quiz score for the windowDays
// calendar days ending with today (inclusive). A non-positive window uses
// DefaultTrendWindow.
func Trend(d Data, today time.Time, windowDays int) TrendSeries {
	if windowDays <= 0 {
		windowDays = DefaultTrendWindow
	}

	minutes := make(map[string]int)
	for _, s := range d.StudyHistory {
		minutes[s.Date] += s.Minutes
	}
	quizzes := make(map[string][]QuizResult)
	for _, q := range d.QuizHistory {
		quizzes[q.Date] = append(quizzes[q.Date], q)
	}

	ts := TrendSeries{
		Dates:             make([]string, 0, windowDays),
		Labels:            make([]string, 0, windowDays),
		StudyMinutesByDay: make([]int, 0, windowDays),
		AvgScoreByDay:     make([]*float64, 0, windowDays),
	}

	y, m, dd := today.Date()
	for i := windowDays - 1; i >= 0; i-- {
		day := time.Date(y, m, dd-i, 0, 0, 0, 0, today.Location())
		key := day.Format(DateLayout)

		ts.Dates = append(ts.Dates, key)
		ts.Labels = append(ts.Labels, day.Format("Mon"))
		ts.StudyMinutesByDay = append(ts.StudyMinutesByDay, minutes[key])
		ts.AvgScoreByDay = append(ts.AvgScoreByDay, dayScore(quizzes[key]))
	}
	return ts
}

func dayScore(quizzes []QuizResult) *float64 {
	var sum float64
	n := 0
	for _, q := range quizzes {
		if pct, ok := q.Percent(); ok {
			sum += pct
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}
