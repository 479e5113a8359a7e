package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation(DateLayout, s, time.UTC)
	require.NoError(t, err)
	return d
}

func TestTrend_WindowAndLabels(t *testing.T) {
	// 2024-05-10 is a Friday.
	got := Trend(Data{}, mustDate(t, "2024-05-10"), 7)

	assert.Equal(t, []string{
		"2024-05-04", "2024-05-05", "2024-05-06", "2024-05-07",
		"2024-05-08", "2024-05-09", "2024-05-10",
	}, got.Dates)
	assert.Equal(t, []string{"Sat", "Sun", "Mon", "Tue", "Wed", "Thu", "Fri"}, got.Labels)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0}, got.StudyMinutesByDay)
	require.Len(t, got.AvgScoreByDay, 7)
	for i, v := range got.AvgScoreByDay {
		assert.Nil(t, v, "day %d should have no score", i)
	}
}

func TestTrend_DistinguishesNoQuizFromZeroScore(t *testing.T) {
	d := Data{
		StudyHistory: []StudySession{
			{Date: "2024-05-10", Minutes: 25, Rating: RatingDeep},
			{Date: "2024-05-10", Minutes: 25, Rating: RatingDistracted},
			{Date: "2024-05-08", Minutes: 15, Rating: RatingDeep},
		},
		QuizHistory: []QuizResult{
			{Date: "2024-05-09", Score: 0, Total: 5},
			{Date: "2024-05-10", Score: 4, Total: 5},
			{Date: "2024-05-10", Score: 1, Total: 2},
		},
	}
	got := Trend(d, mustDate(t, "2024-05-10"), 7)

	assert.Equal(t, []int{0, 0, 0, 0, 15, 0, 50}, got.StudyMinutesByDay)

	assert.Nil(t, got.AvgScoreByDay[4], "no quiz on 05-08")
	require.NotNil(t, got.AvgScoreByDay[5], "zero score on 05-09 must be present")
	assert.Equal(t, 0.0, *got.AvgScoreByDay[5])
	require.NotNil(t, got.AvgScoreByDay[6])
	assert.InDelta(t, 65.0, *got.AvgScoreByDay[6], epsilon)
}

func TestTrend_IgnoresRecordsOutsideWindow(t *testing.T) {
	d := Data{
		StudyHistory: []StudySession{{Date: "2024-04-01", Minutes: 90, Rating: RatingDeep}},
		QuizHistory:  []QuizResult{{Date: "2024-05-11", Score: 1, Total: 1}},
	}
	got := Trend(d, mustDate(t, "2024-05-10"), 7)
	for i := range got.Dates {
		assert.Zero(t, got.StudyMinutesByDay[i])
		assert.Nil(t, got.AvgScoreByDay[i])
	}
}

func TestTrend_DefaultWindow(t *testing.T) {
	got := Trend(Data{}, mustDate(t, "2024-05-10"), 0)
	assert.Len(t, got.Dates, DefaultTrendWindow)

	got = Trend(Data{}, mustDate(t, "2024-05-10"), 14)
	assert.Len(t, got.Dates, 14)
	assert.Equal(t, "2024-04-27", got.Dates[0])
}

func TestTrend_MonthBoundary(t *testing.T) {
	got := Trend(Data{}, mustDate(t, "2024-03-02"), 3)
	assert.Equal(t, []string{"2024-02-29", "2024-03-01", "2024-03-02"}, got.Dates)
}

func TestTrend_SkipsNonPositiveTotal(t *testing.T) {
	d := Data{QuizHistory: []QuizResult{{Date: "2024-05-10", Score: 0, Total: 0}}}
	got := Trend(d, mustDate(t, "2024-05-10"), 1)
	assert.Nil(t, got.AvgScoreByDay[0])
}

func TestSampleData_IsValidAndInWindow(t *testing.T) {
	today := mustDate(t, "2024-05-10")
	d := SampleData(today)
	require.NoError(t, ValidateData(d))

	s := Summarize(d, today, DefaultTrendWindow)
	assert.Equal(t, 250, s.Totals.TotalStudyMinutes)
	assert.Equal(t, 5, s.Totals.TotalQuizzes)
	assert.False(t, s.Focus.IsEmpty())
	assert.NotEmpty(t, s.Subjects)
	assert.Equal(t, 50, s.Trend.StudyMinutesByDay[6])
}
