package progress

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 0.001

func TestTotalsOf_ZeroState(t *testing.T) {
	got := TotalsOf(Data{})
	assert.Equal(t, Totals{}, got)
}

func TestTotalsOf(t *testing.T) {
	d := Data{
		StudyHistory: []StudySession{
			{Date: "2024-05-01", Minutes: 25, Rating: RatingDeep},
			{Date: "2024-05-02", Minutes: 50, Rating: RatingDistracted},
		},
		QuizHistory: []QuizResult{
			{Date: "2024-05-01", Subject: "Math", Score: 9, Total: 10},
			{Date: "2024-05-02", Subject: "Math", Score: 1, Total: 2},
		},
	}

	got := TotalsOf(d)
	assert.Equal(t, 75, got.TotalStudyMinutes)
	assert.Equal(t, 2, got.TotalQuizzes)
	assert.InDelta(t, 70.0, got.AverageScorePercent, epsilon)
}

func TestTotalsOf_SkipsNonPositiveTotalInMean(t *testing.T) {
	d := Data{QuizHistory: []QuizResult{
		{Date: "2024-05-01", Score: 3, Total: 4},
		{Date: "2024-05-01", Score: 0, Total: 0},
	}}

	got := TotalsOf(d)
	assert.Equal(t, 2, got.TotalQuizzes)
	assert.InDelta(t, 75.0, got.AverageScorePercent, epsilon)
	assert.False(t, math.IsNaN(got.AverageScorePercent))
}

func TestFocusBreakdownOf(t *testing.T) {
	sessions := []StudySession{
		{Minutes: 25, Rating: RatingDeep},
		{Minutes: 25, Rating: RatingDistracted},
		{Minutes: 50, Rating: RatingDeep},
		{Minutes: 10, Rating: "sleepy"},
	}
	got := FocusBreakdownOf(sessions)
	assert.Equal(t, FocusBreakdown{DeepMinutes: 75, DistractedMinutes: 25}, got)
	assert.False(t, got.IsEmpty())
}

func TestFocusBreakdownOf_Empty(t *testing.T) {
	got := FocusBreakdownOf(nil)
	if !got.IsEmpty() {
		t.Errorf("expected empty breakdown, got %+v", got)
	}
}

func TestSubjectBreakdownOf_PointWeighted(t *testing.T) {
	quizzes := []QuizResult{
		{Subject: "Math", Score: 9, Total: 10},
		{Subject: "Math", Score: 1, Total: 2},
	}
	got := SubjectBreakdownOf(quizzes)
	require.Len(t, got, 1)
	assert.Equal(t, "Math", got[0].Subject)
	assert.Equal(t, 2, got[0].QuizzesTaken)
	// 10/12, not the 70% mean of percentages.
	assert.InDelta(t, 83.333, got[0].AverageScorePercent, epsilon)
}

func TestSubjectBreakdownOf_SortedDescendingStableTies(t *testing.T) {
	quizzes := []QuizResult{
		{Subject: "History", Score: 5, Total: 10},
		{Subject: "Biology", Score: 9, Total: 10},
		{Subject: "Art", Score: 1, Total: 2},
		{Subject: "", Score: 10, Total: 10},
		{Subject: "   ", Score: 10, Total: 10},
	}
	got := SubjectBreakdownOf(quizzes)
	require.Len(t, got, 3)
	assert.Equal(t, "Biology", got[0].Subject)
	assert.Equal(t, "History", got[1].Subject)
	assert.Equal(t, "Art", got[2].Subject)
}

func TestSubjectBreakdownOf_NonPositiveTotalCountedNotScored(t *testing.T) {
	quizzes := []QuizResult{
		{Subject: "Math", Score: 0, Total: 0},
	}
	got := SubjectBreakdownOf(quizzes)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].QuizzesTaken)
	assert.Equal(t, 0.0, got[0].AverageScorePercent)
}

func TestAggregatorsDoNotMutateInput(t *testing.T) {
	d := SampleData(mustDate(t, "2024-05-10"))
	before := Data{
		StudyHistory: append([]StudySession(nil), d.StudyHistory...),
		QuizHistory:  append([]QuizResult(nil), d.QuizHistory...),
	}
	_ = Summarize(d, mustDate(t, "2024-05-10"), 7)
	assert.Equal(t, before, d)
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h 0m"},
		{125, "2h 5m"},
	}
	for _, tt := range tests {
		if got := FormatMinutes(tt.in); got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
