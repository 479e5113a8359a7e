package progress

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		day  string
		want string
	}{
		{"2024-05-06", "2024-05-06"}, // Monday
		{"2024-05-10", "2024-05-06"},
		{"2024-05-12", "2024-05-06"}, // Sunday closes the week
		{"2024-05-01", "2024-04-29"},
	}
	for _, tt := range tests {
		day, err := time.Parse(DateLayout, tt.day)
		require.NoError(t, err)
		assert.Equal(t, tt.want, WeekStart(day.Add(15*time.Hour)).Format(DateLayout), tt.day)
	}
}

func TestGoalProgressOf_CountsThisWeekOnly(t *testing.T) {
	friday := time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC)
	goal := WeeklyGoal{Description: "Study Math for 5h", TotalHours: 5}

	gp := GoalProgressOf(goal, SampleData(friday).StudyHistory, friday)

	// Monday through Friday: 25 + 75 + 25 + 50 minutes.
	assert.Equal(t, "2024-05-06", gp.WeekStart)
	assert.InDelta(t, 175.0/60, gp.CompletedHours, 1e-9)
	assert.InDelta(t, 175.0/60/5*100, gp.Percent, 1e-9)
	assert.False(t, gp.Done())
}

func TestGoalProgressOf_CapsAtTarget(t *testing.T) {
	friday := time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC)
	sessions := []StudySession{
		{Date: "2024-05-07", Minutes: 120, Rating: RatingDeep},
		{Date: "2024-05-11", Minutes: 600, Rating: RatingDeep}, // after today
	}

	gp := GoalProgressOf(WeeklyGoal{Description: "Light week", TotalHours: 1.5}, sessions, friday)

	assert.Equal(t, 1.5, gp.CompletedHours)
	assert.Equal(t, 100.0, gp.Percent)
	assert.True(t, gp.Done())
}

func TestValidateWeeklyGoal(t *testing.T) {
	assert.NoError(t, ValidateWeeklyGoal(WeeklyGoal{Description: "Revise biology", TotalHours: 4}))

	for _, g := range []WeeklyGoal{
		{TotalHours: 4},
		{Description: "Nothing", TotalHours: 0},
		{Description: "Too much", TotalHours: 200},
	} {
		err := ValidateWeeklyGoal(g)
		var ve *ValidationError
		require.Error(t, err)
		assert.True(t, errors.As(err, &ve), "%+v", g)
	}
}
