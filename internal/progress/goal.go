package progress

import "time"

// WeeklyGoal is the study target the student sets for the current week.
type WeeklyGoal struct {
	Description string  `json:"description" validate:"required,max=200"`
	TotalHours  float64 `json:"totalHours" validate:"gt=0,lte=168"`
}

// GoalProgress is a weekly goal measured against this week's sessions.
type GoalProgress struct {
	Goal WeeklyGoal `json:"goal"`
	// WeekStart is the Monday the week began, as YYYY-MM-DD.
	WeekStart      string  `json:"weekStart"`
	CompletedHours float64 `json:"completedHours"`
	Percent        float64 `json:"percent"`
}

// Done reports whether the target has been reached.
func (g GoalProgress) Done() bool {
	return g.CompletedHours >= g.Goal.TotalHours
}

// ValidateWeeklyGoal checks a goal before it is saved.
func ValidateWeeklyGoal(g WeeklyGoal) error {
	return check("weekly goal", g)
}

// WeekStart returns the Monday of the week containing today, at midnight in
// today's location.
func WeekStart(today time.Time) time.Time {
	y, m, d := today.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	offset := (int(midnight.Weekday()) + 6) % 7
	return midnight.AddDate(0, 0, -offset)
}

// GoalProgressOf sums the study minutes recorded from Monday through today.
// Completed hours never exceed the target.
func GoalProgressOf(g WeeklyGoal, sessions []StudySession, today time.Time) GoalProgress {
	from := WeekStart(today).Format(DateLayout)
	to := today.Format(DateLayout)

	minutes := 0
	for _, s := range sessions {
		if s.Date >= from && s.Date <= to {
			minutes += s.Minutes
		}
	}

	gp := GoalProgress{Goal: g, WeekStart: from}
	if g.TotalHours <= 0 {
		return gp
	}
	gp.CompletedHours = min(float64(minutes)/60, g.TotalHours)
	gp.Percent = gp.CompletedHours / g.TotalHours * 100
	return gp
}
