package home

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	pomo "github.com/smarted/studykit/internal/focus"
	"github.com/smarted/studykit/internal/llm"
	"github.com/smarted/studykit/internal/progress"
	"github.com/smarted/studykit/internal/router"
	"github.com/smarted/studykit/internal/store"
)

type memStore struct {
	data progress.Data
	goal *progress.WeeklyGoal
}

func (m *memStore) Snapshot(context.Context) (progress.Data, error) { return m.data, nil }

func (m *memStore) WeeklyGoal(context.Context) (progress.WeeklyGoal, error) {
	if m.goal == nil {
		return progress.WeeklyGoal{}, store.ErrNotFound
	}
	return *m.goal, nil
}

func (m *memStore) AddStudySession(_ context.Context, s progress.StudySession) error {
	m.data.StudyHistory = append(m.data.StudyHistory, s)
	return nil
}

var friday = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func newTestHome(coach bool) (*HomeScreen, *memStore) {
	st := &memStore{data: progress.SampleData(friday)}
	opts := Options{Progress: st, Focus: pomo.DefaultConfig(), TrendWindow: 7}
	if coach {
		opts.Coach = func(context.Context, []llm.Message, string) (string, error) { return "ok", nil }
	}
	h := New(opts)
	h.now = func() time.Time { return friday }
	return h, st
}

func TestHomeScreen_LoadsStats(t *testing.T) {
	h, _ := newTestHome(true)

	cmd := h.Init()
	if cmd == nil {
		t.Fatal("expected stats command")
	}
	h.Update(cmd())

	if h.stats.todayMinutes != 50 || h.stats.totalMinutes != 250 || h.stats.quizzes != 5 {
		t.Errorf("stats = %+v", h.stats)
	}
	view := ansi.Strip(h.View(120, 40))
	if !strings.Contains(view, "50m TODAY") || !strings.Contains(view, "4h 10m TOTAL") {
		t.Errorf("stats bar missing from view:\n%s", view)
	}
}

func TestHomeScreen_ShowsWeeklyGoal(t *testing.T) {
	h, st := newTestHome(true)
	h.Update(h.Init()())
	if h.stats.goal != nil {
		t.Fatalf("goal = %+v, want none", h.stats.goal)
	}
	if strings.Contains(ansi.Strip(h.View(120, 40)), "WEEKLY GOAL") {
		t.Error("goal shown without a goal set")
	}

	st.goal = &progress.WeeklyGoal{Description: "Study Math", TotalHours: 5}
	h.Update(h.Resume()())

	if h.stats.goal == nil {
		t.Fatal("expected goal progress")
	}
	// Monday through Friday of the sample week: 175 minutes.
	if got := h.stats.goal.CompletedHours; got < 2.91 || got > 2.92 {
		t.Errorf("completed hours = %v", got)
	}
	view := ansi.Strip(h.View(120, 40))
	if !strings.Contains(view, "WEEKLY GOAL: Study Math") || !strings.Contains(view, "2.9 / 5.0h") {
		t.Errorf("goal missing from view:\n%s", view)
	}
	if h.statsError {
		t.Error("unexpected stats error")
	}
}

func TestHomeScreen_ResumeRefreshes(t *testing.T) {
	h, st := newTestHome(true)
	h.Update(h.Init()())

	st.data.StudyHistory = append(st.data.StudyHistory,
		progress.StudySession{Date: "2024-05-10", Minutes: 25, Rating: progress.RatingDeep})
	h.Update(h.Resume()())

	if h.stats.todayMinutes != 75 {
		t.Errorf("todayMinutes = %d, want 75", h.stats.todayMinutes)
	}
}

func TestHomeScreen_MenuPushesScreens(t *testing.T) {
	h, _ := newTestHome(true)

	titles := []string{"Focus Timer", "Progress", "Study Coach"}
	for i, want := range titles {
		if i > 0 {
			h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		}
		_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		if cmd == nil {
			t.Fatalf("item %d: expected a command", i)
		}
		push, ok := cmd().(router.PushScreenMsg)
		if !ok {
			t.Fatalf("item %d: expected PushScreenMsg", i)
		}
		if got := push.Screen.Title(); got != want {
			t.Errorf("item %d pushed %q, want %q", i, got, want)
		}
	}
}

func TestHomeScreen_CoachDisabledWithoutLLM(t *testing.T) {
	h, _ := newTestHome(false)

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if h.menu.Selected != 3 {
		t.Errorf("selected = %d, want 3 (coach skipped)", h.menu.Selected)
	}
	if !strings.Contains(ansi.Strip(h.View(120, 40)), "GEMINI_API_KEY") {
		t.Error("expected API key banner")
	}
}
