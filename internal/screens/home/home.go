package home

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	pomo "github.com/smarted/studykit/internal/focus"
	"github.com/smarted/studykit/internal/progress"
	"github.com/smarted/studykit/internal/router"
	"github.com/smarted/studykit/internal/screen"
	"github.com/smarted/studykit/internal/screens/chat"
	"github.com/smarted/studykit/internal/screens/dashboard"
	"github.com/smarted/studykit/internal/screens/focus"
	"github.com/smarted/studykit/internal/store"
	"github.com/smarted/studykit/internal/ui/components"
	"github.com/smarted/studykit/internal/ui/layout"
	"github.com/smarted/studykit/internal/ui/theme"
)

// ProgressStore is the part of the progress repository the TUI uses.
type ProgressStore interface {
	Snapshot(ctx context.Context) (progress.Data, error)
	AddStudySession(ctx context.Context, s progress.StudySession) error
	// WeeklyGoal returns store.ErrNotFound when no goal is set.
	WeeklyGoal(ctx context.Context) (progress.WeeklyGoal, error)
}

// Options wires the home screen to its dependencies.
type Options struct {
	Progress    ProgressStore
	Focus       pomo.Config
	TrendWindow int
	// Coach answers chat messages; nil disables the study coach.
	Coach chat.Responder
}

// stats are the headline numbers on the home screen.
type stats struct {
	todayMinutes int
	totalMinutes int
	quizzes      int
	avgScore     float64
	// goal is nil when no weekly goal is set.
	goal *progress.GoalProgress
}

type statsMsg struct {
	stats stats
	err   error
	// goalErr is set when the history loaded but the goal did not.
	goalErr error
}

// HomeScreen is the main menu.
type HomeScreen struct {
	opts       Options
	menu       components.Menu
	stats      stats
	statsError bool
	now        func() time.Time
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates the home screen.
func New(opts Options) *HomeScreen {
	h := &HomeScreen{opts: opts, now: time.Now}

	items := []components.MenuItem{
		{Label: "FOCUS TIMER", Action: func() tea.Cmd {
			return router.PushCmd(focus.New(opts.Focus, opts.Progress))
		}},
		{Label: "PROGRESS", Action: func() tea.Cmd {
			return router.PushCmd(dashboard.New(opts.Progress, opts.TrendWindow))
		}},
		{Label: "STUDY COACH", Disabled: opts.Coach == nil, Action: func() tea.Cmd {
			return router.PushCmd(chat.New("Study Coach", opts.Coach))
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// Resume reloads the stats after returning from another screen.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	if h.opts.Progress == nil {
		return nil
	}
	repo, now := h.opts.Progress, h.now()
	return func() tea.Msg {
		ctx := context.Background()
		data, err := repo.Snapshot(ctx)
		if err != nil {
			return statsMsg{err: err}
		}
		st := computeStats(data, now.Format(progress.DateLayout))

		goal, err := repo.WeeklyGoal(ctx)
		switch {
		case err == nil:
			gp := progress.GoalProgressOf(goal, data.StudyHistory, now)
			st.goal = &gp
		case !errors.Is(err, store.ErrNotFound):
			return statsMsg{stats: st, goalErr: err}
		}
		return statsMsg{stats: st}
	}
}

func computeStats(d progress.Data, today string) stats {
	totals := progress.TotalsOf(d)
	st := stats{
		totalMinutes: totals.TotalStudyMinutes,
		quizzes:      totals.TotalQuizzes,
		avgScore:     totals.AverageScorePercent,
	}
	for _, s := range d.StudyHistory {
		if s.Date == today {
			st.todayMinutes += s.Minutes
		}
	}
	return st
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsMsg); ok {
		h.statsError = msg.err != nil || msg.goalErr != nil
		if msg.err == nil {
			h.stats = msg.stats
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height excludes header and footer
	compact := layout.IsCompact(width, height+layout.HeaderHeight+layout.FooterHeight)
	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(h.stats, cw, compact),
	}
	if h.stats.goal != nil {
		sections = append(sections, renderGoal(*h.stats.goal, cw))
	}
	sections = append(sections, h.menu.View(22))
	if h.statsError {
		sections = append(sections, theme.Hint.Render("Could not load your progress."))
	}
	if h.opts.Coach == nil {
		sections = append(sections, renderLLMBanner(cw))
	}

	return components.Centered(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
