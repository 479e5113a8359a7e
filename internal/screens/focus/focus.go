// Package focus is the Pomodoro screen. Rated work blocks are saved as
// study sessions.
package focus

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	pomo "github.com/smarted/studykit/internal/focus"
	"github.com/smarted/studykit/internal/progress"
	"github.com/smarted/studykit/internal/screen"
	"github.com/smarted/studykit/internal/ui/components"
	"github.com/smarted/studykit/internal/ui/layout"
	"github.com/smarted/studykit/internal/ui/theme"
)

// SessionRecorder persists finished study sessions.
type SessionRecorder interface {
	AddStudySession(ctx context.Context, s progress.StudySession) error
}

// tickMsg is sent every second while the screen is active.
type tickMsg time.Time

// ratedMsg carries the rating picked for a finished work block.
type ratedMsg struct {
	Rating progress.Rating
}

// savedMsg reports the outcome of persisting a session.
type savedMsg struct {
	Session progress.StudySession
	Err     error
}

var (
	keyToggle = key.NewBinding(key.WithKeys("space", "p"), key.WithHelp("space", "pause"))
	keyReset  = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset"))
	keyStop   = key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings"))
)

// FocusScreen runs the Pomodoro timer.
type FocusScreen struct {
	timer    *pomo.Timer
	recorder SessionRecorder
	now      func() time.Time

	preset  int
	rating  components.ButtonRow
	notice  string
	errMsg  string
	minutes int // minutes saved this visit
}

var _ screen.Screen = (*FocusScreen)(nil)
var _ screen.KeyHintProvider = (*FocusScreen)(nil)

// New creates the Pomodoro screen starting from cfg. recorder may be nil,
// in which case sessions are not saved.
func New(cfg pomo.Config, recorder SessionRecorder) *FocusScreen {
	timer, err := pomo.NewTimer(cfg)
	if err != nil {
		timer, _ = pomo.NewTimer(pomo.DefaultConfig())
	}

	s := &FocusScreen{
		timer:    timer,
		recorder: recorder,
		now:      time.Now,
		preset:   -1,
	}
	for i, p := range pomo.Presets {
		if p == timer.Config() {
			s.preset = i
		}
	}
	s.rating = components.NewButtonRow(
		components.NewButton("Deep Focus", false, rateCmd(progress.RatingDeep)),
		components.NewButton("Distracted", false, rateCmd(progress.RatingDistracted)),
	)
	return s
}

func rateCmd(r progress.Rating) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return ratedMsg{Rating: r} }
	}
}

func (s *FocusScreen) Init() tea.Cmd {
	return tickCmd()
}

func (s *FocusScreen) Title() string {
	return "Focus Timer"
}

func (s *FocusScreen) KeyHints() []layout.KeyHint {
	switch s.timer.Phase() {
	case pomo.PhaseSetup:
		return []layout.KeyHint{
			{Key: "←→", Description: "Preset"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case pomo.PhaseRating:
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Save rating"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Pause/Resume"},
		{Key: "R", Description: "Reset"},
		{Key: "S", Description: "Settings"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *FocusScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if s.timer.Tick(time.Second) {
			s.notice = phaseNotice(s.timer.Phase())
		}
		return s, tickCmd()

	case ratedMsg:
		return s, s.rate(msg.Rating)

	case savedMsg:
		if msg.Err != nil {
			s.errMsg = fmt.Sprintf("Could not save session: %v", msg.Err)
			return s, nil
		}
		s.errMsg = ""
		s.minutes += msg.Session.Minutes
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *FocusScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.timer.Phase() {
	case pomo.PhaseSetup:
		switch {
		case key.Matches(msg, components.KeyLeft):
			s.choosePreset(s.preset - 1)
		case key.Matches(msg, components.KeyRight):
			s.choosePreset(s.preset + 1)
		case key.Matches(msg, components.KeyEnter):
			if err := s.timer.Start(); err == nil {
				s.notice = ""
			}
		}
	case pomo.PhaseRating:
		var cmd tea.Cmd
		s.rating, cmd = s.rating.Update(msg)
		return s, cmd
	default:
		switch {
		case key.Matches(msg, keyToggle):
			s.timer.Toggle()
		case key.Matches(msg, keyReset):
			s.timer.Reset()
			s.notice = ""
		case key.Matches(msg, keyStop):
			s.timer.Stop()
			s.notice = ""
		}
	}
	return s, nil
}

func (s *FocusScreen) choosePreset(i int) {
	if i < 0 || i >= len(pomo.Presets) {
		return
	}
	if err := s.timer.SetConfig(pomo.Presets[i]); err == nil {
		s.preset = i
	}
}

func (s *FocusScreen) rate(r progress.Rating) tea.Cmd {
	session, err := s.timer.Rate(r, s.now())
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.notice = "Session saved. Enjoy your break!"
	if s.recorder == nil {
		return nil
	}
	recorder := s.recorder
	return func() tea.Msg {
		err := recorder.AddStudySession(context.Background(), session)
		return savedMsg{Session: session, Err: err}
	}
}

func phaseNotice(p pomo.Phase) string {
	switch p {
	case pomo.PhaseRating:
		return "Work session over! Time for a break."
	case pomo.PhaseWork:
		return "Break is over! Back to work."
	}
	return ""
}

func (s *FocusScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch s.timer.Phase() {
	case pomo.PhaseSetup:
		body = s.renderSetup(cw)
	case pomo.PhaseRating:
		body = s.renderRating()
	default:
		body = s.renderCountdown(cw)
	}

	sections := []string{theme.Title.Render("Pomodoro Timer"), components.Card(body, cw)}
	if s.notice != "" {
		sections = append(sections, theme.Notice.Render(s.notice))
	}
	if s.errMsg != "" {
		sections = append(sections, theme.ErrorText.Render(s.errMsg))
	}
	if s.timer.Completed() > 0 {
		sections = append(sections, theme.Hint.Render(fmt.Sprintf(
			"%d session(s) completed, %s recorded", s.timer.Completed(), progress.FormatMinutes(s.minutes))))
	}

	return components.Centered(lipgloss.JoinVertical(lipgloss.Center, sections...), width, height)
}

func (s *FocusScreen) renderSetup(cw int) string {
	var presets []string
	for i, p := range pomo.Presets {
		if i > 0 {
			presets = append(presets, "  ")
		}
		label := fmt.Sprintf("%d min work\n%d min break", p.WorkMinutes, p.BreakMinutes)
		presets = append(presets, components.MenuButton(label, i == s.preset, false, (cw-10)/2))
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		theme.Subtitle.Render("Choose a session preset"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, presets...),
		"",
		theme.Hint.Render("Press Enter to start"),
	)
}

func (s *FocusScreen) renderCountdown(cw int) string {
	mode := strings.ToUpper(s.timer.Phase().String())
	fill := theme.WorkPhase
	if s.timer.Phase() == pomo.PhaseBreak {
		fill = theme.BreakPhase
	}

	clock := theme.Value.Render(pomo.FormatClock(s.timer.Remaining()))
	state := ""
	if !s.timer.Running() {
		state = theme.Warning.Render("paused")
	}

	bar := components.ProgressBar{Fraction: s.timer.Fraction(), Width: cw - 8, Fill: fill}
	return lipgloss.JoinVertical(lipgloss.Center,
		clock,
		theme.Label.Render(mode),
		"",
		bar.View(),
		state,
	)
}

func (s *FocusScreen) renderRating() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		theme.Value.Render("Session Complete!"),
		theme.Subtitle.Render("How was your focus during that session?"),
		"",
		s.rating.View(),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
