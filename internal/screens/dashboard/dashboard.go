// Package dashboard shows the progress summary in the TUI.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/smarted/studykit/internal/progress"
	"github.com/smarted/studykit/internal/report"
	"github.com/smarted/studykit/internal/screen"
	"github.com/smarted/studykit/internal/ui/components"
	"github.com/smarted/studykit/internal/ui/layout"
	"github.com/smarted/studykit/internal/ui/theme"
)

// Snapshotter loads the study history.
type Snapshotter interface {
	Snapshot(ctx context.Context) (progress.Data, error)
}

type loadedMsg struct {
	Summary progress.Summary
	Err     error
}

var keyRefresh = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh"))

// DashboardScreen renders the progress dashboard with vertical scrolling.
type DashboardScreen struct {
	source Snapshotter
	window int
	now    func() time.Time

	summary *progress.Summary
	errMsg  string
	offset  int
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a dashboard over source for a trend of windowDays.
func New(source Snapshotter, windowDays int) *DashboardScreen {
	return &DashboardScreen{source: source, window: windowDays, now: time.Now}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return d.load()
}

func (d *DashboardScreen) Title() string {
	return "Progress"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DashboardScreen) load() tea.Cmd {
	source, window, now := d.source, d.window, d.now()
	return func() tea.Msg {
		data, err := source.Snapshot(context.Background())
		if err != nil {
			return loadedMsg{Err: err}
		}
		return loadedMsg{Summary: progress.Summarize(data, now, window)}
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.Err != nil {
			d.errMsg = fmt.Sprintf("Could not load progress: %v", msg.Err)
			return d, nil
		}
		d.errMsg = ""
		d.summary = &msg.Summary
		return d, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, components.KeyUp):
			if d.offset > 0 {
				d.offset--
			}
		case key.Matches(msg, components.KeyDown):
			d.offset++
		case key.Matches(msg, keyRefresh):
			return d, d.load()
		}
	}
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	if d.errMsg != "" {
		return components.Centered(theme.ErrorText.Render(d.errMsg), width, height)
	}
	if d.summary == nil {
		return components.Centered(theme.Hint.Render("Loading progress..."), width, height)
	}

	inner := min(width-4, 100)
	lines := strings.Split(report.Dashboard(*d.summary, inner), "\n")

	// Clamp the scroll offset to the content.
	maxOffset := max(len(lines)-height, 0)
	if d.offset > maxOffset {
		d.offset = maxOffset
	}
	end := min(d.offset+height, len(lines))
	visible := strings.Join(lines[d.offset:end], "\n")

	return lipgloss.NewStyle().Padding(0, 2).Render(visible)
}
