package dashboard

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/smarted/studykit/internal/progress"
)

type staticSource struct {
	data progress.Data
	err  error
}

func (s staticSource) Snapshot(context.Context) (progress.Data, error) {
	return s.data, s.err
}

var friday = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func loaded(t *testing.T, src staticSource) *DashboardScreen {
	t.Helper()
	d := New(src, 7)
	d.now = func() time.Time { return friday }
	cmd := d.Init()
	if cmd == nil {
		t.Fatal("expected load command")
	}
	d.Update(cmd())
	return d
}

func TestDashboardScreen_Loading(t *testing.T) {
	d := New(staticSource{}, 7)
	if !strings.Contains(d.View(100, 30), "Loading") {
		t.Error("expected loading state before data arrives")
	}
}

func TestDashboardScreen_ShowsSummary(t *testing.T) {
	d := loaded(t, staticSource{data: progress.SampleData(friday)})

	view := ansi.Strip(d.View(100, 60))
	for _, want := range []string{"Study time", "4h 10m", "Last 7 days", "Mathematics"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDashboardScreen_EmptyHistory(t *testing.T) {
	d := loaded(t, staticSource{})

	view := ansi.Strip(d.View(100, 60))
	if !strings.Contains(view, "No focus sessions recorded yet") {
		t.Error("expected neutral focus state for empty history")
	}
}

func TestDashboardScreen_LoadError(t *testing.T) {
	d := loaded(t, staticSource{err: errors.New("locked")})

	if !strings.Contains(d.View(100, 30), "locked") {
		t.Error("expected load error in view")
	}
}

func TestDashboardScreen_ScrollClamps(t *testing.T) {
	d := loaded(t, staticSource{data: progress.SampleData(friday)})

	for i := 0; i < 100; i++ {
		d.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	d.View(100, 10)
	if d.offset == 0 || d.offset >= 100 {
		t.Errorf("offset = %d, want clamped to content", d.offset)
	}

	d.Update(tea.KeyPressMsg{Code: 'r'})
	if d.summary == nil {
		t.Error("refresh should keep the current summary until reload")
	}
}
