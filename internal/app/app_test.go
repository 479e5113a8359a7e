package app

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/smarted/studykit/internal/router"
	"github.com/smarted/studykit/internal/screen"
	"github.com/smarted/studykit/internal/ui/layout"
)

type stubScreen struct {
	title string
	hints []layout.KeyHint
}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "body of " + s.title }
func (s *stubScreen) Title() string                           { return s.title }

type hintedScreen struct{ stubScreen }

func (s *hintedScreen) KeyHints() []layout.KeyHint { return s.hints }

func sized(m AppModel) AppModel {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(AppModel)
}

func TestAppModel_RendersActiveScreen(t *testing.T) {
	m := sized(newAppModel(&stubScreen{title: "Home"}))
	m.now = func() time.Time { return time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC) }

	out := ansi.Strip(m.render())
	for _, want := range []string{"Home", "body of Home", "Fri 10 May", "Navigate"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestAppModel_EscPopsOnlyAboveRoot(t *testing.T) {
	m := sized(newAppModel(&stubScreen{title: "Home"}))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("esc at the root should do nothing")
	}

	m.router.Push(&stubScreen{title: "Child"})
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestAppModel_FooterUsesScreenHints(t *testing.T) {
	m := sized(newAppModel(&stubScreen{title: "Home"}))
	m.router.Push(&hintedScreen{stubScreen{
		title: "Timer",
		hints: []layout.KeyHint{{Key: "Space", Description: "Pause"}},
	}})

	out := ansi.Strip(m.render())
	if !strings.Contains(out, "Pause") || !strings.Contains(out, "Back") {
		t.Errorf("footer should combine screen hints with Back:\n%s", out)
	}
	if strings.Contains(out, "Navigate") {
		t.Error("default hints should be replaced by the screen's")
	}
}
