package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestIsCompact(t *testing.T) {
	if IsCompact(120, 40) {
		t.Error("120x40 should use the full layout")
	}
	if !IsCompact(90, 40) || !IsCompact(120, 25) {
		t.Error("narrow or short terminals should be compact")
	}
}

func TestRenderHeader_ShowsTitleAndStatus(t *testing.T) {
	out := ansi.Strip(RenderHeader("Focus Timer", "Fri 10 May", 80))
	for _, want := range []string{"studykit", "Focus Timer", "Fri 10 May"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
}

func TestRenderFooter_DropsHintsThatDoNotFit(t *testing.T) {
	hints := []KeyHint{
		{Key: "Space", Description: "Pause/Resume"},
		{Key: "R", Description: "Reset"},
		{Key: "S", Description: "Settings"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}

	wide := ansi.Strip(RenderFooter(hints, 120))
	if !strings.Contains(wide, "Settings") {
		t.Errorf("wide footer should show every hint:\n%s", wide)
	}

	narrow := ansi.Strip(RenderFooter(hints, 40))
	if !strings.Contains(narrow, "Pause/Resume") || !strings.Contains(narrow, "Quit") {
		t.Errorf("narrow footer should keep the first and last hints:\n%s", narrow)
	}
	if strings.Contains(narrow, "Settings") {
		t.Errorf("narrow footer should drop middle hints:\n%s", narrow)
	}
}
