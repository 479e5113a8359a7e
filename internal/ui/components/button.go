package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/smarted/studykit/internal/ui/theme"
)

// Button is a styled button component.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Active:  active,
		OnPress: onPress,
	}
}

// Update presses an active button on enter.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(kmsg, KeyEnter) && b.OnPress != nil {
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}

// ButtonRow holds a horizontal group of buttons with one active at a time.
type ButtonRow struct {
	Buttons []Button
	Active  int
}

// NewButtonRow creates a row with the first button active.
func NewButtonRow(buttons ...Button) ButtonRow {
	r := ButtonRow{Buttons: buttons}
	r.activate(0)
	return r
}

func (r *ButtonRow) activate(i int) {
	r.Active = i
	for j := range r.Buttons {
		r.Buttons[j].Active = j == i
	}
}

// Update moves the focus with left/right and forwards other keys to the
// active button.
func (r ButtonRow) Update(msg tea.Msg) (ButtonRow, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, KeyLeft):
			if r.Active > 0 {
				r.activate(r.Active - 1)
			}
			return r, nil
		case key.Matches(kmsg, KeyRight):
			if r.Active < len(r.Buttons)-1 {
				r.activate(r.Active + 1)
			}
			return r, nil
		}
	}
	if len(r.Buttons) == 0 {
		return r, nil
	}
	var cmd tea.Cmd
	r.Buttons[r.Active], cmd = r.Buttons[r.Active].Update(msg)
	return r, cmd
}

// View renders the buttons side by side.
func (r ButtonRow) View() string {
	views := make([]string, 0, len(r.Buttons)*2)
	for i, b := range r.Buttons {
		if i > 0 {
			views = append(views, "  ")
		}
		views = append(views, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
