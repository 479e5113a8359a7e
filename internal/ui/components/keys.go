package components

import "charm.land/bubbles/v2/key"

// Shared navigation bindings.
var (
	KeyUp    = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	KeyDown  = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
	KeyLeft  = key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left"))
	KeyRight = key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right"))
	KeyEnter = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select"))
)
