// Package chat is a conversational screen for the study coach.
package chat

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/smarted/studykit/internal/llm"
	"github.com/smarted/studykit/internal/screen"
	"github.com/smarted/studykit/internal/ui/components"
	"github.com/smarted/studykit/internal/ui/layout"
	"github.com/smarted/studykit/internal/ui/theme"
)

// Responder produces the assistant's reply to message given the earlier
// turns.
type Responder func(ctx context.Context, history []llm.Message, message string) (string, error)

type replyMsg struct {
	Text string
	Err  error
}

const greeting = "Hi! I'm your study coach. Ask me about study techniques, motivation or planning your week."

// ChatScreen holds one conversation.
type ChatScreen struct {
	title   string
	respond Responder

	history []llm.Message
	input   components.TextInput
	waiting bool
	errMsg  string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a chat screen that answers with respond.
func New(title string, respond Responder) *ChatScreen {
	return &ChatScreen{
		title:   title,
		respond: respond,
		input:   components.NewTextInput("Ask your coach...", 500),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string {
	return c.title
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		c.waiting = false
		if msg.Err != nil {
			c.errMsg = llm.Describe(msg.Err)
			// Drop the unanswered question so history stays paired.
			c.history = c.history[:len(c.history)-1]
			return c, nil
		}
		c.errMsg = ""
		c.history = append(c.history, llm.Message{Role: llm.RoleAssistant, Content: msg.Text})
		return c, nil

	case tea.KeyMsg:
		if key.Matches(msg, components.KeyEnter) {
			return c, c.send()
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) send() tea.Cmd {
	text := c.input.Value()
	if text == "" || c.waiting {
		return nil
	}
	c.input.Reset()
	c.waiting = true

	prior := append([]llm.Message(nil), c.history...)
	c.history = append(c.history, llm.Message{Role: llm.RoleUser, Content: text})

	respond := c.respond
	return func() tea.Msg {
		reply, err := respond(context.Background(), prior, text)
		return replyMsg{Text: reply, Err: err}
	}
}

// History returns the conversation so far.
func (c *ChatScreen) History() []llm.Message {
	return c.history
}

func (c *ChatScreen) View(width, height int) string {
	inner := max(width-4, 20)
	wrap := lipgloss.NewStyle().Width(inner)

	var lines []string
	add := func(s string) {
		lines = append(lines, strings.Split(wrap.Render(s), "\n")...)
	}

	add(theme.Coach.Render("Coach: ") + greeting)
	for _, m := range c.history {
		lines = append(lines, "")
		if m.Role == llm.RoleUser {
			add(theme.Student.Render("You: ") + m.Content)
		} else {
			add(theme.Coach.Render("Coach: ") + m.Content)
		}
	}
	if c.waiting {
		lines = append(lines, "", theme.Hint.Render("Coach is thinking..."))
	}
	if c.errMsg != "" {
		lines = append(lines, "", theme.ErrorText.Render(c.errMsg))
	}

	// Keep the newest lines above the input.
	room := max(height-3, 1)
	if len(lines) > room {
		lines = lines[len(lines)-room:]
	}

	c.input.SetWidth(inner - 2)
	transcript := lipgloss.NewStyle().Height(room).Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().Padding(0, 2).Render(transcript + "\n\n" + c.input.View())
}
