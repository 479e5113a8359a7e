package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/smarted/studykit/internal/llm"
)

func typeText(c *ChatScreen, s string) {
	for _, r := range s {
		c.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestChatScreen_SendAndReply(t *testing.T) {
	var gotHistory []llm.Message
	var gotMessage string
	c := New("Study Coach", func(_ context.Context, h []llm.Message, m string) (string, error) {
		gotHistory, gotMessage = h, m
		return "Take short breaks.", nil
	})

	typeText(c, "tips")
	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a send command")
	}
	if !c.waiting {
		t.Error("should be waiting for a reply")
	}
	if c.input.Value() != "" {
		t.Error("input should be cleared after sending")
	}

	c.Update(cmd())
	if gotMessage != "tips" || len(gotHistory) != 0 {
		t.Errorf("responder got %q with %d prior turns", gotMessage, len(gotHistory))
	}
	if len(c.History()) != 2 || c.History()[1].Content != "Take short breaks." {
		t.Errorf("history = %+v", c.History())
	}
	if !strings.Contains(ansi.Strip(c.View(100, 30)), "Take short breaks.") {
		t.Error("reply missing from view")
	}
}

func TestChatScreen_ErrorDropsQuestion(t *testing.T) {
	c := New("Study Coach", func(context.Context, []llm.Message, string) (string, error) {
		return "", &llm.ErrRateLimit{Err: errors.New("429")}
	})

	typeText(c, "help")
	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	c.Update(cmd())

	if len(c.History()) != 0 {
		t.Errorf("history = %+v, want empty", c.History())
	}
	if !strings.Contains(c.errMsg, "busy") {
		t.Errorf("errMsg = %q", c.errMsg)
	}
}

func TestChatScreen_IgnoresEmptyInput(t *testing.T) {
	c := New("Study Coach", nil)
	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil || c.waiting {
		t.Error("empty input should not be sent")
	}
}
