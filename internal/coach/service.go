// Package coach is the study coach: open chat, weekly study plans and
// Feynman-technique feedback.
package coach

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smarted/studykit/internal/llm"
)

// Weekdays lists the day names accepted in a study plan request.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ErrEmptyInput is returned when a required text field is blank.
var ErrEmptyInput = errors.New("input is empty")

// Service runs coaching requests.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a coach service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Chat sends message with the most recent turns of history and returns the
// coach's reply.
func (s *Service) Chat(ctx context.Context, history []llm.Message, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyInput
	}
	if s.cfg.MaxHistory >= 0 && len(history) > s.cfg.MaxHistory {
		history = history[len(history)-s.cfg.MaxHistory:]
	}

	msgs := make([]llm.Message, 0, len(history)+1)
	msgs = append(msgs, history...)
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: message})

	ctx = llm.WithPurpose(ctx, llm.PurposeCoachChat)
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      chatSystemPrompt,
		Messages:    msgs,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("study coach: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

// StudyPlan builds a weekly schedule for the given days and goals. Day
// names are matched case-insensitively and deduplicated in week order.
func (s *Service) StudyPlan(ctx context.Context, days []string, goals string) (*Plan, error) {
	week, err := NormalizeDays(days)
	if err != nil {
		return nil, err
	}
	goals = strings.TrimSpace(goals)
	if goals == "" {
		return nil, fmt.Errorf("goals: %w", ErrEmptyInput)
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeCoachPlan)
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: planSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPlanUserMessage(week, goals)},
		},
		Schema:      PlanSchema,
		MaxTokens:   2048,
		Temperature: 0.5,
	})
	if err != nil {
		return nil, fmt.Errorf("study plan: %w", err)
	}

	plan, err := llm.Decode[Plan](resp)
	if err != nil {
		return nil, fmt.Errorf("parse study plan: %w", err)
	}
	return &plan, nil
}

// NormalizeDays canonicalises day names into week order.
func NormalizeDays(days []string) ([]string, error) {
	chosen := make(map[string]bool)
	for _, d := range days {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		found := false
		for _, w := range Weekdays {
			if strings.EqualFold(d, w) || strings.EqualFold(d, w[:3]) {
				chosen[w] = true
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown day %q", d)
		}
	}
	if len(chosen) == 0 {
		return nil, fmt.Errorf("days: %w", ErrEmptyInput)
	}

	out := make([]string, 0, len(chosen))
	for _, w := range Weekdays {
		if chosen[w] {
			out = append(out, w)
		}
	}
	return out, nil
}

// EvaluateFeynman grades a plain-language explanation of concept.
func (s *Service) EvaluateFeynman(ctx context.Context, concept, explanation string) (*FeynmanEvaluation, error) {
	concept = strings.TrimSpace(concept)
	explanation = strings.TrimSpace(explanation)
	if concept == "" {
		return nil, fmt.Errorf("concept: %w", ErrEmptyInput)
	}
	if explanation == "" {
		return nil, fmt.Errorf("explanation: %w", ErrEmptyInput)
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeCoachFeynman)
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: feynmanSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildFeynmanUserMessage(concept, explanation)},
		},
		Schema:      FeynmanSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("feynman evaluation: %w", err)
	}

	eval, err := llm.Decode[FeynmanEvaluation](resp)
	if err != nil {
		return nil, fmt.Errorf("parse feynman evaluation: %w", err)
	}
	if eval.ClarityScore < 1 || eval.ClarityScore > 10 {
		return nil, fmt.Errorf("parse feynman evaluation: %w", &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("clarity score %d out of range", eval.ClarityScore),
		})
	}
	return &eval, nil
}
