// Package quiz generates multiple-choice quizzes and grades attempts.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/smarted/studykit/internal/llm"
)

var (
	// ErrInvalidQuiz is returned when a generated quiz is unusable.
	ErrInvalidQuiz = errors.New("invalid quiz")
	// ErrEmptyContent is returned when there is no text to quiz on.
	ErrEmptyContent = errors.New("content is empty")
)

// Service generates quizzes.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a quiz service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate writes a curriculum quiz for a grade and subject.
func (s *Service) Generate(ctx context.Context, grade int, subject string) ([]Question, error) {
	subject = strings.TrimSpace(subject)
	if grade < 1 || grade > 12 {
		return nil, fmt.Errorf("grade must be between 1 and 12, got %d", grade)
	}
	if subject == "" {
		return nil, errors.New("subject is required")
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeQuizCurriculum)
	return s.generate(ctx, curriculumSystemPrompt, buildCurriculumUserMessage(grade, subject))
}

// FromContent writes a five-question quiz from a document.
func (s *Service) FromContent(ctx context.Context, content string) ([]Question, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeQuizContent)
	content = truncate(content, s.cfg.MaxContentChars)
	return s.generate(ctx, contentSystemPrompt, buildContentUserMessage(content, "5"))
}

// FromSelection writes a short quiz on a passage the student highlighted.
func (s *Service) FromSelection(ctx context.Context, selection string) ([]Question, error) {
	selection = strings.TrimSpace(selection)
	if selection == "" {
		return nil, ErrEmptyContent
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeQuizSelection)
	return s.generate(ctx, contentSystemPrompt, buildContentUserMessage(selection, "2 to 4"))
}

func (s *Service) generate(ctx context.Context, system, user string) ([]Question, error) {
	req := llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: user},
		},
		Schema:      QuizSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	out, err := llm.Decode[Quiz](resp)
	if err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}

	if err := Check(out.Questions); err != nil {
		return nil, err
	}
	return out.Questions, nil
}

// Check reports whether every question has text, at least two options and
// an answer that is one of its options.
func Check(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidQuiz)
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return fmt.Errorf("%w: question %d has no text", ErrInvalidQuiz, i+1)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("%w: question %d has %d options", ErrInvalidQuiz, i+1, len(q.Options))
		}
		if optionIndex(q, q.Answer) < 0 {
			return fmt.Errorf("%w: question %d answer %q is not an option", ErrInvalidQuiz, i+1, q.Answer)
		}
	}
	return nil
}

func optionIndex(q Question, answer string) int {
	answer = strings.TrimSpace(answer)
	for i, o := range q.Options {
		if strings.TrimSpace(o) == answer {
			return i
		}
	}
	return -1
}

// truncate returns the first n runes of s. Non-positive n means no limit.
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
