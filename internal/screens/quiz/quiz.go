// Package quiz is the interactive quiz screen. The graded attempt is saved
// as a quiz result when the last question is answered.
package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/smarted/studykit/internal/progress"
	qz "github.com/smarted/studykit/internal/quiz"
	"github.com/smarted/studykit/internal/router"
	"github.com/smarted/studykit/internal/screen"
	"github.com/smarted/studykit/internal/ui/components"
	"github.com/smarted/studykit/internal/ui/layout"
	"github.com/smarted/studykit/internal/ui/theme"
)

// ResultRecorder persists graded quizzes.
type ResultRecorder interface {
	AddQuizResult(ctx context.Context, q progress.QuizResult) error
}

type savedMsg struct {
	Err error
}

// QuizScreen walks through a list of questions.
type QuizScreen struct {
	questions []qz.Question
	subject   string
	recorder  ResultRecorder
	now       func() time.Time
	onDone    func() tea.Cmd

	index   int
	choice  components.MultiChoice
	answers []string

	finished bool
	result   progress.QuizResult
	saved    bool
	errMsg   string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen. recorder may be nil. When the quiz is over,
// Enter runs onDone, which defaults to popping the screen.
func New(questions []qz.Question, subject string, recorder ResultRecorder, onDone func() tea.Cmd) *QuizScreen {
	if onDone == nil {
		onDone = router.PopCmd
	}
	s := &QuizScreen{
		questions: questions,
		subject:   subject,
		recorder:  recorder,
		now:       time.Now,
		onDone:    onDone,
	}
	s.loadQuestion()
	return s
}

func (s *QuizScreen) loadQuestion() {
	if s.index >= len(s.questions) {
		return
	}
	q := s.questions[s.index]
	correct := -1
	for i, o := range q.Options {
		if qz.IsCorrect(q, o) {
			correct = i
			break
		}
	}
	s.choice = components.NewMultiChoice(q.Question, q.Options, correct)
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	if s.subject != "" {
		return s.subject + " Quiz"
	}
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.finished:
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	case s.choice.Submitted:
		return []layout.KeyHint{{Key: "Enter", Description: "Next question"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "A-D", Description: "Pick"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.Err != nil {
			s.errMsg = fmt.Sprintf("Could not save result: %v", msg.Err)
		} else {
			s.saved = true
		}
		return s, nil

	case tea.KeyMsg:
		if s.finished {
			if key.Matches(msg, components.KeyEnter) {
				return s, s.onDone()
			}
			return s, nil
		}
		if s.choice.Submitted && key.Matches(msg, components.KeyEnter) {
			return s, s.next()
		}
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		return s, cmd
	}
	return s, nil
}

// next records the current answer and moves on, grading after the last
// question.
func (s *QuizScreen) next() tea.Cmd {
	s.answers = append(s.answers, s.choice.Chosen())
	s.index++
	if s.index < len(s.questions) {
		s.loadQuestion()
		return nil
	}

	s.finished = true
	s.result = qz.Grade(s.questions, s.answers, s.subject, s.now())
	if s.recorder == nil || s.result.Total == 0 {
		return nil
	}
	recorder, result := s.recorder, s.result
	return func() tea.Msg {
		return savedMsg{Err: recorder.AddQuizResult(context.Background(), result)}
	}
}

// Result returns the graded attempt once the quiz is finished.
func (s *QuizScreen) Result() (progress.QuizResult, bool) {
	return s.result, s.finished
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if len(s.questions) == 0 {
		return components.Centered(theme.Hint.Render("This quiz has no questions."), width, height)
	}
	if s.finished {
		return components.Centered(s.renderResult(cw), width, height)
	}

	counter := theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", s.index+1, len(s.questions)))
	body := []string{counter, "", lipgloss.NewStyle().Width(cw).Render(s.choice.View())}
	if s.choice.Submitted {
		if s.choice.IsCorrect() {
			body = append(body, theme.Correct.Render("Correct!"))
		} else {
			body = append(body, theme.Incorrect.Render("Not quite. The answer is "+s.questions[s.index].Answer))
		}
	}
	return components.Centered(strings.Join(body, "\n"), width, height)
}

func (s *QuizScreen) renderResult(cw int) string {
	pct, _ := s.result.Percent()
	score := lipgloss.NewStyle().Bold(true).Foreground(theme.Highlight).
		Render(fmt.Sprintf("%d / %d  (%.0f%%)", s.result.Score, s.result.Total, pct))

	lines := []string{theme.Title.Render("Quiz complete!"), "", score}
	switch {
	case s.errMsg != "":
		lines = append(lines, "", theme.ErrorText.Render(s.errMsg))
	case s.saved:
		lines = append(lines, "", theme.Hint.Render("Result saved to your progress."))
	}
	return components.Card(strings.Join(lines, "\n"), cw)
}
