package quiz

import (
	"strings"
	"time"

	"github.com/smarted/studykit/internal/progress"
)

// Grade scores answers against questions and returns the attempt as a quiz
// record dated today. answers[i] is the chosen option text for questions[i];
// missing or blank answers count as wrong.
func Grade(questions []Question, answers []string, subject string, today time.Time) progress.QuizResult {
	score := 0
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		if IsCorrect(q, answers[i]) {
			score++
		}
	}
	return progress.QuizResult{
		Date:    today.Format(progress.DateLayout),
		Subject: strings.TrimSpace(subject),
		Score:   score,
		Total:   len(questions),
	}
}

// IsCorrect reports whether answer matches the question's correct option.
func IsCorrect(q Question, answer string) bool {
	answer = strings.TrimSpace(answer)
	return answer != "" && answer == strings.TrimSpace(q.Answer)
}
