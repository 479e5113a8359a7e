package quiz

import (
	"testing"
	"time"

	"github.com/smarted/studykit/internal/progress"
)

func TestGrade(t *testing.T) {
	questions := []Question{
		{Question: "2+2", Options: []string{"3", "4"}, Answer: "4"},
		{Question: "3+3", Options: []string{"6", "7"}, Answer: "6"},
		{Question: "4+4", Options: []string{"8", "9"}, Answer: "8"},
	}
	today := time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)

	got := Grade(questions, []string{"4", " 7", ""}, " Maths ", today)

	want := progress.QuizResult{Date: "2024-05-10", Subject: "Maths", Score: 1, Total: 3}
	if got != want {
		t.Errorf("Grade() = %+v, want %+v", got, want)
	}
	if err := progress.ValidateQuizResult(got); err != nil {
		t.Errorf("graded result should validate: %v", err)
	}
}

func TestGrade_MissingAnswersCountWrong(t *testing.T) {
	questions := []Question{
		{Question: "a", Options: []string{"x", "y"}, Answer: "x"},
		{Question: "b", Options: []string{"x", "y"}, Answer: "y"},
	}

	got := Grade(questions, []string{"x"}, "", time.Now())
	if got.Score != 1 || got.Total != 2 {
		t.Errorf("Grade() score = %d/%d, want 1/2", got.Score, got.Total)
	}
}
