package quiz

import (
	"fmt"
	"strings"
)

const curriculumSystemPrompt = `You write multiple-choice quizzes for South African high school students following the CAPS curriculum.

## Rules
- Write 5 questions appropriate for the grade and subject.
- Each question has exactly 4 options.
- The answer must be copied exactly from one of the options.
- Vary the position of the correct option.`

func buildCurriculumUserMessage(grade int, subject string) string {
	return fmt.Sprintf("Generate a 5-question multiple-choice quiz for a Grade %d student studying %s.\n", grade, subject)
}

const contentSystemPrompt = `You write multiple-choice quizzes that test understanding of study material.

## Rules
- Base every question only on the provided text.
- Each question has exactly 4 options.
- The answer must be copied exactly from one of the options.
- Prefer questions about key concepts over trivia.`

func buildContentUserMessage(content string, count string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write %s multiple-choice questions from the following text.\n\n", count)
	b.WriteString("---\n")
	b.WriteString(content)
	b.WriteString("\n---\n")

	return b.String()
}
