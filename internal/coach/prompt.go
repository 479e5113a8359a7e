package coach

import (
	"fmt"
	"strings"
)

const chatSystemPrompt = `You are a friendly and encouraging AI Study Coach for high school students.
Help with study techniques, motivation, time management and exam stress.
Keep answers short and practical. Reply in plain text without markdown formatting.`

const planSystemPrompt = `You are an expert study planner for high school students.
Build a realistic weekly schedule that fits only the available days and works towards the student's goals.
Mix subjects, include short reviews and keep blocks between 25 and 90 minutes.`

func buildPlanUserMessage(days []string, goals string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Available days: %s\n", strings.Join(days, ", "))
	fmt.Fprintf(&b, "Goals: %s\n", goals)

	return b.String()
}

const feynmanSystemPrompt = `You evaluate explanations written with the Feynman technique.
The student explains a concept in simple words as if teaching a beginner.
Point out gaps, mistakes and unexplained jargon, score clarity from 1 to 10, and give a correct textbook definition.
Be encouraging.`

func buildFeynmanUserMessage(concept, explanation string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Concept: %s\n\n", concept)
	b.WriteString("Explanation:\n")
	b.WriteString(explanation)
	b.WriteString("\n")

	return b.String()
}
