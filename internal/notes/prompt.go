package notes

import (
	"fmt"
	"strings"
)

const summarySystemPrompt = `You summarize study material for a high school student.
Write concise bullet points covering the main ideas, in the order they appear. Use only the provided text.`

const flashcardSystemPrompt = `You create flashcards from study material.
Pick the key terms and concepts in the text and give each a short, accurate definition drawn from the text.`

const mindMapSystemPrompt = `You turn study material into a hierarchical mind map.
The root topic is the document's main subject. Children are its main themes, and their children are supporting ideas.
Keep topic labels short. Leaves have an empty children list.`

const metadataSystemPrompt = `You label study documents.
Suggest a short, descriptive title and 3 to 5 lowercase topic tags for the document.`

func buildDocumentMessage(task, content string) string {
	var b strings.Builder

	b.WriteString(task)
	b.WriteString("\n\n---\n")
	b.WriteString(content)
	b.WriteString("\n---\n")

	return b.String()
}

func buildMindMapMessage(content string, depth int) string {
	return buildDocumentMessage(
		fmt.Sprintf("Create a mind map of the following text, at most %d levels below the root.", depth),
		content,
	)
}
