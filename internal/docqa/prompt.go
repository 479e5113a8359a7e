package docqa

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NotFoundReply is the fixed answer when the document does not cover the
// question.
const NotFoundReply = "I'm sorry, I couldn't find information about that in the provided document."

const askSystemPrompt = `You are an AI Study Buddy. Answer the student's question using only the provided context from their document.
- If the answer is in the context, give a clear and concise answer based on that information.
- If the answer is not in the context, reply exactly: "` + NotFoundReply + `"
- Do not use outside knowledge and do not make up information.
- Be helpful and friendly.`

func buildAskUserMessage(question, context string) string {
	var b strings.Builder

	b.WriteString("Context from the document:\n---\n")
	b.WriteString(context)
	b.WriteString("\n---\n\n")
	fmt.Fprintf(&b, "Question: %q\n", question)

	return b.String()
}

const searchSystemPrompt = `You are a semantic search engine over a student's study documents. Given a query and a list of documents, return the IDs of the documents that are most conceptually related to the query. Return an empty list when nothing is related.`

func buildSearchUserMessage(query string, docs []DocumentInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Query: %q\n\n", query)
	b.WriteString("Documents:\n")
	listing, _ := json.Marshal(docs)
	b.Write(listing)
	b.WriteString("\n")

	return b.String()
}
