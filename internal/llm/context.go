package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// Purpose labels recorded with every request, used by `llm stats` to
// break usage down by feature.
const (
	PurposeDocQAAsk       = "docqa-ask"
	PurposeDocQASearch    = "docqa-search"
	PurposeQuizCurriculum = "quiz-curriculum"
	PurposeQuizContent    = "quiz-content"
	PurposeQuizSelection  = "quiz-selection"
	PurposeNotesSummary   = "notes-summary"
	PurposeNotesCards     = "notes-flashcards"
	PurposeNotesMindMap   = "notes-mindmap"
	PurposeNotesMetadata  = "notes-metadata"
	PurposeCoachChat      = "coach-chat"
	PurposeCoachPlan      = "coach-plan"
	PurposeCoachFeynman   = "coach-feynman"
	PurposeSolver         = "solver"

	purposeUnknown = "unknown"
)

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok && v != "" {
		return v
	}
	return purposeUnknown
}
