package store

import (
	"context"
	"errors"
	"time"

	"github.com/smarted/studykit/internal/progress"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose match ("" = any)
}

// ProgressRepo persists the study and quiz history that the progress
// aggregates are computed from.
type ProgressRepo interface {
	// Snapshot returns the full history in insertion order.
	Snapshot(ctx context.Context) (progress.Data, error)

	// AddStudySession validates and appends a completed focus session.
	AddStudySession(ctx context.Context, s progress.StudySession) error

	// AddQuizResult validates and appends a quiz outcome.
	AddQuizResult(ctx context.Context, q progress.QuizResult) error

	// Replace swaps the whole history for d atomically.
	Replace(ctx context.Context, d progress.Data) error

	// Reset deletes all progress, including the weekly goal.
	Reset(ctx context.Context) error

	// WeeklyGoal returns the current goal, or ErrNotFound when none is set.
	WeeklyGoal(ctx context.Context) (progress.WeeklyGoal, error)

	// SetWeeklyGoal validates g and replaces the current goal.
	SetWeeklyGoal(ctx context.Context, g progress.WeeklyGoal) error

	// ClearWeeklyGoal removes the goal. Clearing an unset goal is a no-op.
	ClearWeeklyGoal(ctx context.Context) error
}

// Document is an uploaded study document with its extracted text.
type Document struct {
	ID         string
	Title      string
	Tags       []string
	SourcePath string
	Content    string
	Bookmarked bool
	CreatedAt  time.Time
}

// DocumentQuery filters ListDocuments.
type DocumentQuery struct {
	BookmarkedOnly bool
}

// DocumentRepo stores study documents.
type DocumentRepo interface {
	SaveDocument(ctx context.Context, doc *Document) error
	// GetDocument accepts a full id or an unambiguous id prefix.
	GetDocument(ctx context.Context, id string) (*Document, error)
	// ListDocuments returns documents newest first, without their content.
	ListDocuments(ctx context.Context, q DocumentQuery) ([]Document, error)
	DeleteDocument(ctx context.Context, id string) error
	// SetBookmarked flags or unflags a document and returns it updated.
	SetBookmarked(ctx context.Context, id string, bookmarked bool) (*Document, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a persisted LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates token usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string `db:"model"`
	Calls        int    `db:"calls"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns the event with the given id, or nil if none exists.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
