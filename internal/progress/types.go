// Package progress derives study statistics from the recorded history of
// study sessions and quiz results. All aggregates are recomputed from a
// snapshot on every call and nothing here touches storage.
package progress

// DateLayout is the calendar-date format used for every record.
const DateLayout = "2006-01-02"

// Rating is the self-reported focus quality of a study session.
type Rating string

const (
	RatingDeep       Rating = "deep"
	RatingDistracted Rating = "distracted"
)

// StudySession is one completed focus block.
type StudySession struct {
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Minutes int    `json:"minutes" validate:"gte=0"`
	Rating  Rating `json:"rating" validate:"required,oneof=deep distracted"`
}

// QuizResult is the outcome of one quiz. An empty Subject means the quiz was
// not tied to a subject (e.g. generated from a document).
type QuizResult struct {
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Subject string `json:"subject,omitempty"`
	Score   int    `json:"score" validate:"gte=0,ltefield=Total"`
	Total   int    `json:"total" validate:"gt=0"`
}

// Percent returns the score as a percentage. ok is false when Total is not
// positive, in which case the record carries no score information.
func (q QuizResult) Percent() (pct float64, ok bool) {
	if q.Total <= 0 {
		return 0, false
	}
	return float64(q.Score) / float64(q.Total) * 100, true
}

// Data is the full persisted progress state.
type Data struct {
	StudyHistory []StudySession `json:"studyHistory" validate:"dive"`
	QuizHistory  []QuizResult   `json:"quizHistory" validate:"dive"`
}
