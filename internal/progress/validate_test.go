package progress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStudySession(t *testing.T) {
	tests := []struct {
		name    string
		in      StudySession
		wantErr bool
	}{
		{"valid", StudySession{Date: "2024-05-10", Minutes: 25, Rating: RatingDeep}, false},
		{"zero minutes", StudySession{Date: "2024-05-10", Minutes: 0, Rating: RatingDistracted}, false},
		{"negative minutes", StudySession{Date: "2024-05-10", Minutes: -1, Rating: RatingDeep}, true},
		{"bad date", StudySession{Date: "10/05/2024", Minutes: 5, Rating: RatingDeep}, true},
		{"missing date", StudySession{Minutes: 5, Rating: RatingDeep}, true},
		{"bad rating", StudySession{Date: "2024-05-10", Minutes: 5, Rating: "bored"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStudySession(tt.in)
			if tt.wantErr {
				var ve *ValidationError
				require.Error(t, err)
				assert.True(t, errors.As(err, &ve))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateQuizResult(t *testing.T) {
	tests := []struct {
		name    string
		in      QuizResult
		wantErr bool
	}{
		{"valid", QuizResult{Date: "2024-05-10", Subject: "Math", Score: 3, Total: 5}, false},
		{"no subject", QuizResult{Date: "2024-05-10", Score: 0, Total: 5}, false},
		{"perfect", QuizResult{Date: "2024-05-10", Score: 5, Total: 5}, false},
		{"zero total", QuizResult{Date: "2024-05-10", Score: 0, Total: 0}, true},
		{"score over total", QuizResult{Date: "2024-05-10", Score: 6, Total: 5}, true},
		{"negative score", QuizResult{Date: "2024-05-10", Score: -1, Total: 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuizResult(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := ValidateQuizResult(QuizResult{Date: "nope", Score: 1, Total: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid quiz result")
	assert.Contains(t, err.Error(), "Date")
	assert.Contains(t, err.Error(), "Total")
}

func TestValidateData_ReportsIndex(t *testing.T) {
	d := Data{QuizHistory: []QuizResult{
		{Date: "2024-05-10", Score: 1, Total: 1},
		{Date: "2024-05-10", Score: 2, Total: 1},
	}}
	err := ValidateData(d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quizHistory[1]")
}
