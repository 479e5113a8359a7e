package progress

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidationError lists every field of a record that violates its contract.
type ValidationError struct {
	Record string
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Record, strings.Join(e.Fields, "; "))
}

// ValidateStudySession checks a session before it is recorded.
func ValidateStudySession(s StudySession) error {
	return check("study session", s)
}

// ValidateQuizResult checks a quiz result before it is recorded.
func ValidateQuizResult(q QuizResult) error {
	return check("quiz result", q)
}

// ValidateData checks every record of an imported progress log.
func ValidateData(d Data) error {
	for i, s := range d.StudyHistory {
		if err := ValidateStudySession(s); err != nil {
			return fmt.Errorf("studyHistory[%d]: %w", i, err)
		}
	}
	for i, q := range d.QuizHistory {
		if err := ValidateQuizResult(q); err != nil {
			return fmt.Errorf("quizHistory[%d]: %w", i, err)
		}
	}
	return nil
}

func check(record string, v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %s: %w", record, err)
	}
	ve := &ValidationError{Record: record}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, describe(fe))
	}
	return ve
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s %q is not a YYYY-MM-DD date", fe.Field(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	case "ltefield":
		return fmt.Sprintf("%s must not exceed %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be > %s", fe.Field(), fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
