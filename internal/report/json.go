package report

import (
	"encoding/json"
	"io"

	"github.com/smarted/studykit/internal/progress"
)

// WriteJSON writes s as indented JSON.
func WriteJSON(w io.Writer, s progress.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
