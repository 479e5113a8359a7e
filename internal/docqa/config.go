package docqa

import "github.com/smarted/studykit/internal/retrieval"

// Config holds Study Buddy settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	Retrieval   retrieval.Config
}

// DefaultConfig returns sensible defaults for document Q&A.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.2,
		Retrieval:   retrieval.DefaultConfig(),
	}
}
