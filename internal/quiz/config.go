package quiz

// Config holds quiz generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	// MaxContentChars caps the document text sent for content quizzes.
	MaxContentChars int
}

// DefaultConfig returns sensible defaults for quiz generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       2048,
		Temperature:     0.7,
		MaxContentChars: 30000,
	}
}
