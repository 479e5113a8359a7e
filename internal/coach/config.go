package coach

// Config holds study coach settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	// MaxHistory is how many earlier chat turns are sent with a message.
	MaxHistory int
}

// DefaultConfig returns sensible defaults for the coach.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
		MaxHistory:  20,
	}
}
