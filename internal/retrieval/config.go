package retrieval

import "fmt"

// Config bounds the context handed to the model.
type Config struct {
	// MaxContextLength is the maximum context size in characters (runes).
	MaxContextLength int

	// MaxChunks is the maximum number of paragraphs joined into the context.
	MaxChunks int
}

// DefaultConfig returns the standard limits: 1500 characters, 3 chunks.
func DefaultConfig() Config {
	return Config{
		MaxContextLength: 1500,
		MaxChunks:        3,
	}
}

// Validate reports whether both limits are positive.
func (c Config) Validate() error {
	if c.MaxContextLength <= 0 {
		return fmt.Errorf("max context length must be positive, got %d", c.MaxContextLength)
	}
	if c.MaxChunks <= 0 {
		return fmt.Errorf("max chunks must be positive, got %d", c.MaxChunks)
	}
	return nil
}
