package notes

// Config holds study-notes generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	// MaxContentChars caps the document text sent for summaries,
	// flashcards and mind maps.
	MaxContentChars int
	// MindMapDepth is the deepest level of children a mind map may have.
	MindMapDepth int
}

// DefaultConfig returns sensible defaults for notes generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       4096,
		Temperature:     0.4,
		MaxContentChars: 30000,
		MindMapDepth:    3,
	}
}

// titleContentChars is how much of a document is used to suggest a title.
const titleContentChars = 4000
