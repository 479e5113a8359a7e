// Package solver explains the solution to a homework problem photographed
// by the student.
package solver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/smarted/studykit/internal/llm"
)

// MaxImageBytes is the largest image accepted.
const MaxImageBytes = 20 << 20

// ErrNotImage is returned for empty, oversized or non-image input.
var ErrNotImage = errors.New("not an image")

// Concept is a related topic with a search query for learning more.
type Concept struct {
	Name  string `json:"name"`
	Query string `json:"query"`
}

// Solution is a worked answer to a problem.
type Solution struct {
	Steps           []string  `json:"stepByStepExplanation"`
	FinalAnswer     string    `json:"finalAnswer"`
	Confidence      int       `json:"confidenceScore"`
	RelatedConcepts []Concept `json:"relatedConcepts"`
}

// Config holds solver settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for the solver.
func DefaultConfig() Config {
	return Config{MaxTokens: 4096, Temperature: 0.2}
}

// SolutionSchema defines the JSON schema for worked solutions.
var SolutionSchema = &llm.Schema{
	Name:        "problem-solution",
	Description: "A step-by-step solution to the problem in an image",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"stepByStepExplanation": map[string]any{
				"type":        "array",
				"description": "Each step of the working, in order",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
			},
			"finalAnswer": map[string]any{
				"type": "string",
			},
			"confidenceScore": map[string]any{
				"type":        "integer",
				"description": "Confidence in the answer, 0 to 100",
				"minimum":     0,
				"maximum":     100,
			},
			"relatedConcepts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":  map[string]any{"type": "string"},
						"query": map[string]any{"type": "string", "description": "A search query for learning the concept"},
					},
					"required":             []any{"name", "query"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"stepByStepExplanation", "finalAnswer", "confidenceScore", "relatedConcepts"},
		"additionalProperties": false,
	},
}

const systemPrompt = `You are an expert tutor for high school students.
Identify the problem in the image and solve it step by step, explaining each step simply.
Give the final answer, how confident you are in it from 0 to 100, and 2 to 4 related concepts the student should review.`

const userPrompt = "Please solve the problem in this image."

// Service solves problems from images.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a solver service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Solve works through the problem pictured in image. An empty mimeType is
// detected from the image bytes.
func (s *Service) Solve(ctx context.Context, image []byte, mimeType string) (*Solution, error) {
	mimeType, err := checkImage(image, mimeType)
	if err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeSolver)
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: userPrompt,
			Images:  []llm.Image{{MIMEType: mimeType, Data: image}},
		}},
		Schema:      SolutionSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	sol, err := llm.Decode[Solution](resp)
	if err != nil {
		return nil, fmt.Errorf("parse solution: %w", err)
	}
	if len(sol.Steps) == 0 {
		return nil, fmt.Errorf("parse solution: %w", &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     errors.New("no steps"),
		})
	}
	sol.Confidence = min(max(sol.Confidence, 0), 100)
	return &sol, nil
}

func checkImage(image []byte, mimeType string) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("%w: empty", ErrNotImage)
	}
	if len(image) > MaxImageBytes {
		return "", fmt.Errorf("%w: %d bytes exceeds %d", ErrNotImage, len(image), MaxImageBytes)
	}
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if mimeType == "" {
		mimeType = http.DetectContentType(image)
		if i := strings.IndexByte(mimeType, ';'); i >= 0 {
			mimeType = mimeType[:i]
		}
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("%w: %s", ErrNotImage, mimeType)
	}
	return mimeType, nil
}
