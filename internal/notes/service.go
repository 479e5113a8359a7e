// Package notes turns study documents into summaries, flashcards, mind maps
// and catalogue metadata.
package notes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/smarted/studykit/internal/llm"
)

// ErrEmptyContent is returned when there is no text to work from.
var ErrEmptyContent = errors.New("content is empty")

// Service generates study notes.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a notes service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Summarize returns the key points of content.
func (s *Service) Summarize(ctx context.Context, content string) (*Summary, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeNotesSummary)
	out, err := generate[Summary](ctx, s, content, s.cfg.MaxContentChars,
		summarySystemPrompt, "Summarize the following text.", SummarySchema)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	if len(out.Points) == 0 {
		return nil, fmt.Errorf("summarize: %w", &llm.ErrInvalidResponse{Err: errors.New("no summary points")})
	}
	return &out, nil
}

// Flashcards returns term and definition cards for content. Cards with a
// blank term or definition are dropped.
func (s *Service) Flashcards(ctx context.Context, content string) ([]Flashcard, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeNotesCards)
	out, err := generate[struct {
		Flashcards []Flashcard `json:"flashcards"`
	}](ctx, s, content, s.cfg.MaxContentChars,
		flashcardSystemPrompt, "Create flashcards for the key terms in the following text.", FlashcardSchema)
	if err != nil {
		return nil, fmt.Errorf("flashcards: %w", err)
	}

	cards := make([]Flashcard, 0, len(out.Flashcards))
	for _, c := range out.Flashcards {
		c.Term = strings.TrimSpace(c.Term)
		c.Definition = strings.TrimSpace(c.Definition)
		if c.Term == "" || c.Definition == "" {
			continue
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MindMap returns a topic tree for content no deeper than the configured
// depth.
func (s *Service) MindMap(ctx context.Context, content string) (*Node, error) {
	depth := s.cfg.MindMapDepth
	if depth < 1 {
		depth = 1
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeNotesMindMap)
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	req := s.request(mindMapSystemPrompt,
		buildMindMapMessage(truncate(content, s.cfg.MaxContentChars), depth), MindMapSchema(depth))

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("mind map: %w", err)
	}
	out, err := llm.Decode[struct {
		MindMap Node `json:"mindMap"`
	}](resp)
	if err != nil {
		return nil, fmt.Errorf("mind map: %w", err)
	}

	root := prune(out.MindMap, depth)
	if root.Topic == "" {
		return nil, fmt.Errorf("mind map: %w", &llm.ErrInvalidResponse{Content: resp.Content, Err: errors.New("root has no topic")})
	}
	return &root, nil
}

// TitleAndTags suggests a title and tags from the start of content.
func (s *Service) TitleAndTags(ctx context.Context, content string) (*Metadata, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeNotesMetadata)
	out, err := generate[Metadata](ctx, s, content, titleContentChars,
		metadataSystemPrompt, "Suggest a title and tags for this document.", MetadataSchema)
	if err != nil {
		return nil, fmt.Errorf("title and tags: %w", err)
	}

	out.Title = strings.TrimSpace(out.Title)
	seen := make(map[string]bool)
	tags := out.Tags[:0]
	for _, tag := range out.Tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	out.Tags = tags
	return &out, nil
}

// BuildPack generates the summary, flashcards and mind map of content
// concurrently. The first failure cancels the others.
func (s *Service) BuildPack(ctx context.Context, content string) (*Pack, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	var pack Pack
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sum, err := s.Summarize(gctx, content)
		if err != nil {
			return err
		}
		pack.Summary = *sum
		return nil
	})
	g.Go(func() error {
		cards, err := s.Flashcards(gctx, content)
		if err != nil {
			return err
		}
		pack.Flashcards = cards
		return nil
	})
	g.Go(func() error {
		root, err := s.MindMap(gctx, content)
		if err != nil {
			return err
		}
		pack.MindMap = *root
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &pack, nil
}

func (s *Service) request(system, user string, schema *llm.Schema) llm.Request {
	return llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: user},
		},
		Schema:      schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}
}

func generate[T any](ctx context.Context, s *Service, content string, limit int, system, task string, schema *llm.Schema) (T, error) {
	var zero T
	content = strings.TrimSpace(content)
	if content == "" {
		return zero, ErrEmptyContent
	}

	req := s.request(system, buildDocumentMessage(task, truncate(content, limit)), schema)
	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return zero, err
	}
	return llm.Decode[T](resp)
}

// prune trims topics and drops empty nodes and anything below depth.
func prune(n Node, depth int) Node {
	n.Topic = strings.TrimSpace(n.Topic)
	if depth <= 0 {
		n.Children = nil
		return n
	}
	var kept []Node
	for _, c := range n.Children {
		c = prune(c, depth-1)
		if c.Topic == "" {
			continue
		}
		kept = append(kept, c)
	}
	n.Children = kept
	return n
}

// truncate returns the first n runes of s. Non-positive n means no limit.
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
