// Package docqa answers questions about an uploaded document using only
// the passages the keyword retriever selects from it.
package docqa

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smarted/studykit/internal/llm"
	"github.com/smarted/studykit/internal/retrieval"
)

// ErrEmptyQuestion is returned when the question is blank.
var ErrEmptyQuestion = errors.New("question is empty")

// Answer is a Study Buddy reply.
type Answer struct {
	Text string
	// Context is the excerpt the answer was grounded on.
	Context string
}

// DocumentInfo identifies a document for semantic search.
type DocumentInfo struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags,omitempty"`
}

// Service answers questions about documents.
type Service struct {
	provider  llm.Provider
	retriever *retrieval.Retriever
	cfg       Config
}

// NewService creates a document Q&A service.
func NewService(provider llm.Provider, cfg Config) (*Service, error) {
	r, err := retrieval.New(cfg.Retrieval)
	if err != nil {
		return nil, err
	}
	return &Service{provider: provider, retriever: r, cfg: cfg}, nil
}

// Ask answers question from the parts of document relevant to it. A
// document with no text gets NotFoundReply without a model call.
func (s *Service) Ask(ctx context.Context, question, document string) (*Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	excerpt := s.retriever.Retrieve(question, document)
	if strings.TrimSpace(excerpt) == "" {
		return &Answer{Text: NotFoundReply}, nil
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeDocQAAsk)
	req := llm.Request{
		System: askSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAskUserMessage(question, excerpt)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("study buddy: %w", err)
	}

	return &Answer{
		Text:    strings.TrimSpace(resp.Text()),
		Context: excerpt,
	}, nil
}

type searchOutput struct {
	RelevantIDs []string `json:"relevant_ids"`
}

// Search returns the IDs of docs related to query, most relevant first.
// IDs the model invents are dropped.
func (s *Service) Search(ctx context.Context, query string, docs []DocumentInfo) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuestion
	}
	if len(docs) == 0 {
		return nil, nil
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeDocQASearch)
	req := llm.Request{
		System: searchSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSearchUserMessage(query, docs)},
		},
		Schema:      SearchSchema,
		MaxTokens:   512,
		Temperature: 0,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("document search: %w", err)
	}

	out, err := llm.Decode[searchOutput](resp)
	if err != nil {
		return nil, fmt.Errorf("parse search response: %w", err)
	}

	known := make(map[string]bool, len(docs))
	for _, d := range docs {
		known[d.ID] = true
	}
	ids := make([]string, 0, len(out.RelevantIDs))
	for _, id := range out.RelevantIDs {
		if known[id] {
			ids = append(ids, id)
			delete(known, id)
		}
	}
	return ids, nil
}
