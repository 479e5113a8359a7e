package docqa

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarted/studykit/internal/llm"
)

const biologyNotes = "Cats are mammals.\n\nDogs are also mammals and pets.\n\nPhotosynthesis happens in chloroplasts."

func newTestService(t *testing.T, responses ...llm.MockResponse) (*Service, *llm.MockProvider) {
	t.Helper()
	mock := llm.NewMockProvider(responses...)
	svc, err := NewService(mock, DefaultConfig())
	require.NoError(t, err)
	return svc, mock
}

func TestAsk_GroundsPromptOnRetrievedContext(t *testing.T) {
	svc, mock := newTestService(t, llm.MockResponse{Content: json.RawMessage("Dogs are pets.\n")})

	ans, err := svc.Ask(t.Context(), "  do dogs make pets?  ", biologyNotes)
	require.NoError(t, err)

	assert.Equal(t, "Dogs are pets.", ans.Text)
	assert.Equal(t, "Dogs are also mammals and pets.", ans.Context)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Contains(t, req.System, NotFoundReply)
	assert.Nil(t, req.Schema)
	user := req.Messages[0].Content
	assert.Contains(t, user, "Dogs are also mammals and pets.")
	assert.NotContains(t, user, "Photosynthesis")
	assert.Contains(t, user, `Question: "do dogs make pets?"`)
}

func TestAsk_FallsBackToDocumentPrefix(t *testing.T) {
	svc, mock := newTestService(t, llm.MockResponse{Content: json.RawMessage(NotFoundReply)})

	ans, err := svc.Ask(t.Context(), "what about volcanoes", biologyNotes)
	require.NoError(t, err)
	assert.Equal(t, NotFoundReply, ans.Text)
	assert.Equal(t, biologyNotes, ans.Context)
	assert.Equal(t, 1, mock.CallCount())
}

func TestAsk_EmptyQuestion(t *testing.T) {
	svc, mock := newTestService(t)

	_, err := svc.Ask(t.Context(), "   ", biologyNotes)
	assert.ErrorIs(t, err, ErrEmptyQuestion)
	assert.Zero(t, mock.CallCount())
}

func TestAsk_EmptyDocumentSkipsModel(t *testing.T) {
	svc, mock := newTestService(t)

	ans, err := svc.Ask(t.Context(), "what is a cell?", "")
	require.NoError(t, err)
	assert.Equal(t, NotFoundReply, ans.Text)
	assert.Zero(t, mock.CallCount())
}

func TestAsk_ProviderError(t *testing.T) {
	svc, _ := newTestService(t, llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})

	_, err := svc.Ask(t.Context(), "dogs", biologyNotes)
	var unavail *llm.ErrProviderUnavailable
	assert.True(t, errors.As(err, &unavail))
}

func TestNewService_InvalidRetrievalConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Retrieval.MaxChunks = 0
	_, err := NewService(llm.NewMockProvider(), cfg)
	assert.Error(t, err)
}

func TestSearch(t *testing.T) {
	svc, mock := newTestService(t, llm.MockResponse{
		Content: json.RawMessage(`{"relevant_ids":["b","ghost","a","b"]}`),
	})
	docs := []DocumentInfo{
		{ID: "a", Title: "Cell biology", Tags: []string{"biology"}},
		{ID: "b", Title: "Photosynthesis"},
		{ID: "c", Title: "World War II"},
	}

	ids, err := svc.Search(t.Context(), "plants", docs)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids)

	req := mock.Calls[0]
	assert.Equal(t, SearchSchema, req.Schema)
	assert.True(t, strings.Contains(req.Messages[0].Content, `"id":"c"`))
}

func TestSearch_NoDocuments(t *testing.T) {
	svc, mock := newTestService(t)

	ids, err := svc.Search(t.Context(), "plants", nil)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Zero(t, mock.CallCount())
}

func TestSearch_MalformedResponse(t *testing.T) {
	svc, _ := newTestService(t, llm.MockResponse{Content: json.RawMessage(`not json`)})

	_, err := svc.Search(t.Context(), "plants", []DocumentInfo{{ID: "a"}})
	var inv *llm.ErrInvalidResponse
	assert.True(t, errors.As(err, &inv))
}
