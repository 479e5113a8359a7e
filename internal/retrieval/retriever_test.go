package retrieval

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRetriever(t *testing.T, maxLen, maxChunks int) *Retriever {
	t.Helper()
	r, err := New(Config{MaxContextLength: maxLen, MaxChunks: maxChunks})
	require.NoError(t, err)
	return r
}

func TestNew_RejectsNonPositiveLimits(t *testing.T) {
	_, err := New(Config{MaxContextLength: 0, MaxChunks: 3})
	require.Error(t, err)

	_, err = New(Config{MaxContextLength: 100, MaxChunks: -1})
	require.Error(t, err)
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"lowercases and dedups", "Dogs dogs DOGS pets", []string{"dogs", "pets"}},
		{"drops short tokens", "is a cat an ox", []string{"cat"}},
		{"strips punctuation", "what are mitochondria?", []string{"what", "are", "mitochondria"}},
		{"all short", "a an is", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Keywords(tt.query))
		})
	}
}

func TestChunks_SplitsOnBlankLines(t *testing.T) {
	doc := "first para\nstill first\n\nsecond\n   \t\nthird\n\n\n\n"
	got := Chunks(doc)
	require.Len(t, got, 3)
	assert.Equal(t, "first para\nstill first", got[0])
	assert.Equal(t, "second", got[1])
	assert.Equal(t, "third", got[2])
}

func TestRetrieve_EndToEnd(t *testing.T) {
	r := newTestRetriever(t, 1500, 3)
	doc := "Cats are mammals.\n\nDogs are also mammals and pets."

	ranked := Rank("dogs pets", doc)
	require.Len(t, ranked, 2)
	assert.Equal(t, 2, ranked[0].Score)
	assert.Equal(t, 0, ranked[1].Score)

	assert.Equal(t, "Dogs are also mammals and pets.", r.Retrieve("dogs pets", doc))
}

func TestRetrieve_RelevanceOrdering(t *testing.T) {
	r := newTestRetriever(t, 1500, 3)
	p1 := "Photosynthesis happens in plants."
	p2 := "Chlorophyll absorbs light during photosynthesis in the leaf."
	p3 := "The French revolution began in 1789."
	doc := p1 + "\n\n" + p2 + "\n\n" + p3

	got := r.Retrieve("chlorophyll photosynthesis leaf", doc)

	assert.Equal(t, p2+"\n\n"+p1, got)
	assert.NotContains(t, got, p3)
}

func TestRetrieve_FallbackWhenNothingMatches(t *testing.T) {
	r := newTestRetriever(t, 10, 3)
	doc := "Alpha beta gamma.\n\nDelta epsilon."

	assert.Equal(t, "Alpha beta", r.Retrieve("zebra", doc))

	short := newTestRetriever(t, 1500, 3)
	assert.Equal(t, doc, short.Retrieve("zebra", doc))
}

func TestRetrieve_FallbackWhenQueryHasNoKeywords(t *testing.T) {
	r := newTestRetriever(t, 5, 3)
	assert.Equal(t, "Hello", r.Retrieve("is it", "Hello world"))
}

func TestRetrieve_EmptyDocument(t *testing.T) {
	r := newTestRetriever(t, 1500, 3)
	assert.Equal(t, "", r.Retrieve("anything here", ""))
}

func TestRetrieve_FallbackCapsGiantChunk(t *testing.T) {
	r := newTestRetriever(t, 50, 3)
	doc := strings.Repeat("lorem ipsum ", 100)

	got := r.Retrieve("zebra", doc)
	assert.Equal(t, 50, utf8.RuneCountInString(got))
}

func TestRetrieve_RespectsMaxChunks(t *testing.T) {
	r := newTestRetriever(t, 1500, 2)
	doc := "rust one\n\nrust two\n\nrust three"

	assert.Equal(t, "rust one\n\nrust two", r.Retrieve("rust", doc))
}

func TestRetrieve_StopsAtFirstOverflowingChunk(t *testing.T) {
	r := newTestRetriever(t, 30, 3)
	big := "history " + strings.Repeat("x", 40)
	doc := "history war\n\n" + big + "\n\nhistory peace"

	// "history war" fits, the long paragraph overflows and ends selection,
	// so "history peace" is never considered.
	assert.Equal(t, "history war", r.Retrieve("history", doc))
}

func TestRetrieve_TopChunkTooLargeYieldsEmpty(t *testing.T) {
	r := newTestRetriever(t, 10, 3)
	doc := "biology is the study of life"

	assert.Equal(t, "", r.Retrieve("biology", doc))
}

func TestRetrieve_LengthBound(t *testing.T) {
	r := newTestRetriever(t, 40, 3)
	doc := "atom one two\n\natom three four\n\natom five six\n\natom seven"

	got := r.Retrieve("atom", doc)
	assert.LessOrEqual(t, utf8.RuneCountInString(got), 40)
	assert.Equal(t, "atom one two\n\natom three four", got)
}

func TestRetrieve_CountsRunesNotBytes(t *testing.T) {
	r := newTestRetriever(t, 6, 3)
	doc := "héllo wörld"

	assert.Equal(t, "héllo ", r.Retrieve("zebra", doc))
}

func TestRetrieve_Deterministic(t *testing.T) {
	r := newTestRetriever(t, 1500, 3)
	doc := "energy mass\n\nenergy light\n\nmass light\n\nnothing"

	first := r.Retrieve("energy mass light", doc)
	for range 20 {
		assert.Equal(t, first, r.Retrieve("energy mass light", doc))
	}
}
