// Package retrieval selects the passages of a document most relevant to a
// question using keyword overlap. It needs no index or embedding model and is
// safe for concurrent use.
package retrieval

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const chunkSeparator = "\n\n"

// ScoredChunk is a paragraph with the number of distinct query keywords it contains.
type ScoredChunk struct {
	Index int // position in the document
	Text  string
	Score int
}

// Retriever builds bounded grounding context for a question.
type Retriever struct {
	cfg Config
}

// New creates a Retriever with the given limits.
func New(cfg Config) (*Retriever, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Retriever{cfg: cfg}, nil
}

// Config returns the limits this retriever was built with.
func (r *Retriever) Config() Config {
	return r.cfg
}

// Rank scores every paragraph of document against query and orders them by
// descending score. Equal scores keep document order.
func Rank(query, document string) []ScoredChunk {
	keywords := Keywords(query)
	chunks := Chunks(document)

	scored := make([]ScoredChunk, len(chunks))
	for i, c := range chunks {
		scored[i] = ScoredChunk{Index: i, Text: c, Score: score(keywords, c)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// Retrieve returns the context for query drawn from document.
//
// The highest scoring paragraphs are joined with blank lines, up to MaxChunks
// of them, until the next one would exceed MaxContextLength; at that point
// selection stops. When no paragraph mentions any keyword the first
// MaxContextLength characters of the document are returned instead.
func (r *Retriever) Retrieve(query, document string) string {
	if document == "" {
		return ""
	}

	ranked := Rank(query, document)
	if len(ranked) == 0 || ranked[0].Score == 0 {
		return prefix(document, r.cfg.MaxContextLength)
	}

	var b strings.Builder
	length := 0
	taken := 0
	for _, c := range ranked {
		if c.Score == 0 || taken == r.cfg.MaxChunks {
			break
		}
		n := utf8.RuneCountInString(c.Text)
		if taken > 0 {
			n += len(chunkSeparator)
		}
		if length+n > r.cfg.MaxContextLength {
			break
		}
		if taken > 0 {
			b.WriteString(chunkSeparator)
		}
		b.WriteString(c.Text)
		length += n
		taken++
	}

	return strings.TrimSpace(b.String())
}

func score(keywords []string, chunk string) int {
	if len(keywords) == 0 {
		return 0
	}
	words := tokenSet(chunk)
	n := 0
	for _, k := range keywords {
		if _, ok := words[k]; ok {
			n++
		}
	}
	return n
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
