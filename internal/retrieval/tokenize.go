package retrieval

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// minKeywordLen is the shortest query token (in runes) kept as a keyword.
const minKeywordLen = 3

// paragraphBreak matches a blank line, including lines holding only whitespace.
var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

// Keywords returns the deduplicated keyword set of a query in first-seen order.
// Tokens are lower-cased, stripped of surrounding punctuation and dropped when
// shorter than three characters.
func Keywords(query string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tok := range tokenize(query) {
		if utf8.RuneCountInString(tok) < minKeywordLen || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

// Chunks splits a document into paragraphs at blank lines. Paragraphs that are
// empty after trimming are dropped; the rest keep their original text.
func Chunks(document string) []string {
	var out []string
	for _, p := range paragraphBreak.Split(document, -1) {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// tokenize lower-cases s, splits on whitespace and trims punctuation from both
// ends of every token. Tokens that were pure punctuation are discarded.
func tokenize(s string) []string {
	fields := strings.Fields(strings.ToLower(s))
	out := fields[:0]
	for _, f := range fields {
		f = strings.TrimFunc(f, unicode.IsPunct)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// tokenSet returns the set of tokens in s.
func tokenSet(s string) map[string]struct{} {
	toks := tokenize(s)
	set := make(map[string]struct{}, len(toks))
	for _, t := range toks {
		set[t] = struct{}{}
	}
	return set
}
