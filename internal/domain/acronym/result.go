package acronym

import (
	"cmp"
	"slices"
	"strings"

	"github.com/corey/acro/internal/domain/phrase"
)

// Span is one entry of a result: a matched phrase, or a single wildcard
// character when Phrase is nil.
type Span struct {
	Phrase *phrase.Phrase
}

// IsWildcard reports whether the span stands for one unexplained character.
func (s Span) IsWildcard() bool {
	return s.Phrase == nil
}

func (s Span) equal(o Span) bool {
	if s.Phrase == nil || o.Phrase == nil {
		return s.Phrase == o.Phrase
	}
	return s.Phrase.Equal(*o.Phrase)
}

func compareSpan(a, b Span) int {
	switch {
	case a.Phrase == nil && b.Phrase == nil:
		return 0
	case a.Phrase == nil:
		return -1
	case b.Phrase == nil:
		return 1
	}
	return phrase.Compare(*a.Phrase, *b.Phrase)
}

// Result is one way a word spells the acronym.
type Result struct {
	// Spans in word order.
	Spans []Span

	// Unused counts body phrases that do not appear in Spans.
	Unused int

	// Word is the matched dictionary word, boundary text included.
	Word string
}

// newResult wraps a collapsed assignment of word over body.
func newResult(body []phrase.Phrase, collapsed []int, word string) Result {
	spans := make([]Span, len(collapsed))
	present := 0
	for i, idx := range collapsed {
		if idx == wildcard {
			continue
		}
		spans[i] = Span{Phrase: &body[idx]}
		present++
	}
	return Result{
		Spans:  spans,
		Unused: len(body) - present,
		Word:   word,
	}
}

// Wildcards returns the number of characters no phrase explains.
func (r Result) Wildcards() int {
	n := 0
	for _, s := range r.Spans {
		if s.IsWildcard() {
			n++
		}
	}
	return n
}

// PhraseInfo renders the result as a gloss aligned with Word: each phrase's
// words followed by a space, and each wildcard as its capital letter and "..".
//
//	"fox" from Free, O wildcard, X wildcard -> "Free O.. X.. "
func (r Result) PhraseInfo() string {
	var sb strings.Builder
	cursor := 0
	for _, s := range r.Spans {
		if s.Phrase != nil {
			for _, w := range s.Phrase.Words {
				sb.WriteString(w)
				sb.WriteByte(' ')
			}
			cursor += len(s.Phrase.Matcher)
			continue
		}
		// A clobbered phrase can push the cursor past the word.
		if cursor < len(r.Word) {
			sb.WriteString(strings.ToUpper(r.Word[cursor : cursor+1]))
			sb.WriteString(".. ")
		}
		cursor++
	}
	return sb.String()
}

// Equal reports structural equality: same spans, unused count and word.
func (r Result) Equal(o Result) bool {
	return r.Word == o.Word &&
		r.Unused == o.Unused &&
		slices.EqualFunc(r.Spans, o.Spans, Span.equal)
}

// Compare orders results by word length, then word. Distinct results for the
// same word fall back to wildcard count, unused count and spans so the order
// never depends on search order. Compare returns 0 only for equal results.
func Compare(a, b Result) int {
	if c := cmp.Compare(len(a.Word), len(b.Word)); c != 0 {
		return c
	}
	if c := strings.Compare(a.Word, b.Word); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Wildcards(), b.Wildcards()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Unused, b.Unused); c != 0 {
		return c
	}
	return slices.CompareFunc(a.Spans, b.Spans, compareSpan)
}

func (r *Result) addStart(p *phrase.Phrase) {
	r.Spans = slices.Insert(r.Spans, 0, Span{Phrase: p})
	r.Word = p.Matcher + r.Word
}

func (r *Result) addEnd(p *phrase.Phrase) {
	r.Spans = append(r.Spans, Span{Phrase: p})
	r.Word += p.Matcher
}
