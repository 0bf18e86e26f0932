// Package acronym finds dictionary words that spell an acronym for an ordered
// list of phrases.
//
// A word matches when the phrases' matchers can be laid over it left to right
// in phrase order. Characters left over are wildcards. A Searcher bounds the
// number of wildcards and of body phrases that go unused, and may pin the word
// to a mandatory start and end phrase.
package acronym

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/corey/acro/internal/domain/phrase"
	"github.com/corey/acro/internal/ports"
)

// ErrNegativeLimit is returned when a wildcard or unused-phrase limit is below zero.
var ErrNegativeLimit = errors.New("limit must be non-negative")

// Config is everything a Searcher needs. Start and End are raw phrase text;
// empty means no boundary.
type Config struct {
	Phrases      []string
	Start        string
	End          string
	MaxWildcards int
	MaxUnmatched int
	Words        []string

	// Locator builds the occurrence finder for the body matchers.
	// Nil selects a plain substring scan.
	Locator ports.LocatorFactory
}

// Searcher holds a validated search configuration.
type Searcher struct {
	start, end   *phrase.Phrase
	body         []phrase.Phrase
	maxWildcards int
	maxUnmatched int
	words        []string
	locator      ports.Locator
}

// New validates every phrase and the limits. No search runs until Search.
func New(cfg Config) (*Searcher, error) {
	if cfg.MaxWildcards < 0 {
		return nil, fmt.Errorf("max wildcards %d: %w", cfg.MaxWildcards, ErrNegativeLimit)
	}
	if cfg.MaxUnmatched < 0 {
		return nil, fmt.Errorf("max unmatched phrases %d: %w", cfg.MaxUnmatched, ErrNegativeLimit)
	}

	s := &Searcher{
		maxWildcards: cfg.MaxWildcards,
		maxUnmatched: cfg.MaxUnmatched,
		words:        cfg.Words,
	}

	var err error
	if s.start, err = boundary(cfg.Start); err != nil {
		return nil, fmt.Errorf("start phrase: %w", err)
	}
	if s.end, err = boundary(cfg.End); err != nil {
		return nil, fmt.Errorf("end phrase: %w", err)
	}
	if s.body, err = phrase.NewAll(cfg.Phrases); err != nil {
		return nil, err
	}

	factory := cfg.Locator
	if factory == nil {
		factory = newScanLocator
	}
	matchers := make([]string, len(s.body))
	for i, p := range s.body {
		matchers[i] = p.Matcher
	}
	s.locator = factory(matchers)
	return s, nil
}

func boundary(text string) (*phrase.Phrase, error) {
	if text == "" {
		return nil, nil
	}
	p, err := phrase.New(text)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Body returns the body phrases in order.
func (s *Searcher) Body() []phrase.Phrase {
	return s.body
}

// Search returns every distinct match, shortest word first, then alphabetical.
// It never fails; words that cannot match are left out.
func (s *Searcher) Search() []Result {
	var results []Result
	for _, word := range s.words {
		stripped, ok := s.strip(word)
		if !ok {
			continue
		}
		for _, r := range s.match(stripped) {
			if r.Wildcards() > s.maxWildcards || r.Unused > s.maxUnmatched {
				continue
			}
			if s.start != nil {
				r.addStart(s.start)
			}
			if s.end != nil {
				r.addEnd(s.end)
			}
			results = append(results, r)
		}
	}
	slices.SortFunc(results, Compare)
	return slices.CompactFunc(results, Result.Equal)
}

// Candidates returns how many words survive boundary stripping.
func (s *Searcher) Candidates() int {
	n := 0
	for _, w := range s.words {
		if _, ok := s.strip(w); ok {
			n++
		}
	}
	return n
}

// strip removes the start and end matchers from word. Both are mandatory
// when configured: ok is false if either is missing.
func (s *Searcher) strip(word string) (string, bool) {
	if s.start != nil {
		rest, found := strings.CutPrefix(word, s.start.Matcher)
		if !found {
			return "", false
		}
		word = rest
	}
	if s.end != nil {
		rest, found := strings.CutSuffix(word, s.end.Matcher)
		if !found {
			return "", false
		}
		word = rest
	}
	return word, true
}

// match tiles one stripped word with the body phrases.
func (s *Searcher) match(word string) []Result {
	found := enumerate(s.body, s.locator.Locate(word), len(word))
	results := make([]Result, len(found))
	for i, a := range found {
		results[i] = newResult(s.body, collapse(a), word)
	}
	return results
}
