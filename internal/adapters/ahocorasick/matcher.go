// Package ahocorasick locates acronym matchers inside words using an Aho-Corasick automaton.
// It wraps the petar-dambovaliev/aho-corasick library so all matchers are found in one
// pass over the word instead of one scan per matcher.
package ahocorasick

import (
	"sort"

	"github.com/corey/acro/internal/ports"
	aho "github.com/petar-dambovaliev/aho-corasick"
)

// Locator implements ports.Locator.
// Duplicate matchers are compiled once and fanned back out to every position that uses them.
type Locator struct {
	automaton aho.AhoCorasick
	patterns  []string // unique matchers, automaton order
	owners    [][]int  // unique matcher index -> positions in the build order
	size      int
}

// NewLocator builds a locator for matchers. Empty matchers are ignored and never located.
func NewLocator(matchers []string) *Locator {
	l := &Locator{size: len(matchers)}
	seen := make(map[string]int, len(matchers))
	for i, m := range matchers {
		if m == "" {
			continue
		}
		u, ok := seen[m]
		if !ok {
			u = len(l.patterns)
			seen[m] = u
			l.patterns = append(l.patterns, m)
			l.owners = append(l.owners, nil)
		}
		l.owners[u] = append(l.owners[u], i)
	}
	if len(l.patterns) > 0 {
		builder := aho.NewAhoCorasickBuilder(aho.Opts{
			DFA: true,
		})
		l.automaton = builder.Build(l.patterns)
	}
	return l
}

// Factory adapts NewLocator to ports.LocatorFactory.
func Factory(matchers []string) ports.Locator {
	return NewLocator(matchers)
}

// Locate reports every start offset of every matcher in word, overlaps included.
func (l *Locator) Locate(word string) [][]int {
	out := make([][]int, l.size)
	if len(l.patterns) == 0 || word == "" {
		return out
	}
	iter := l.automaton.IterOverlappingByte([]byte(word))
	for next := iter.Next(); next != nil; next = iter.Next() {
		m := *next
		for _, pos := range l.owners[m.Pattern()] {
			out[pos] = append(out[pos], m.Start())
		}
	}
	// Overlapping iteration reports matches by end offset.
	for _, starts := range out {
		sort.Ints(starts)
	}
	return out
}

// PatternCount returns the number of distinct matchers compiled into the automaton.
func (l *Locator) PatternCount() int {
	return len(l.patterns)
}
