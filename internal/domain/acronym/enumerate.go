package acronym

import (
	"slices"
	"strings"

	"github.com/corey/acro/internal/domain/phrase"
	"github.com/corey/acro/internal/ports"
)

// wildcard marks a character no phrase has claimed.
const wildcard = -1

// assignment maps each character of a word to the body index of the phrase
// that claimed it, or wildcard.
type assignment []int

func blank(size int) assignment {
	a := make(assignment, size)
	for i := range a {
		a[i] = wildcard
	}
	return a
}

// enumerate returns every way to place the body phrases, in body order, over a
// word of the given size. occurrences[i] holds the start offsets of body[i].
//
// A placement only requires its first character to be free. The rest of the
// run is overwritten, so a later phrase can clobber part or all of an earlier one.
// With an empty body the single all-wildcard assignment is returned.
func enumerate(body []phrase.Phrase, occurrences [][]int, size int) []assignment {
	work := []assignment{blank(size)}
	var next []assignment

	for i, p := range body {
		width := len(p.Matcher)
		for _, a := range work {
			for _, start := range occurrences[i] {
				if a[start] != wildcard {
					continue
				}
				b := slices.Clone(a)
				for j := start; j < start+width; j++ {
					b[j] = i
				}
				next = append(next, b)
			}
		}
		// The old set is dead; reuse its backing array for the next round.
		work, next = next, work[:0]
	}
	return work
}

// scanLocator is the in-package Locator: one strings.Index walk per matcher.
type scanLocator []string

func newScanLocator(matchers []string) ports.Locator {
	return scanLocator(slices.Clone(matchers))
}

func (s scanLocator) Locate(word string) [][]int {
	out := make([][]int, len(s))
	for i, m := range s {
		if m == "" {
			continue
		}
		for off := 0; off < len(word); {
			j := strings.Index(word[off:], m)
			if j < 0 {
				break
			}
			out[i] = append(out[i], off+j)
			off += j + 1
		}
	}
	return out
}
