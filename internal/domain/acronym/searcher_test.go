package acronym

import (
	"errors"
	"testing"

	"github.com/corey/acro/internal/adapters/ahocorasick"
	"github.com/corey/acro/internal/domain/phrase"
	"github.com/corey/acro/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// locators runs a test against the built-in scan and the Aho-Corasick adapter.
var locators = map[string]ports.LocatorFactory{
	"scan":        nil,
	"ahocorasick": ahocorasick.Factory,
}

func search(t *testing.T, cfg Config) []Result {
	t.Helper()
	s, err := New(cfg)
	require.NoError(t, err)
	return s.Search()
}

func words(rs []Result) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Word
	}
	return out
}

func TestSearch_BothTilingsSurvive(t *testing.T) {
	for name, loc := range locators {
		t.Run(name, func(t *testing.T) {
			rs := search(t, Config{
				Phrases:      []string{"Alpha Beta", "Beta", "Cat"},
				MaxWildcards: 1,
				Words:        []string{"ababc"},
				Locator:      loc,
			})
			require.Len(t, rs, 2)
			assert.Equal(t, "A.. Beta Alpha Beta Cat ", rs[0].PhraseInfo())
			assert.Equal(t, "Alpha Beta A.. Beta Cat ", rs[1].PhraseInfo())
			for _, r := range rs {
				assert.Equal(t, 1, r.Wildcards())
				assert.Equal(t, 0, r.Unused)
			}
		})
	}
}

func TestSearch_MaxWildcardsZeroExcludesUncovered(t *testing.T) {
	rs := search(t, Config{
		Phrases: []string{"Alpha Beta", "Beta", "Cat"},
		Words:   []string{"ababc", "abbc"},
	})
	require.Len(t, rs, 1)
	assert.Equal(t, "abbc", rs[0].Word)
	assert.Equal(t, 0, rs[0].Wildcards())
}

func TestSearch_BoundariesOnly(t *testing.T) {
	rs := search(t, Config{
		Start: "Free Online",
		End:   "Radio",
		Words: []string{"for", "fort", "four", "of", "fo", "r"},
	})
	require.Len(t, rs, 1)
	r := rs[0]
	assert.Equal(t, "for", r.Word)
	assert.Equal(t, 0, r.Unused)
	assert.Equal(t, 0, r.Wildcards())
	require.Len(t, r.Spans, 2)
	assert.Equal(t, "fo", r.Spans[0].Phrase.Matcher)
	assert.Equal(t, "r", r.Spans[1].Phrase.Matcher)
	assert.Equal(t, "Free Online Radio ", r.PhraseInfo())
}

func TestSearch_StartIsMandatory(t *testing.T) {
	rs := search(t, Config{
		Start:        "Quick",
		Phrases:      []string{"Brown"},
		End:          "Fox",
		MaxWildcards: 3,
		MaxUnmatched: 3,
		Words:        []string{"qbf", "bqf", "xqbf", "qbfx", "qabf"},
	})
	assert.Equal(t, []string{"qbf", "qabf"}, words(rs))
}

func TestSearch_StartAndEndOverlapNeedsRoom(t *testing.T) {
	// "fo" is stripped first, leaving nothing for the "o" suffix.
	rs := search(t, Config{Start: "Free Online", End: "Over", Words: []string{"fo", "foo"}})
	assert.Equal(t, []string{"foo"}, words(rs))
}

func TestSearch_NoBodyNoBoundaries(t *testing.T) {
	rs := search(t, Config{MaxWildcards: 2, Words: []string{"abc", "ab", "a"}})
	assert.Equal(t, []string{"a", "ab"}, words(rs))
	assert.Equal(t, "A.. B.. ", rs[1].PhraseInfo())
}

func TestSearch_Ordering(t *testing.T) {
	for name, loc := range locators {
		t.Run(name, func(t *testing.T) {
			rs := search(t, Config{
				Phrases:      []string{"Bee"},
				MaxWildcards: 2,
				Words:        []string{"bbb", "ba", "b", "ab", "a"},
				Locator:      loc,
			})
			assert.Equal(t, []string{"b", "ab", "ba", "bbb", "bbb", "bbb"}, words(rs))

			// The three tilings of "bbb" order by where the phrase sits, wildcards first.
			assert.Equal(t, "B.. B.. Bee ", rs[3].PhraseInfo())
			assert.Equal(t, "B.. Bee B.. ", rs[4].PhraseInfo())
			assert.Equal(t, "Bee B.. B.. ", rs[5].PhraseInfo())

			for i := 1; i < len(rs); i++ {
				assert.Negative(t, Compare(rs[i-1], rs[i]))
			}
		})
	}
}

func TestSearch_DeduplicatesRepeatedWords(t *testing.T) {
	rs := search(t, Config{Phrases: []string{"Dog"}, Words: []string{"d", "d", "d"}})
	assert.Len(t, rs, 1)
}

func TestSearch_UnusedFromClobberedPhrase(t *testing.T) {
	cfg := Config{Phrases: []string{"Bee", "Apple Bee"}, Words: []string{"ab"}}
	assert.Empty(t, search(t, cfg))

	cfg.MaxUnmatched = 1
	rs := search(t, cfg)
	require.Len(t, rs, 1)
	assert.Equal(t, 1, rs[0].Unused)
	assert.Equal(t, "Apple Bee ", rs[0].PhraseInfo())
}

func TestSearch_EmptyStrippedWordWithBody(t *testing.T) {
	rs := search(t, Config{
		Start:        "Go",
		Phrases:      []string{"Tea"},
		MaxUnmatched: 5,
		Words:        []string{"g"},
	})
	assert.Empty(t, rs)
}

func TestSearch_UnusedPlusPresentIsBodySize(t *testing.T) {
	body := []string{"Apple", "Nut", "Apple", "Nut Apple"}
	s, err := New(Config{
		Phrases:      body,
		MaxWildcards: 10,
		MaxUnmatched: 10,
		Words:        []string{"banana", "ananas", "nana", "anna", "canal"},
	})
	require.NoError(t, err)
	rs := s.Search()
	require.NotEmpty(t, rs)
	for _, r := range rs {
		present := 0
		for _, sp := range r.Spans {
			if !sp.IsWildcard() {
				present++
			}
		}
		assert.Equal(t, len(body), r.Unused+present, r.Word)
	}
}

func TestSearch_Idempotent(t *testing.T) {
	for name, loc := range locators {
		t.Run(name, func(t *testing.T) {
			s, err := New(Config{
				Phrases:      []string{"Apple", "Nut"},
				MaxWildcards: 3,
				MaxUnmatched: 1,
				Words:        []string{"banana", "ant", "pan", "nap", "canal", "an"},
				Locator:      loc,
			})
			require.NoError(t, err)
			first := s.Search()
			second := s.Search()
			require.Equal(t, len(first), len(second))
			for i := range first {
				assert.True(t, first[i].Equal(second[i]))
			}
		})
	}
}

func TestSearch_LocatorsAgree(t *testing.T) {
	cfg := Config{
		Phrases:      []string{"Apple", "Nut", "Apple", "Nut Apple"},
		MaxWildcards: 4,
		MaxUnmatched: 2,
		Words:        []string{"banana", "ananas", "nana", "anna", "canal", "panama"},
	}
	scan := search(t, cfg)
	cfg.Locator = ahocorasick.Factory
	aho := search(t, cfg)

	require.Equal(t, len(scan), len(aho))
	for i := range scan {
		assert.True(t, scan[i].Equal(aho[i]), "result %d", i)
	}
}

func TestSearch_NoResults(t *testing.T) {
	assert.Empty(t, search(t, Config{Phrases: []string{"Zebra"}, Words: []string{"apple"}}))
	assert.Empty(t, search(t, Config{Phrases: []string{"Zebra"}}))
}

func TestNew_PhraseErrors(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		want   error
		phrase string
	}{
		{"body invalid char", Config{Phrases: []string{"Good", "Ba-d"}}, phrase.ErrInvalidCharacter, "Ba-d"},
		{"body no capitals", Config{Phrases: []string{"lower"}}, phrase.ErrNoCapitals, "lower"},
		{"start invalid", Config{Start: "St4rt"}, phrase.ErrInvalidCharacter, "St4rt"},
		{"end no capitals", Config{End: "end"}, phrase.ErrNoCapitals, "end"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			var perr *phrase.Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.phrase, perr.Phrase)
		})
	}
}

func TestNew_NegativeLimits(t *testing.T) {
	_, err := New(Config{MaxWildcards: -1})
	assert.ErrorIs(t, err, ErrNegativeLimit)
	_, err = New(Config{MaxUnmatched: -2})
	assert.ErrorIs(t, err, ErrNegativeLimit)
}

func TestSearcher_Candidates(t *testing.T) {
	s, err := New(Config{Start: "Alpha", Words: []string{"ab", "ba", "a", "aa"}})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Candidates())
	assert.Empty(t, s.Body())
}
