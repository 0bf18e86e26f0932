// Package phrase turns user phrase text into the literal an acronym is matched against.
//
// Only the capital letters of a phrase contribute to its matcher, so "Hello World"
// searches for "hw" while "HEllo world" searches for "he". The full phrase is kept
// for display.
package phrase

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrInvalidCharacter is returned for phrases containing anything other than a-z, A-Z or space.
	ErrInvalidCharacter = errors.New("phrase characters can only be a-zA-Z or space")

	// ErrNoCapitals is returned for phrases that contribute nothing to the acronym.
	ErrNoCapitals = errors.New("phrase must have at least one capital letter")
)

// Error reports which phrase failed construction and why.
// Err is one of ErrInvalidCharacter or ErrNoCapitals.
type Error struct {
	Phrase string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Phrase)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Phrase is one part of an acronym. Values are immutable after New.
type Phrase struct {
	// Words is the phrase split on single spaces, kept for output.
	Words []string

	// Matcher is the lowercased capital letters of the phrase, in order.
	Matcher string
}

// New builds a Phrase from raw text.
// Words are split on every single space; repeated spaces yield empty words.
func New(text string) (Phrase, error) {
	var m strings.Builder
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'A' && c <= 'Z':
			m.WriteByte(c - 'A' + 'a')
		case c >= 'a' && c <= 'z', c == ' ':
		default:
			return Phrase{}, &Error{Phrase: text, Err: ErrInvalidCharacter}
		}
	}
	if m.Len() == 0 {
		return Phrase{}, &Error{Phrase: text, Err: ErrNoCapitals}
	}
	return Phrase{
		Words:   strings.Split(text, " "),
		Matcher: m.String(),
	}, nil
}

// NewAll builds phrases in order, stopping at the first invalid one.
func NewAll(texts []string) ([]Phrase, error) {
	out := make([]Phrase, 0, len(texts))
	for _, t := range texts {
		p, err := New(t)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// String returns the phrase as the user wrote it.
func (p Phrase) String() string {
	return strings.Join(p.Words, " ")
}

// Equal reports whether both phrases have the same words and matcher.
func (p Phrase) Equal(o Phrase) bool {
	return p.Matcher == o.Matcher && slices.Equal(p.Words, o.Words)
}

// Compare orders phrases by matcher, then by display text.
func Compare(a, b Phrase) int {
	if c := strings.Compare(a.Matcher, b.Matcher); c != 0 {
		return c
	}
	return slices.Compare(a.Words, b.Words)
}
