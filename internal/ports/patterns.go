// Package ports defines the interfaces (contracts) that adapters must implement.
// Domain logic depends only on these interfaces, never on concrete implementations.
package ports

// Locator finds every occurrence of a fixed, ordered set of matchers in a word.
// The set is fixed when the locator is built; matchers may repeat.
type Locator interface {
	// Locate returns one slice per matcher, in build order, holding every
	// byte offset at which that matcher starts in word, ascending.
	// Occurrences may overlap ("aa" in "aaa" starts at 0 and 1).
	// A matcher absent from word gets an empty slice.
	Locate(word string) [][]int
}

// LocatorFactory builds a Locator for the given matchers.
type LocatorFactory func(matchers []string) Locator
