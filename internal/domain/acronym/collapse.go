package acronym

// collapse folds each run of characters claimed by the same phrase into one
// entry. Wildcards are never folded: each stays a separate entry so every
// guessed letter can be shown.
func collapse(a assignment) []int {
	out := make([]int, 0, len(a))
	for _, idx := range a {
		if idx != wildcard && len(out) > 0 && out[len(out)-1] == idx {
			continue
		}
		out = append(out, idx)
	}
	return out
}
