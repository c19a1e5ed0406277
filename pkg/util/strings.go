package util

import (
	"strings"
)

// SuggestThreshold is the largest edit distance at which a name is still suggested
const SuggestThreshold = 2

// LevenshteinDistance calculates the number of single character edits
// needed to turn s1 into s2
func LevenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	// only the previous row of the matrix is needed
	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

// Suggest returns whichever candidate is the closest fuzzy match to name,
// ignoring case and surrounding space. The second result is false when no
// candidate is within SuggestThreshold edits.
func Suggest(name string, candidates []string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	best := ""
	bestDistance := SuggestThreshold + 1
	for _, c := range candidates {
		d := LevenshteinDistance(name, strings.ToLower(c))
		if d < bestDistance {
			best, bestDistance = c, d
		}
	}
	return best, best != ""
}

// DidYouMean formats a suggestion for an unknown name, or returns "" when
// nothing is close enough
func DidYouMean(name string, candidates []string) string {
	if s, ok := Suggest(name, candidates); ok {
		return " (did you mean " + s + "?)"
	}
	return ""
}
