package help

import (
	"sort"
	"strings"
)

// levenshtein calculates the edit distance between two strings, keeping only
// the previous matrix row.
func levenshtein(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			best := prev[j-1]
			if a[i-1] != b[j-1] {
				best++
			}
			best = min(best, prev[j]+1, curr[j-1]+1)
			curr[j] = best
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

type suggestion struct {
	name     string
	distance int
}

// FindSimilar ranks candidates against input for "did you mean" output.
// A candidate qualifies by substring containment in either direction or by
// an edit distance of at most 3; ordering is distance then name. Returns up
// to maxResults names.
func FindSimilar(input string, candidates []string, maxResults int) []string {
	const maxDistance = 3

	lowered := strings.ToLower(input)
	var matches []suggestion
	seen := make(map[string]bool)

	for _, cand := range candidates {
		if cand == "" || seen[cand] {
			continue
		}
		seen[cand] = true

		dist := levenshtein(input, cand)
		if dist == 0 {
			continue
		}

		lc := strings.ToLower(cand)
		contained := strings.Contains(lc, lowered) || strings.Contains(lowered, lc)
		if !contained && dist > maxDistance {
			continue
		}
		matches = append(matches, suggestion{name: cand, distance: dist})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].name < matches[j].name
	})

	if len(matches) == 0 {
		return nil
	}
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}

	result := make([]string, len(matches))
	for i, s := range matches {
		result[i] = s.name
	}
	return result
}
