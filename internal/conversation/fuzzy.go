package conversation

import "strings"

// levenshteinDistance computes the edit distance between two strings.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for j := 0; j <= len(a); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		for j := 1; j <= len(a); j++ {
			if b[i-1] == a[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = min3(prev[j-1]+1, curr[j-1]+1, prev[j]+1)
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// fuzzyMatch returns the first target the word matches within a typo-tolerant
// edit distance. The allowed distance scales with target length (one third,
// capped at maxDistance, floor of 1) so short names do not match loosely.
func fuzzyMatch(word string, targets []string, maxDistance int) (string, bool) {
	word = strings.ToLower(word)
	for _, target := range targets {
		distance := levenshteinDistance(word, strings.ToLower(target))
		allowed := len(target) / 3
		if allowed > maxDistance {
			allowed = maxDistance
		}
		if allowed < 1 {
			allowed = 1
		}
		if distance <= allowed {
			return target, true
		}
	}
	return "", false
}
