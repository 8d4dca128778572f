// Package knowledge is the built-in FAQ corpus about Malaysian car
// insurance, searched by keyword overlap. It backs the question-answering
// tool exposed to the model so factual answers stay deterministic.
package knowledge

import (
	"sort"
	"strings"
)

// Entry is one FAQ item.
type Entry struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Keywords []string `json:"keywords"`
}

// Result is an entry with its relevance score for a query.
type Result struct {
	Entry
	Score float64 `json:"score"`
}

const maxResults = 3

// Search scores every entry against the query and returns the top three
// matches. Words shorter than three characters are ignored.
func Search(query string) []Result {
	queryWords := strings.Fields(strings.ToLower(query))

	var results []Result
	for _, entry := range entries {
		var score float64
		question := strings.ToLower(entry.Question)
		answer := strings.ToLower(entry.Answer)

		for _, word := range queryWords {
			if len(word) < 3 {
				continue
			}
			for _, keyword := range entry.Keywords {
				if strings.Contains(keyword, word) || strings.Contains(word, keyword) {
					score += 2
				}
			}
			if strings.Contains(question, word) {
				score += 1.5
			}
			if strings.Contains(answer, word) {
				score += 0.5
			}
		}

		if score > 0 {
			results = append(results, Result{Entry: entry, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// ByCategory returns all entries in a category, case-insensitively.
func ByCategory(category string) []Entry {
	var matched []Entry
	for _, entry := range entries {
		if strings.EqualFold(entry.Category, category) {
			matched = append(matched, entry)
		}
	}
	return matched
}

// Categories lists the unique categories in declaration order.
func Categories() []string {
	seen := map[string]bool{}
	var categories []string
	for _, entry := range entries {
		if !seen[entry.Category] {
			seen[entry.Category] = true
			categories = append(categories, entry.Category)
		}
	}
	return categories
}
