package util

import (
	"slices"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/samber/lo"
)

// JoinOrNone joins strings with " " or returns "(none)" for empty slices.
func JoinOrNone(items []string) string {
	return JoinOrDefault(items, "(none)")
}

// JoinOrDefault joins strings with " " or returns def for empty slices.
func JoinOrDefault(items []string, def string) string {
	if len(items) == 0 {
		return def
	}
	return strings.Join(items, " ")
}

// Pluralize returns singular if count is 1, otherwise plural.
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// suggestDistance is the largest edit distance still treated as a typo.
const suggestDistance = 2

// LevenshteinDistance returns the edit distance between a and b.
func LevenshteinDistance(a, b string) int {
	return levenshtein.Distance(a, b, nil)
}

// SuggestSimilar returns up to limit candidates within a small edit distance
// of input, closest first. Comparison ignores case.
func SuggestSimilar(input string, candidates []string, limit int) []string {
	if input == "" || len(candidates) == 0 {
		return nil
	}

	type match struct {
		value string
		dist  int
	}
	var matches []match
	needle := strings.ToLower(input)
	for _, c := range candidates {
		d := LevenshteinDistance(needle, strings.ToLower(c))
		if d <= suggestDistance {
			matches = append(matches, match{value: c, dist: d})
		}
	}
	if len(matches) == 0 {
		return nil
	}

	slices.SortStableFunc(matches, func(a, b match) int { return a.dist - b.dist })
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return lo.Map(matches, func(m match, _ int) string { return m.value })
}
