package services

import (
	"math"
	"strings"
)

// Pure scoring primitives shared by matching, search and candidate search.
// All of them are total: no inputs produce errors.

// SetSimilarity computes the case-insensitive Jaccard index over two skill
// lists. It is 0 when the union is empty.
func SetSimilarity(a, b []string) float64 {
	setA := lowerSet(a)
	setB := lowerSet(b)

	intersection := 0
	for skill := range setA {
		if setB[skill] {
			intersection++
		}
	}

	union := len(setB)
	for skill := range setA {
		if !setB[skill] {
			union++
		}
	}

	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// TextContainsAll reports whether every term is a case-insensitive substring
// of text. It is vacuously true for an empty term list.
func TextContainsAll(text string, terms []string) bool {
	lower := strings.ToLower(text)
	for _, term := range terms {
		if !strings.Contains(lower, strings.ToLower(term)) {
			return false
		}
	}
	return true
}

// ExperienceFit scores how well have years of experience satisfy required
// years: 1 once the requirement is met, linear partial credit below it. The
// denominator is floored at 1 so fractional requirements do not blow up the
// ratio.
func ExperienceFit(have, required float64) float64 {
	if have >= required {
		return 1
	}
	return have / math.Max(1, required)
}

// Round3 rounds to 3 decimal places for presentation. Ranking always happens
// on unrounded values.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Round2 rounds to 2 decimal places for presentation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func lowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}
