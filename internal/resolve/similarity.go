package resolve

import "strings"

// Similarity scores how alike two strings are, in [0, 1]. The metric is
// pluggable so the tiered resolution flow does not care whether matching is
// edit-distance or token based.
type Similarity interface {
	Score(a, b string) float64
}

// EditRatio scores by Levenshtein distance normalized to the longer input:
// 1 - dist/maxLen. It is the default metric for catching one-or-two-letter
// misspellings of short team names.
type EditRatio struct{}

func (EditRatio) Score(a, b string) float64 {
	if a == b {
		return 1.0
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0.0
	}
	longer := max(len(ra), len(rb))
	return 1.0 - float64(levenshtein(ra, rb))/float64(longer)
}

func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, min(cur[j-1]+1, prev[j-1]+cost))
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// WordJaccard scores by word-set overlap, useful for multi-word names where
// word order and spacing vary more than spelling.
type WordJaccard struct{}

func (WordJaccard) Score(a, b string) float64 {
	if a == b {
		return 1.0
	}
	wa := strings.Fields(strings.ToLower(a))
	wb := strings.Fields(strings.ToLower(b))
	if len(wa) == 0 || len(wb) == 0 {
		return 0.0
	}
	setA := make(map[string]bool, len(wa))
	for _, w := range wa {
		setA[w] = true
	}
	setB := make(map[string]bool, len(wb))
	for _, w := range wb {
		setB[w] = true
	}
	inter := 0
	for w := range setB {
		if setA[w] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}
