package heuristics

import "strings"

// fallbackConcepts is how many concepts ExtractConcepts guesses when
// nothing in the text matches.
const fallbackConcepts = 2

// ExtractConcepts returns the concepts whose names appear in text,
// case-insensitively, in the order of available. With no match it falls
// back to the first two available concepts, so the result is non-empty
// whenever available is.
func ExtractConcepts(text string, available []string) []string {
	lower := strings.ToLower(text)

	var hits []string
	for _, c := range available {
		if strings.Contains(lower, strings.ToLower(c)) {
			hits = append(hits, c)
		}
	}
	if len(hits) > 0 {
		return hits
	}

	n := min(fallbackConcepts, len(available))
	return append([]string{}, available[:n]...)
}
