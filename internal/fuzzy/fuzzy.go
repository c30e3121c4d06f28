// Package fuzzy provides typo-tolerant matching of flag names
// Used by snapflag to suggest a declared flag when an unknown one is given
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher finds candidates within a bounded edit distance of an input
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a new fuzzy matcher with the given max edit distance
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // Don't suggest for very short inputs
	}
}

// Match represents a fuzzy match result
type Match struct {
	Value    string
	Distance int
}

// FindBest returns the closest candidate, or "" if none is close enough
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns every candidate within maxDistance, closest first.
// Distance ignores case, so a candidate differing from input only in case
// ranks first at distance 0; an identical candidate is never returned.
// Ties keep a shared-prefix candidate ahead, then sort alphabetically.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}

	lower := strings.ToLower(input)
	var matches []Match
	for _, candidate := range candidates {
		if candidate == input {
			continue
		}
		if d := m.distance(lower, strings.ToLower(candidate)); d <= m.maxDistance {
			matches = append(matches, Match{Value: candidate, Distance: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		ap, bp := sharesFirstByte(lower, a.Value), sharesFirstByte(lower, b.Value)
		if ap != bp {
			return ap
		}
		return a.Value < b.Value
	})
	return matches
}

func sharesFirstByte(input, candidate string) bool {
	return len(candidate) > 0 && strings.ToLower(candidate[:1]) == input[:1]
}

// distance is the Levenshtein distance of a and b, cut off at maxDistance+1
func (m *Matcher) distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			cur[j] = min(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, cur[j])
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(a)]
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// FindSuggestions returns up to maxSuggestions close candidates
func FindSuggestions(input string, candidates []string, maxDistance, maxSuggestions int) []string {
	matches := NewMatcher(maxDistance).FindMatches(input, candidates)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.Value)
	}
	return out
}
