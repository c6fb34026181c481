// Package fuzzy ranks candidate spellings by similarity to a mistyped one.
// argv uses it to suggest the intended long option.
package fuzzy

import (
	"slices"
	"strings"
)

// Matcher finds candidates within a bounded edit distance.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher returns a matcher accepting candidates at most maxDistance
// edits away. Inputs shorter than two characters never match.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{maxDistance: maxDistance, minLength: 2}
}

// Match is one ranked candidate.
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0..1, higher is better
}

// FindBest returns the best candidate, or "" when none is close enough.
// Candidates equal to input are not suggestions and are skipped.
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns every candidate within range, best first: higher
// score, then smaller distance, then candidate order.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}
	input = strings.ToLower(input)

	var matches []Match
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if lc == input {
			continue
		}
		d := m.distance(input, lc)
		if d > m.maxDistance {
			continue
		}
		matches = append(matches, Match{Value: c, Distance: d, Score: m.score(input, lc, d)})
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return a.Distance - b.Distance
		}
	})
	return matches
}

// Suggest returns up to limit candidates, best first.
func (m *Matcher) Suggest(input string, candidates []string, limit int) []string {
	matches := m.FindMatches(input, candidates)
	out := make([]string, 0, min(len(matches), limit))
	for _, match := range matches[:min(len(matches), limit)] {
		out = append(out, match.Value)
	}
	return out
}

// score blends edit distance with prefix, length and shared-character
// similarity, capped at 1.
func (m *Matcher) score(a, b string, d int) float64 {
	if d > m.maxDistance {
		return 0
	}
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}

	s := 1 - float64(d)/float64(longest)
	if p := commonPrefix(a, b); p > 0 {
		s += float64(p) / float64(min(len(a), len(b))) * 0.3
	}
	s += (1 - float64(absDiff(len(a), len(b)))/float64(longest)) * 0.2
	s += float64(commonChars(a, b)) / float64(longest) * 0.1
	return min(s, 1)
}

// distance is the Levenshtein distance between a and b, or maxDistance+1
// as soon as the result is known to exceed maxDistance.
func (m *Matcher) distance(a, b string) int {
	if a == "" || b == "" {
		return len(a) + len(b)
	}
	if absDiff(len(a), len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for j := range prev {
		prev[j] = j
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

func commonPrefix(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// commonChars counts characters of b that can be paired with a distinct
// occurrence in a.
func commonChars(a, b string) int {
	avail := make(map[rune]int, len(a))
	for _, r := range a {
		avail[r]++
	}
	n := 0
	for _, r := range b {
		if avail[r] > 0 {
			avail[r]--
			n++
		}
	}
	return n
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
