package parser

import "strings"

// LiteralMatcher answers cheap containment and counting queries over a
// fixed list of literal substrings. No pattern-language semantics are
// involved; comparison is plain byte-wise containment.
type LiteralMatcher struct {
	patterns []string
}

// NewLiteralMatcher stores the patterns verbatim. Duplicates and ordering
// are preserved because they key FindMatches output.
func NewLiteralMatcher(patterns []string) *LiteralMatcher {
	stored := make([]string, len(patterns))
	copy(stored, patterns)
	return &LiteralMatcher{patterns: stored}
}

// ContainsAny reports whether at least one stored pattern occurs in text.
func (m *LiteralMatcher) ContainsAny(text string) bool {
	for _, p := range m.patterns {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// FindMatches returns the subsequence of stored patterns, in original
// order with duplicates included, that occur in text.
func (m *LiteralMatcher) FindMatches(text string) []string {
	found := []string{}
	for _, p := range m.patterns {
		if strings.Contains(text, p) {
			found = append(found, p)
		}
	}
	return found
}

// CountMatches returns, per stored pattern, the number of non-overlapping
// occurrences in text using a left-to-right scan. Duplicate stored
// patterns collapse to a single map key. An empty pattern counts as zero
// occurrences.
func (m *LiteralMatcher) CountMatches(text string) map[string]int {
	counts := make(map[string]int, len(m.patterns))
	for _, p := range m.patterns {
		if p == "" {
			counts[p] = 0
			continue
		}
		counts[p] = strings.Count(text, p)
	}
	return counts
}
