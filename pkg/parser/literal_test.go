package parser

import "testing"

func TestLiteralMatcherContainsAny(t *testing.T) {
	matcher := NewLiteralMatcher([]string{"骰子", "投掷", "检定"})

	if !matcher.ContainsAny("艾莉娅进行投掷骰子检定") {
		t.Error("Expected a match")
	}
	if matcher.ContainsAny("平静的一天") {
		t.Error("Expected no match")
	}
}

func TestLiteralMatcherFindMatches(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		text     string
		expected []string
	}{
		{"All present", []string{"骰子", "投掷", "检定"}, "艾莉娅进行投掷骰子检定", []string{"骰子", "投掷", "检定"}},
		{"Some present", []string{"foo", "bar", "baz"}, "a bar walks in", []string{"bar"}},
		{"None present", []string{"foo"}, "nothing here", []string{}},
		{"Duplicates kept in order", []string{"a", "b", "a"}, "abc", []string{"a", "b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matcher := NewLiteralMatcher(tt.patterns)
			got := matcher.FindMatches(tt.text)

			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, got)
			}
			for i, want := range tt.expected {
				if got[i] != want {
					t.Errorf("Match %d: expected '%s', got '%s'", i, want, got[i])
				}
			}
		})
	}
}

func TestLiteralMatcherCountMatches(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		text     string
		expected map[string]int
	}{
		{"Non-overlapping aa in aaaa", []string{"aa"}, "aaaa", map[string]int{"aa": 2}},
		{"Non-overlapping aa in aaa", []string{"aa"}, "aaa", map[string]int{"aa": 1}},
		{"Multiple patterns", []string{"骰子", "投掷"}, "投掷骰子再投掷", map[string]int{"骰子": 1, "投掷": 2}},
		{"Absent pattern counts zero", []string{"x"}, "abc", map[string]int{"x": 0}},
		{"Duplicate patterns collapse", []string{"a", "a"}, "aa", map[string]int{"a": 2}},
		{"Empty pattern counts zero", []string{""}, "abc", map[string]int{"": 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matcher := NewLiteralMatcher(tt.patterns)
			got := matcher.CountMatches(tt.text)

			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, got)
			}
			for pattern, want := range tt.expected {
				if got[pattern] != want {
					t.Errorf("Count for '%s': expected %d, got %d", pattern, want, got[pattern])
				}
			}
		})
	}
}

func TestLiteralMatcherIsolation(t *testing.T) {
	source := []string{"a", "b"}
	matcher := NewLiteralMatcher(source)

	// Mutating the caller's slice must not affect the matcher.
	source[0] = "z"
	if !matcher.ContainsAny("a") {
		t.Error("Matcher shared the caller's backing array")
	}
}
