package main

import (
	"testing"

	"github.com/HydroRoll-Team/conventional-role-play/pkg/parser"
	"github.com/HydroRoll-Team/conventional-role-play/pkg/rules"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Empty", "", nil},
		{"Single line", "hello", []string{"hello"}},
		{"Trailing newline", "a\nb\n", []string{"a", "b"}},
		{"CRLF", "a\r\nb\r\n", []string{"a", "b"}},
		{"Blank line kept", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitLines(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, got)
			}
			for i, want := range tt.expected {
				if got[i] != want {
					t.Errorf("Line %d: expected '%s', got '%s'", i, want, got[i])
				}
			}
		})
	}
}

func TestAnnotationEngine(t *testing.T) {
	engine, err := annotationEngine()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	extractor, err := rules.DefaultRules().Extractor()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		content string
		tags    string
	}{
		{"[d20 = 18]", "game_mechanics,success"},
		{"[d100 = 100]", "game_mechanics,success"},
		{"[d20 = 5]", "game_mechanics,failure"},
		{"[d20 = 12]", "game_mechanics"},
		{"[d20 = 15]", "game_mechanics"},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			tok := parser.NewToken(rules.TypeDiceRoll, tt.content)
			extractor.Enrich(tok)
			result := engine.Process(tok, true)
			tags, _ := result.GetMetadata("tags")
			if tags != tt.tags {
				t.Errorf("Expected tags '%s', got '%s'", tt.tags, tags)
			}
		})
	}

	// Non-dice tokens pass through untouched.
	tok := engine.Process(parser.NewToken("dialogue", "「你好」"), true)
	if _, ok := tok.GetMetadata("tags"); ok {
		t.Error("Expected no tags on dialogue token")
	}
}
