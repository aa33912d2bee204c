package parser

import "testing"

func TestTokenMetadataRoundTrip(t *testing.T) {
	token := NewToken("dialogue", "「你好世界」")

	token.AddMetadata("speaker", "艾莉娅")
	token.AddMetadata("timestamp", "2025-10-24 14:30:01")

	speaker, ok := token.GetMetadata("speaker")
	if !ok {
		t.Fatal("Expected speaker metadata to be present")
	}
	if speaker != "艾莉娅" {
		t.Errorf("Expected '艾莉娅', got '%s'", speaker)
	}

	if _, ok := token.GetMetadata("missing"); ok {
		t.Error("Expected absent result for missing key")
	}

	// Re-adding a key replaces the value.
	token.AddMetadata("speaker", "GM")
	speaker, _ = token.GetMetadata("speaker")
	if speaker != "GM" {
		t.Errorf("Expected 'GM' after overwrite, got '%s'", speaker)
	}
}

func TestTokenClone(t *testing.T) {
	token := NewToken("action", "**挥剑**")
	token.AddMetadata("round", "3")

	clone := token.Clone()
	clone.AddMetadata("round", "4")
	clone.AddMetadata("extra", "x")

	if round, _ := token.GetMetadata("round"); round != "3" {
		t.Errorf("Clone mutation leaked into original: round = '%s'", round)
	}
	if _, ok := token.GetMetadata("extra"); ok {
		t.Error("Clone mutation leaked a new key into original")
	}
}

func TestSpanOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		overlaps bool
	}{
		{"Identical", Span{0, 3}, Span{0, 3}, true},
		{"Contained", Span{0, 10}, Span{3, 5}, true},
		{"Partial", Span{0, 5}, Span{3, 8}, true},
		{"Touching", Span{0, 3}, Span{3, 6}, false},
		{"Disjoint", Span{0, 3}, Span{5, 8}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.overlaps {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.overlaps)
			}
			// The predicate is symmetric.
			if got := tt.b.Overlaps(tt.a); got != tt.overlaps {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.overlaps)
			}
		})
	}
}

func TestMatchToken(t *testing.T) {
	m := Match{Type: "dice_roll", Content: "[d20 = 18]", Start: 5, End: 15}

	token := m.Token()
	if token.Type != "dice_roll" || token.Content != "[d20 = 18]" {
		t.Errorf("Unexpected token: %+v", token)
	}
	if len(token.Metadata) != 0 {
		t.Errorf("Expected empty metadata, got %v", token.Metadata)
	}
	if m.Span() != (Span{5, 15}) {
		t.Errorf("Unexpected span: %v", m.Span())
	}
}
