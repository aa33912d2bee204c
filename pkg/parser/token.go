package parser

// Span is a half-open [Start, End) byte interval within a line.
type Span struct {
	Start int
	End   int
}

// Overlaps reports whether two spans intersect under open-interval
// semantics. Spans that merely touch at an endpoint do not overlap.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// MatchRecord is a single raw pattern match with byte offsets into the
// scanned text. It carries no type tag; see Match for accepted results.
type MatchRecord struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// Match is one accepted entry of a parsed line: a typed, non-overlapping
// span together with the text it covers.
type Match struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

// Span returns the byte interval the match covers.
func (m Match) Span() Span {
	return Span{Start: m.Start, End: m.End}
}

// Token converts the match into a Token with empty metadata.
func (m Match) Token() *Token {
	return NewToken(m.Type, m.Content)
}

// Token is the typed output unit of the rule engine. Callers may attach
// arbitrary string-keyed metadata after construction.
type Token struct {
	Type     string            `json:"type"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata"`
}

// NewToken creates a token with the given type tag and content and an
// empty metadata map.
func NewToken(tokenType, content string) *Token {
	return &Token{
		Type:     tokenType,
		Content:  content,
		Metadata: make(map[string]string),
	}
}

// AddMetadata sets a metadata entry, replacing any previous value.
func (t *Token) AddMetadata(key, value string) {
	t.Metadata[key] = value
}

// GetMetadata looks up a metadata entry. A missing key yields ok == false,
// never an error.
func (t *Token) GetMetadata(key string) (value string, ok bool) {
	value, ok = t.Metadata[key]
	return value, ok
}

// Clone returns an independent copy of the token, metadata included.
func (t *Token) Clone() *Token {
	clone := NewToken(t.Type, t.Content)
	for k, v := range t.Metadata {
		clone.Metadata[k] = v
	}
	return clone
}
