// Package render turns parsed tokens into output documents. Renderers are
// pure data transformations; none of them touch the rule engine.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/HydroRoll-Team/conventional-role-play/pkg/parser"
)

// Renderer renders a token sequence into one output document.
type Renderer interface {
	Render(tokens []*parser.Token) (string, error)
}

// ForFormat returns the renderer for a format name: json, markdown or
// html.
func ForFormat(format string) (Renderer, error) {
	switch format {
	case "json":
		return &JSONRenderer{Indent: true}, nil
	case "markdown":
		return &MarkdownRenderer{}, nil
	case "html":
		return NewHTMLRenderer(), nil
	default:
		return nil, fmt.Errorf("unsupported format type '%s'", format)
	}
}

// JSONRenderer emits the tokens as a JSON array. HTML escaping is disabled
// so CJK and markup-heavy log text stays readable.
type JSONRenderer struct {
	Indent bool
}

func (r *JSONRenderer) Render(tokens []*parser.Token) (string, error) {
	if tokens == nil {
		tokens = []*parser.Token{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if r.Indent {
		enc.SetIndent("", "    ")
	}
	if err := enc.Encode(tokens); err != nil {
		return "", fmt.Errorf("failed to encode tokens as JSON: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// MarkdownRenderer emits one list item per token, labelled with its type.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(tokens []*parser.Token) (string, error) {
	var b strings.Builder
	for _, tok := range tokens {
		fmt.Fprintf(&b, "- **%s**: %s\n", tok.Type, tok.Content)
	}
	return b.String(), nil
}

// HTMLRenderer emits a minimal standalone document. Token content is
// escaped; the token type becomes the list item's class.
type HTMLRenderer struct {
	Title string
}

// NewHTMLRenderer creates an HTML renderer with the default title.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{Title: "TRPG Log Output"}
}

func (r *HTMLRenderer) Render(tokens []*parser.Token) (string, error) {
	title := html.EscapeString(r.Title)

	var b strings.Builder
	fmt.Fprintf(&b, "<html><head><title>%s</title></head><body>\n", title)
	fmt.Fprintf(&b, "<h1>%s</h1>\n<ul>\n", title)
	for _, tok := range tokens {
		fmt.Fprintf(&b, "<li class=%q>%s</li>\n", tok.Type, html.EscapeString(tok.Content))
	}
	b.WriteString("</ul>\n</body></html>\n")
	return b.String(), nil
}
