package rules

import (
	"fmt"

	"github.com/HydroRoll-Team/conventional-role-play/pkg/parser"
)

// Extractor pulls capture-group values out of parsed tokens and stores
// them as metadata, using the field names declared on the pattern rules.
type Extractor struct {
	byType map[string][]extractEntry
}

type extractEntry struct {
	rule   *parser.Rule
	fields []string
}

// Extractor compiles the pattern rules that declare capture-group field
// names; entries without fields are skipped. An invalid pattern fails
// with the same wrapped *parser.InvalidPatternError as Build.
func (rf *RulesFile) Extractor() (*Extractor, error) {
	ext := &Extractor{byType: make(map[string][]extractEntry)}
	for _, pr := range rf.Patterns {
		if len(pr.Fields) == 0 {
			continue
		}
		rule, err := parser.NewRule(pr.Pattern, pr.Type, pr.Priority)
		if err != nil {
			return nil, fmt.Errorf("rule '%s': %w", pr.Type, err)
		}
		ext.byType[pr.Type] = append(ext.byType[pr.Type], extractEntry{
			rule:   rule,
			fields: pr.Fields,
		})
	}
	return ext, nil
}

// Enrich matches the token's content against the extraction rules for its
// type and stores the capture-group values under the declared field
// names, matched positionally. The first rule that matches wins; tokens
// of types without extraction rules are left untouched.
func (e *Extractor) Enrich(tok *parser.Token) {
	for _, entry := range e.byType[tok.Type] {
		groups := entry.rule.Extract(tok.Content)
		if groups == nil {
			continue
		}
		for i, name := range entry.fields {
			if i < len(groups) {
				tok.AddMetadata(name, groups[i])
			}
		}
		return
	}
}
