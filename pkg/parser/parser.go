// Package parser implements a rule-based text tokenization engine: typed,
// prioritized regex rules are run over a line of text and conflicts between
// overlapping matches are resolved in favour of the higher-priority rule.
package parser

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/HydroRoll-Team/conventional-role-play/pkg/logging"
)

// Parser owns an ordered collection of rules and computes, per line, the
// prioritized non-overlapping tokenization. The rule list is kept sorted by
// priority descending; rules of equal priority keep their insertion order.
//
// A Parser is not safe for concurrent mutation. Read-only use from several
// goroutines is fine as long as no one calls AddRule or ClearRules.
type Parser struct {
	rules  []*Rule
	logger zerolog.Logger
}

// NewParser creates an empty parser. ParseLine on an empty parser always
// yields an empty result.
func NewParser() *Parser {
	return &Parser{logger: logging.GetLogger("parser")}
}

// AddRule compiles pattern and registers it with the given type tag and
// priority. On a compile failure the parser is left unchanged and the
// returned error is an *InvalidPatternError. The rule list is re-sorted
// with a stable sort after every append so that equal-priority rules keep
// their relative insertion order.
func (p *Parser) AddRule(pattern, tokenType string, priority int) error {
	rule, err := NewRule(pattern, tokenType, priority)
	if err != nil {
		return err
	}
	p.rules = append(p.rules, rule)
	sort.SliceStable(p.rules, func(i, j int) bool {
		return p.rules[i].Priority > p.rules[j].Priority
	})
	p.logger.Debug().
		Str("type", tokenType).
		Int("priority", priority).
		Int("ruleCount", len(p.rules)).
		Msg("Rule added")
	return nil
}

// ParseLine scans a single line and returns the accepted matches, ordered
// by start offset, with pairwise non-overlapping spans.
//
// Rules are evaluated in priority order. Each candidate match is discarded
// whole if it overlaps any span already claimed by an earlier rule; there
// is no trimming or partial acceptance. A rule may still claim several
// disjoint matches within one line.
func (p *Parser) ParseLine(line string) []Match {
	var claimed []Span
	result := []Match{}

	for _, rule := range p.rules {
		for _, rec := range rule.FindAll(line) {
			span := Span{Start: rec.Start, End: rec.End}
			if overlapsAny(span, claimed) {
				continue
			}
			claimed = append(claimed, span)
			result = append(result, Match{
				Type:    rule.Type,
				Content: rec.Text,
				Start:   rec.Start,
				End:     rec.End,
			})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Start < result[j].Start
	})

	p.logger.Debug().
		Int("lineLength", len(line)).
		Int("matches", len(result)).
		Msg("Line parsed")
	return result
}

// ParseLines applies ParseLine to each line independently, preserving line
// order. No span state is carried across lines.
func (p *Parser) ParseLines(lines []string) [][]Match {
	results := make([][]Match, 0, len(lines))
	for _, line := range lines {
		results = append(results, p.ParseLine(line))
	}
	return results
}

// ClearRules removes all rules.
func (p *Parser) ClearRules() {
	p.rules = nil
}

// RuleCount returns the current number of rules.
func (p *Parser) RuleCount() int {
	return len(p.rules)
}

func overlapsAny(span Span, claimed []Span) bool {
	for _, c := range claimed {
		if span.Overlaps(c) {
			return true
		}
	}
	return false
}
