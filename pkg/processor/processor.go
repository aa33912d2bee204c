// Package processor enriches parsed tokens with metadata using a small
// condition/action rule engine. It arbitrates rules by priority the same
// way the parser arbitrates patterns: append then stable sort, descending.
package processor

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/HydroRoll-Team/conventional-role-play/pkg/logging"
	"github.com/HydroRoll-Team/conventional-role-play/pkg/parser"
)

// Field names with built-in meaning in conditions and actions. Any other
// field name addresses a metadata key.
const (
	FieldType    = "type"
	FieldContent = "content"
)

// ConditionKind selects how a condition compares a token field.
type ConditionKind string

const (
	Equals     ConditionKind = "equals"
	Contains   ConditionKind = "contains"
	Matches    ConditionKind = "matches"
	StartsWith ConditionKind = "starts_with"
	EndsWith   ConditionKind = "ends_with"
	InList     ConditionKind = "in_list"
	// GreaterThan and LessThan compare the field and the expected value
	// as numbers. The condition is false when either side is non-numeric.
	GreaterThan ConditionKind = "greater_than"
	LessThan    ConditionKind = "less_than"
)

// Condition is one predicate over a token field. For Matches the Value is
// a pattern, compiled when the owning rule is constructed. For InList the
// Values slice holds the accepted values.
type Condition struct {
	Field  string
	Kind   ConditionKind
	Value  string
	Values []string

	re *regexp.Regexp
}

func (c Condition) holds(tok *parser.Token) bool {
	value, ok := fieldValue(tok, c.Field)
	if !ok {
		return false
	}
	switch c.Kind {
	case Equals:
		return value == c.Value
	case Contains:
		return strings.Contains(value, c.Value)
	case Matches:
		return c.re != nil && c.re.MatchString(value)
	case StartsWith:
		return strings.HasPrefix(value, c.Value)
	case EndsWith:
		return strings.HasSuffix(value, c.Value)
	case InList:
		for _, v := range c.Values {
			if value == v {
				return true
			}
		}
		return false
	case GreaterThan, LessThan:
		have, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return false
		}
		want, err := strconv.ParseFloat(c.Value, 64)
		if err != nil {
			return false
		}
		if c.Kind == GreaterThan {
			return have > want
		}
		return have < want
	}
	return false
}

func fieldValue(tok *parser.Token, field string) (string, bool) {
	switch field {
	case FieldType:
		return tok.Type, true
	case FieldContent:
		return tok.Content, true
	default:
		return tok.GetMetadata(field)
	}
}

// ActionKind selects what an action does to a token.
type ActionKind string

const (
	// SetMetadata writes Field = Value, replacing any previous value.
	SetMetadata ActionKind = "set_metadata"
	// AddMetadata writes Field = Value only if the key is absent.
	AddMetadata ActionKind = "add_metadata"
	// AddTag appends Value to the comma-joined "tags" metadata entry,
	// skipping tags already present.
	AddTag ActionKind = "add_tag"
	// Transform rewrites Field (or the content for FieldContent) with the
	// named function: upper, lower, strip or len.
	Transform ActionKind = "transform"
	// RemoveField deletes the metadata key named by Field.
	RemoveField ActionKind = "remove_field"
	// CopyField copies the value of Field (type, content or a metadata
	// key) into the metadata key named by Value.
	CopyField ActionKind = "copy_field"
)

// Action is one mutation applied to a matched token.
type Action struct {
	Kind  ActionKind
	Field string
	Value string
}

var transforms = map[string]func(string) string{
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
	"strip": strings.TrimSpace,
	"len": func(s string) string {
		return strconv.Itoa(utf8.RuneCountInString(s))
	},
}

func (a Action) apply(tok *parser.Token) {
	switch a.Kind {
	case SetMetadata:
		tok.AddMetadata(a.Field, a.Value)
	case AddMetadata:
		if _, ok := tok.GetMetadata(a.Field); !ok {
			tok.AddMetadata(a.Field, a.Value)
		}
	case AddTag:
		addTag(tok, a.Value)
	case Transform:
		fn, ok := transforms[a.Value]
		if !ok {
			return
		}
		if a.Field == FieldContent {
			tok.Content = fn(tok.Content)
			return
		}
		if current, ok := tok.GetMetadata(a.Field); ok {
			tok.AddMetadata(a.Field, fn(current))
		}
	case RemoveField:
		delete(tok.Metadata, a.Field)
	case CopyField:
		if value, ok := fieldValue(tok, a.Field); ok {
			tok.AddMetadata(a.Value, value)
		}
	}
}

func addTag(tok *parser.Token, tag string) {
	current, ok := tok.GetMetadata("tags")
	if !ok || current == "" {
		tok.AddMetadata("tags", tag)
		return
	}
	for _, existing := range strings.Split(current, ",") {
		if existing == tag {
			return
		}
	}
	tok.AddMetadata("tags", current+","+tag)
}

// Rule is a named set of conditions and actions with a priority. All
// conditions must hold for the rule to match.
type Rule struct {
	Name       string
	Conditions []Condition
	Actions    []Action
	Priority   int
}

// NewRule builds a rule, precompiling the patterns of Matches conditions.
// An invalid pattern fails with *parser.InvalidPatternError and produces
// no rule.
func NewRule(name string, conditions []Condition, actions []Action, priority int) (*Rule, error) {
	compiled := make([]Condition, len(conditions))
	for i, c := range conditions {
		if c.Kind == Matches {
			re, err := regexp.Compile(c.Value)
			if err != nil {
				return nil, &parser.InvalidPatternError{Pattern: c.Value, Err: err}
			}
			c.re = re
		}
		compiled[i] = c
	}
	return &Rule{
		Name:       name,
		Conditions: compiled,
		Actions:    actions,
		Priority:   priority,
	}, nil
}

// MatchesToken reports whether every condition holds for the token.
func (r *Rule) MatchesToken(tok *parser.Token) bool {
	for _, c := range r.Conditions {
		if !c.holds(tok) {
			return false
		}
	}
	return true
}

// Apply returns a copy of the token with the rule's actions applied. The
// input token is never mutated.
func (r *Rule) Apply(tok *parser.Token) *parser.Token {
	result := tok.Clone()
	r.applyActions(result)
	return result
}

func (r *Rule) applyActions(tok *parser.Token) {
	for _, a := range r.Actions {
		a.apply(tok)
	}
}

// Engine owns an ordered collection of annotation rules.
type Engine struct {
	rules  []*Rule
	logger zerolog.Logger
}

// NewEngine creates an empty engine.
func NewEngine() *Engine {
	return &Engine{logger: logging.GetLogger("processor")}
}

// AddRule registers a rule and re-sorts the collection by priority
// descending with a stable sort.
func (e *Engine) AddRule(rule *Rule) {
	e.rules = append(e.rules, rule)
	sort.SliceStable(e.rules, func(i, j int) bool {
		return e.rules[i].Priority > e.rules[j].Priority
	})
	e.logger.Debug().
		Str("rule", rule.Name).
		Int("priority", rule.Priority).
		Int("ruleCount", len(e.rules)).
		Msg("Annotation rule added")
}

// Process runs the engine over one token and returns the annotated copy.
// Rules are tried in priority order; by default only the first matching
// rule is applied, with applyAll every matching rule is applied in order.
func (e *Engine) Process(tok *parser.Token, applyAll bool) *parser.Token {
	result := tok.Clone()
	for _, rule := range e.rules {
		if !rule.MatchesToken(result) {
			continue
		}
		rule.applyActions(result)
		if !applyAll {
			break
		}
	}
	return result
}

// ProcessAll applies Process to each token independently.
func (e *Engine) ProcessAll(tokens []*parser.Token, applyAll bool) []*parser.Token {
	results := make([]*parser.Token, 0, len(tokens))
	for _, tok := range tokens {
		results = append(results, e.Process(tok, applyAll))
	}
	return results
}

// FindMatching returns every rule that matches the token, in priority
// order, without applying any of them.
func (e *Engine) FindMatching(tok *parser.Token) []*Rule {
	var matched []*Rule
	for _, rule := range e.rules {
		if rule.MatchesToken(tok) {
			matched = append(matched, rule)
		}
	}
	return matched
}

// ClearRules removes all rules.
func (e *Engine) ClearRules() {
	e.rules = nil
}

// RuleCount returns the current number of rules.
func (e *Engine) RuleCount() int {
	return len(e.rules)
}
