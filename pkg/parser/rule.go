package parser

import (
	"fmt"
	"regexp"
)

// InvalidPatternError reports a pattern that failed to compile. It wraps
// the regexp engine's diagnostic.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// Rule binds one compiled pattern to a type tag and a priority. Higher
// priorities are evaluated first and win span conflicts.
type Rule struct {
	re       *regexp.Regexp
	Type     string
	Priority int
}

// NewRule compiles pattern into a Rule. It returns *InvalidPatternError
// if the pattern is not valid regular-expression syntax.
func NewRule(pattern, tokenType string, priority int) (*Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Err: err}
	}
	return &Rule{re: re, Type: tokenType, Priority: priority}, nil
}

// Pattern returns the source text of the compiled pattern.
func (r *Rule) Pattern() string {
	return r.re.String()
}

// Matches reports whether the pattern matches anywhere in text.
func (r *Rule) Matches(text string) bool {
	return r.re.MatchString(text)
}

// Extract runs the pattern once against text and returns the capture-group
// values of the first match in group order, excluding the whole match.
// Groups that did not participate in the match are omitted. Returns nil
// when the pattern does not match at all; a match with no participating
// groups yields an empty, non-nil slice.
func (r *Rule) Extract(text string) []string {
	idx := r.re.FindStringSubmatchIndex(text)
	if idx == nil {
		return nil
	}
	groups := []string{}
	for i := 1; i < len(idx)/2; i++ {
		lo, hi := idx[2*i], idx[2*i+1]
		if lo < 0 {
			continue
		}
		groups = append(groups, text[lo:hi])
	}
	return groups
}

// FindAll returns every non-overlapping match of the pattern in text, in
// left-to-right scan order.
func (r *Rule) FindAll(text string) []MatchRecord {
	locs := r.re.FindAllStringIndex(text, -1)
	records := make([]MatchRecord, 0, len(locs))
	for _, loc := range locs {
		records = append(records, MatchRecord{
			Start: loc[0],
			End:   loc[1],
			Text:  text[loc[0]:loc[1]],
		})
	}
	return records
}
