// Package rules loads rule definitions from YAML or TOML files and builds
// the parser and literal matcher they describe.
package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/HydroRoll-Team/conventional-role-play/pkg/parser"
)

// PatternRule is one pattern entry in a rules file. Fields optionally
// names the pattern's capture groups; when present, the extractor stores
// the captured values as token metadata under these names.
type PatternRule struct {
	Pattern  string   `yaml:"pattern" toml:"pattern"`
	Type     string   `yaml:"type" toml:"type"`
	Priority int      `yaml:"priority" toml:"priority"`
	Fields   []string `yaml:"fields,omitempty" toml:"fields,omitempty"`
}

// RulesFile represents the structure of a rules file: prioritized pattern
// rules for the parser plus plain keywords for the literal matcher.
type RulesFile struct {
	Patterns []PatternRule `yaml:"patterns" toml:"patterns"`
	Keywords []string      `yaml:"keywords,omitempty" toml:"keywords,omitempty"`
}

// LoadRulesFile loads and parses a rules file. Files with a .toml
// extension are parsed as TOML; everything else is treated as YAML.
func LoadRulesFile(filename string) (*RulesFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file '%s': %w", filename, err)
	}

	var rules RulesFile
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		if err := toml.Unmarshal(data, &rules); err != nil {
			return nil, fmt.Errorf("failed to parse TOML in rules file '%s': %w", filename, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &rules); err != nil {
			return nil, fmt.Errorf("failed to parse YAML in rules file '%s': %w", filename, err)
		}
	}

	return &rules, nil
}

// Build constructs a parser and a literal matcher from the rules file.
// The first pattern that fails to compile aborts the build; the returned
// error names the offending entry and wraps the engine diagnostic.
func (rf *RulesFile) Build() (*parser.Parser, *parser.LiteralMatcher, error) {
	p := parser.NewParser()
	for _, pr := range rf.Patterns {
		if err := p.AddRule(pr.Pattern, pr.Type, pr.Priority); err != nil {
			return nil, nil, fmt.Errorf("rule '%s': %w", pr.Type, err)
		}
	}
	return p, parser.NewLiteralMatcher(rf.Keywords), nil
}

// ToYAML serializes the rules file, suitable for the make-rules generator.
func (rf *RulesFile) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(rf)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rules to YAML: %w", err)
	}
	return data, nil
}
