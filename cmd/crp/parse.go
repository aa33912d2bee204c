package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HydroRoll-Team/conventional-role-play/pkg/parser"
	"github.com/HydroRoll-Team/conventional-role-play/pkg/processor"
	"github.com/HydroRoll-Team/conventional-role-play/pkg/render"
	"github.com/HydroRoll-Team/conventional-role-play/pkg/rules"
)

func newParseCmd() *cobra.Command {
	var rulesFile, inputFile, outputFile, format string
	var annotate bool

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Tokenize a log with the configured rule set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(rulesFile, inputFile, outputFile, format, annotate)
		},
	}

	cmd.Flags().StringVar(&rulesFile, "rules", "", "Rules file, YAML or TOML (built-in defaults when omitted)")
	cmd.Flags().StringVar(&inputFile, "input", "", "Input log file (defaults to stdin)")
	cmd.Flags().StringVar(&outputFile, "output", "", "Output file (defaults to stdout)")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json, markdown or html")
	cmd.Flags().BoolVar(&annotate, "annotate", false, "Apply the stock annotation rules to parsed tokens")
	return cmd
}

func runParse(rulesFile, inputFile, outputFile, format string, annotate bool) error {
	input, err := readInput(inputFile)
	if err != nil {
		return err
	}

	rf := rules.DefaultRules()
	if rulesFile != "" {
		rf, err = rules.LoadRulesFile(rulesFile)
		if err != nil {
			return err
		}
	}
	p, keywords, err := rf.Build()
	if err != nil {
		return err
	}
	extractor, err := rf.Extractor()
	if err != nil {
		return err
	}

	renderer, err := render.ForFormat(format)
	if err != nil {
		return err
	}

	var tokens []*parser.Token
	for i, line := range splitLines(input) {
		hits := keywords.FindMatches(line)
		for _, m := range p.ParseLine(line) {
			tok := m.Token()
			tok.AddMetadata("line", strconv.Itoa(i+1))
			tok.AddMetadata("start", strconv.Itoa(m.Start))
			tok.AddMetadata("end", strconv.Itoa(m.End))
			if len(hits) > 0 {
				tok.AddMetadata("keywords", strings.Join(hits, ","))
			}
			extractor.Enrich(tok)
			tokens = append(tokens, tok)
		}
	}

	if annotate {
		engine, err := annotationEngine()
		if err != nil {
			return err
		}
		tokens = engine.ProcessAll(tokens, true)
	}

	out, err := renderer.Render(tokens)
	if err != nil {
		return err
	}
	return writeOutput(outputFile, out)
}

// annotationEngine builds the stock annotation rules: dice rolls are
// tagged as game mechanics and classified as success (result above 15)
// or failure (result below 10) using the extracted roll value.
func annotationEngine() (*processor.Engine, error) {
	engine := processor.NewEngine()

	specs := []struct {
		name       string
		conditions []processor.Condition
		tag        string
		priority   int
	}{
		{
			name: "tag-dice-rolls",
			conditions: []processor.Condition{
				{Field: processor.FieldType, Kind: processor.Equals, Value: rules.TypeDiceRoll},
			},
			tag:      "game_mechanics",
			priority: 100,
		},
		{
			name: "tag-high-rolls",
			conditions: []processor.Condition{
				{Field: processor.FieldType, Kind: processor.Equals, Value: rules.TypeDiceRoll},
				{Field: "result", Kind: processor.GreaterThan, Value: "15"},
			},
			tag:      "success",
			priority: 90,
		},
		{
			name: "tag-low-rolls",
			conditions: []processor.Condition{
				{Field: processor.FieldType, Kind: processor.Equals, Value: rules.TypeDiceRoll},
				{Field: "result", Kind: processor.LessThan, Value: "10"},
			},
			tag:      "failure",
			priority: 90,
		},
	}

	for _, spec := range specs {
		rule, err := processor.NewRule(spec.name, spec.conditions,
			[]processor.Action{{Kind: processor.AddTag, Value: spec.tag}}, spec.priority)
		if err != nil {
			return nil, err
		}
		engine.AddRule(rule)
	}
	return engine, nil
}

// readInput reads the whole log from a file, or stdin when path is empty.
func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file '%s': %w", path, err)
	}
	return string(data), nil
}

func writeOutput(path, content string) error {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if path == "" {
		fmt.Print(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output file '%s': %w", path, err)
	}
	return nil
}

// splitLines splits on newlines, tolerating CRLF and a trailing newline.
func splitLines(input string) []string {
	if input == "" {
		return nil
	}
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimSuffix(input, "\n")
	return strings.Split(input, "\n")
}
