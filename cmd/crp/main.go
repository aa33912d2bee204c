// crp parses conventional role-play (TRPG) logs into typed tokens using a
// prioritized rule set and renders them as JSON, Markdown or HTML.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HydroRoll-Team/conventional-role-play/pkg/logging"
	"github.com/HydroRoll-Team/conventional-role-play/pkg/rules"
)

const version = "0.1.0"

func newRootCmd() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:     "crp",
		Short:   "Parse conventional role-play logs into typed tokens",
		Version: version,
		Long: `crp scans tabletop-RPG session logs line by line with an ordered set of
typed, prioritized pattern rules and emits the resulting tokens.

Examples:
  crp parse --input session.txt                 # Parse with the built-in rules, JSON to stdout
  crp parse --rules custom.yaml --format html   # Custom rules, HTML output
  crp parse --annotate < session.txt            # Tag dice rolls on the way out
  crp make-rules > rules.yaml                   # Generate the default rules file`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity)
		},
	}

	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase logging verbosity (repeatable)")

	cmd.AddCommand(newParseCmd(), newMakeRulesCmd())
	return cmd
}

func newMakeRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "make-rules",
		Short: "Print the default rules file as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := rules.DefaultRules().ToYAML()
			if err != nil {
				return err
			}
			cmd.Print(string(data))
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
