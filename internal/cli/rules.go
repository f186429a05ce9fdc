package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okralabs/bulletlint/internal/logging"
	"github.com/okralabs/bulletlint/pkg/lint"
)

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Fixable     bool     `json:"fixable"`
	Tags        []string `json:"tags,omitempty"`
}

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available lint rules",
		Long: `List all available lint rules with their IDs, descriptions,
default severity, and whether they support auto-fixing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registered := lint.DefaultRegistry.Rules()

			if format == formatJSON {
				return outputRulesJSON(cmd, registered)
			}

			logger := logging.NewInteractive()
			logger.Info("available rules")

			for _, rule := range registered {
				fixable := "-"
				if rule.CanFix() {
					fixable = "yes"
				}

				logger.Info(fmt.Sprintf("%s (%s)", rule.Name(), rule.ID()),
					logging.FieldSeverity, rule.DefaultSeverity(),
					logging.FieldFixable, fixable,
					logging.FieldDescription, rule.Description(),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(cmd *cobra.Command, registered []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(registered))
	for _, rule := range registered {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Severity:    string(rule.DefaultSeverity()),
			Fixable:     rule.CanFix(),
			Tags:        rule.Tags(),
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
