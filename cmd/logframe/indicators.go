package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/logframe"
	"github.com/aretw0/logframe/internal/cli"
	"github.com/aretw0/logframe/internal/presentation/tui"
	"github.com/aretw0/logframe/pkg/domain"
	"github.com/spf13/cobra"
)

var indicatorsCmd = &cobra.Command{
	Use:   "indicators <file>",
	Short: "Suggest indicators for student outcomes and practice changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var req logframe.IndicatorRequest
		if err := cli.ReadInput(args[0], &req); err != nil {
			return err
		}

		return withRuntime(cmd, func(ctx context.Context, rt *cli.Runtime) error {
			set, err := rt.Engine.SuggestIndicators(ctx, req)
			if err != nil {
				return err
			}
			localized := cli.Localize(ctx, rt.Engine, settings.cfg.Language, *set)
			return render(cmd, localized, func() string { return indicatorsMarkdown(localized) })
		})
	},
}

func suggestionLines(in []domain.IndicatorSuggestion) []string {
	lines := make([]string, len(in))
	for i, s := range in {
		lines[i] = fmt.Sprintf("**%s**: %s", s.Subject, s.Indicator)
	}
	return lines
}

func indicatorsMarkdown(set domain.IndicatorSet) string {
	var sb strings.Builder
	sb.WriteString("# Suggested indicators\n\n")
	sb.WriteString(tui.ListMarkdown("Student outcomes", suggestionLines(set.OutcomeIndicators), "No outcomes given."))
	for _, p := range set.PracticeIndicators {
		sb.WriteString(tui.ListMarkdown("Practices of "+p.StakeholderID, suggestionLines(p.Indicators), "No desired practices."))
	}
	return sb.String()
}

func init() {
	rootCmd.AddCommand(indicatorsCmd)
}
