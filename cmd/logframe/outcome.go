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

var outcomeCmd = &cobra.Command{
	Use:   "outcome <file>",
	Short: "Score a student outcome against the SMART heuristics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var req logframe.OutcomeRequest
		if err := cli.ReadInput(args[0], &req); err != nil {
			return err
		}

		return withRuntime(cmd, func(ctx context.Context, rt *cli.Runtime) error {
			r, err := rt.Engine.ValidateOutcome(ctx, req)
			if err != nil {
				return err
			}
			localized := cli.Localize(ctx, rt.Engine, settings.cfg.Language, *r)
			return render(cmd, localized, func() string {
				return fmt.Sprintf("# SMART score: %d/5\n\n", localized.SMART.Score) +
					tui.ListMarkdown("Issues", localized.SMART.Issues, "None.") +
					tui.ListMarkdown("Aligned competencies", localized.Competencies, "Give a theme and grade range to list them.") +
					tui.ListMarkdown("Policy references", localized.PolicyReferences, "None.")
			}, tui.Verdict(r.SMART.Valid, "SMART", "NOT SMART"))
		})
	},
}

// targetFile is the input of the targets command.
type targetFile struct {
	OrganizationID string                   `yaml:"organization_id"`
	Indicators     []domain.IndicatorTarget `yaml:"indicators"`
}

var targetsCmd = &cobra.Command{
	Use:   "targets <file>",
	Short: "Check indicator baselines, targets and dates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in targetFile
		if err := cli.ReadInput(args[0], &in); err != nil {
			return err
		}

		return withRuntime(cmd, func(ctx context.Context, rt *cli.Runtime) error {
			results, err := rt.Engine.ValidateTargets(ctx, in.OrganizationID, in.Indicators)
			if err != nil {
				return err
			}
			localized := cli.Localize(ctx, rt.Engine, settings.cfg.Language, results)
			return render(cmd, localized, func() string { return targetsMarkdown(localized) })
		})
	},
}

func targetsMarkdown(results []domain.TargetResult) string {
	var sb strings.Builder
	sb.WriteString("# Indicator targets\n\n")
	if len(results) == 0 {
		sb.WriteString("No indicators given.\n")
	}
	for _, r := range results {
		sb.WriteString(tui.ListMarkdown(fmt.Sprintf("%s (%s)", r.IndicatorName, r.Status), r.Warnings, "No warnings."))
	}
	return sb.String()
}

var practicesCmd = &cobra.Command{
	Use:   "practices <file>",
	Short: "Check a stakeholder's desired practices improve on the current ones",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var req logframe.PracticeRequest
		if err := cli.ReadInput(args[0], &req); err != nil {
			return err
		}

		return withRuntime(cmd, func(ctx context.Context, rt *cli.Runtime) error {
			report, err := rt.Engine.ValidatePractices(ctx, req)
			if err != nil {
				return err
			}
			localized := cli.Localize(ctx, rt.Engine, settings.cfg.Language, *report)
			return render(cmd, localized, func() string {
				return tui.ListMarkdown("Practice feedback for "+req.StakeholderID, localized.Feedback, "No concerns.") +
					tui.ListMarkdown("Typical current practices", localized.Suggestions.SuggestedCurrent, "None on record.") +
					tui.ListMarkdown("Typical desired practices", localized.Suggestions.SuggestedDesired, "None on record.")
			})
		})
	},
}

func init() {
	rootCmd.AddCommand(outcomeCmd)
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(practicesCmd)
}
