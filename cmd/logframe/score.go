package main

import (
	"context"

	"github.com/aretw0/logframe/internal/cli"
	"github.com/aretw0/logframe/internal/presentation/tui"
	"github.com/aretw0/logframe/pkg/domain"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score <snapshot>",
	Short: "Score how completely a design snapshot fills the LFA rubric",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var snapshot domain.Snapshot
		if err := cli.ReadInput(args[0], &snapshot); err != nil {
			return err
		}
		orgID, _ := cmd.Flags().GetString("org")

		return withRuntime(cmd, func(ctx context.Context, rt *cli.Runtime) error {
			report, err := rt.Engine.ScoreCompleteness(ctx, orgID, snapshot)
			if err != nil {
				return err
			}
			localized := cli.Localize(ctx, rt.Engine, settings.cfg.Language, *report)
			return render(cmd, localized,
				func() string { return tui.CompletenessMarkdown(localized) },
				"Completeness: "+tui.ScoreColor(report.CompletionPercentage))
		})
	},
}

var qualityCmd = &cobra.Command{
	Use:   "quality <snapshot>",
	Short: "Run the design quality checks over a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var snapshot domain.Snapshot
		if err := cli.ReadInput(args[0], &snapshot); err != nil {
			return err
		}
		orgID, _ := cmd.Flags().GetString("org")

		return withRuntime(cmd, func(ctx context.Context, rt *cli.Runtime) error {
			report, err := rt.Engine.ScoreDesignQuality(ctx, orgID, snapshot)
			if err != nil {
				return err
			}
			localized := cli.Localize(ctx, rt.Engine, settings.cfg.Language, *report)
			return render(cmd, localized,
				func() string { return tui.QualityMarkdown(localized) },
				"Quality: "+tui.ScoreColor(float64(report.QualityScore)))
		})
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(qualityCmd)
	orgFlag(scoreCmd)
	orgFlag(qualityCmd)
}
