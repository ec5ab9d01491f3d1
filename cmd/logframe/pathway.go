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

var validateTocCmd = &cobra.Command{
	Use:   "validate-toc <file>",
	Short: "Check a theory of change for level ordering and completeness",
	Long: `Reads {theme, nodes, edges} and reports every edge that does not advance
exactly one level (activity -> output -> outcome -> impact), every missing
level and the gaps against the theme's reference pattern.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var req logframe.PathwayRequest
		if err := cli.ReadInput(args[0], &req); err != nil {
			return err
		}
		strict, _ := cmd.Flags().GetBool("strict")

		return withRuntime(cmd, func(ctx context.Context, rt *cli.Runtime) error {
			report, err := rt.Engine.ValidatePathway(ctx, req)
			if err != nil {
				return fmt.Errorf("malformed theory of change: %w", err)
			}
			localized := cli.Localize(ctx, rt.Engine, settings.cfg.Language, *report)

			status := tui.Verdict(report.IsValid, "VALID", "INVALID")
			if err := render(cmd, localized, func() string { return pathwayMarkdown(localized) }, status); err != nil {
				return err
			}
			if strict && !report.IsValid {
				return fmt.Errorf("theory of change has %d issues", len(report.Issues))
			}
			return nil
		})
	},
}

var gapsCmd = &cobra.Command{
	Use:   "gaps <file>",
	Short: "List outputs and outcomes the theme's reference pattern expects",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var req logframe.PathwayRequest
		if err := cli.ReadInput(args[0], &req); err != nil {
			return err
		}
		g, err := domain.NewGraph(req.Nodes, req.Edges)
		if err != nil {
			return fmt.Errorf("malformed theory of change: %w", err)
		}

		return withRuntime(cmd, func(ctx context.Context, rt *cli.Runtime) error {
			gaps, err := rt.Engine.DetectGaps(ctx, req.Theme, g)
			if err != nil {
				return err
			}
			gaps = cli.Localize(ctx, rt.Engine, settings.cfg.Language, gaps)
			return render(cmd, gaps, func() string {
				return tui.ListMarkdown("Gaps", gaps, "No gaps against the reference pattern.")
			})
		})
	},
}

func pathwayMarkdown(r logframe.PathwayReport) string {
	var sb strings.Builder
	verdict := "invalid"
	if r.IsValid {
		verdict = "valid"
	}
	fmt.Fprintf(&sb, "# Theory of change: %s\n\n", verdict)
	sb.WriteString(tui.ListMarkdown("Logic issues", r.Issues, "None."))
	sb.WriteString(tui.ListMarkdown("Suggestions", r.Suggestions, "None."))
	return sb.String()
}

func init() {
	rootCmd.AddCommand(validateTocCmd)
	rootCmd.AddCommand(gapsCmd)

	validateTocCmd.Flags().Bool("strict", false, "Exit non-zero when the theory of change has issues")
}
