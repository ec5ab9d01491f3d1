package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/logframe"
	"github.com/aretw0/logframe/internal/cli"
	"github.com/aretw0/logframe/internal/presentation/graph"
	"github.com/aretw0/logframe/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var problemTreeCmd = &cobra.Command{
	Use:   "problem-tree <file>",
	Short: "Build a causes -> core problem -> effects tree",
	Long: `Reads {theme, state, district, refined_problem_statement, suggested_root_causes},
builds the problem tree and cross-checks the statement against the theme's
ecosystem pattern.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var req logframe.ProblemTreeRequest
		if err := cli.ReadInput(args[0], &req); err != nil {
			return err
		}
		orgID, _ := cmd.Flags().GetString("org")
		if orgID != "" {
			req.OrganizationID = orgID
		}

		return withRuntime(cmd, func(ctx context.Context, rt *cli.Runtime) error {
			report, err := rt.Engine.BuildProblemTree(ctx, req)
			if err != nil {
				return err
			}
			localized := cli.Localize(ctx, rt.Engine, settings.cfg.Language, *report)
			return render(cmd, localized, func() string { return problemTreeMarkdown(localized) })
		})
	},
}

func problemTreeMarkdown(r logframe.ProblemTreeReport) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Problem tree\n\n**Core problem:** %s\n\n", r.Tree.CoreProblem.Label)

	causes := make([]string, len(r.Tree.Causes))
	for i, c := range r.Tree.Causes {
		causes[i] = fmt.Sprintf("%s: %s", c.ID, c.Label)
	}
	effects := make([]string, len(r.Tree.Effects))
	for i, e := range r.Tree.Effects {
		effects[i] = fmt.Sprintf("%s: %s", e.ID, e.Label)
	}
	sb.WriteString(tui.ListMarkdown("Causes", causes, "No root causes given."))
	sb.WriteString(tui.ListMarkdown("Effects", effects, ""))
	sb.WriteString(tui.ListMarkdown("Validation feedback", r.Warnings, "None."))
	if len(r.DistrictChallenges) > 0 {
		sb.WriteString(tui.ListMarkdown("District challenges", r.DistrictChallenges, ""))
	}
	sb.WriteString("## Diagram\n\n")
	sb.WriteString(tui.CodeMarkdown("mermaid", graph.ProblemTree(r.Tree)))
	return sb.String()
}

func init() {
	rootCmd.AddCommand(problemTreeCmd)
	orgFlag(problemTreeCmd)
}
