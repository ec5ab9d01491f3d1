package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/logframe/internal/cli"
	"github.com/aretw0/logframe/internal/presentation/tui"
	"github.com/aretw0/logframe/pkg/domain"
	"github.com/spf13/cobra"
)

var refineCmd = &cobra.Command{
	Use:   "refine [statement...]",
	Short: "Score the clarity of a problem statement and suggest a rewrite",
	Long:  `The statement is taken from the arguments, or from --file when given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		statement := strings.Join(args, " ")
		if path, _ := cmd.Flags().GetString("file"); path != "" {
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read statement: %w", err)
			}
			statement = strings.TrimSpace(string(raw))
		}
		if statement == "" {
			return fmt.Errorf("a problem statement is required")
		}
		orgID, _ := cmd.Flags().GetString("org")

		return withRuntime(cmd, func(ctx context.Context, rt *cli.Runtime) error {
			r, err := rt.Engine.RefineProblem(ctx, orgID, statement)
			if err != nil {
				return err
			}
			localized := cli.Localize(ctx, rt.Engine, settings.cfg.Language, *r)
			return render(cmd, localized, func() string { return refinementMarkdown(localized) })
		})
	},
}

func refinementMarkdown(r domain.Refinement) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Clarity: %d/5\n\n", r.ClarityScore)

	issues := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		issues[i] = fmt.Sprintf("`%s` %s", issue.IssueType, issue.Description)
	}
	sb.WriteString(tui.ListMarkdown("Issues", issues, "None."))
	fmt.Fprintf(&sb, "## Refined statement\n\n> %s\n\n", r.RefinedStatement)

	causes := make([]string, len(r.RootCauses))
	for i, c := range r.RootCauses {
		causes[i] = fmt.Sprintf("**%s**: %s", c.Cause, c.Rationale)
	}
	sb.WriteString(tui.ListMarkdown("Suggested root causes", causes, ""))
	return sb.String()
}

func init() {
	rootCmd.AddCommand(refineCmd)
	orgFlag(refineCmd)
	refineCmd.Flags().String("file", "", "Read the statement from a text file")
}
