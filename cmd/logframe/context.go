package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/logframe/internal/cli"
	"github.com/aretw0/logframe/internal/presentation/tui"
	"github.com/aretw0/logframe/pkg/domain"
	"github.com/spf13/cobra"
)

var contextCmd = &cobra.Command{
	Use:   "context <profile>",
	Short: "Recommend an LFA template and list the state's known challenges",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var profile domain.OrganizationProfile
		if err := cli.ReadInput(args[0], &profile); err != nil {
			return err
		}
		orgID, _ := cmd.Flags().GetString("org")

		return withRuntime(cmd, func(ctx context.Context, rt *cli.Runtime) error {
			analysis, err := rt.Engine.AnalyzeContext(ctx, orgID, profile)
			if err != nil {
				return err
			}
			localized := cli.Localize(ctx, rt.Engine, settings.cfg.Language, *analysis)
			return render(cmd, localized, func() string { return contextMarkdown(localized) })
		})
	},
}

func contextMarkdown(a domain.ContextAnalysis) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Recommended template: `%s`\n\n%s\n\n", a.Recommendation.TemplateKey, a.Recommendation.Rationale)

	patterns := make([]string, len(a.Patterns))
	for i, p := range a.Patterns {
		patterns[i] = fmt.Sprintf("**%s**: %s", p.Name, p.Reason)
	}
	sb.WriteString(tui.ListMarkdown("Similar program patterns", patterns, "None."))

	challenges := make([]string, len(a.Challenges))
	for i, c := range a.Challenges {
		challenges[i] = fmt.Sprintf("**%s**: %s", c.Challenge, c.Reason)
	}
	sb.WriteString(tui.ListMarkdown("Potential challenges", challenges, "None known for this state."))
	return sb.String()
}

func init() {
	rootCmd.AddCommand(contextCmd)
	orgFlag(contextCmd)
}
