package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/logframe"
	"github.com/aretw0/logframe/internal/cli"
	"github.com/aretw0/logframe/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var methodologiesCmd = &cobra.Command{
	Use:   "methodologies",
	Short: "Shortlist methodologies for a theme, state and budget",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := logframe.MethodologyRequest{}
		req.OrganizationID, _ = cmd.Flags().GetString("org")
		req.Theme, _ = cmd.Flags().GetString("theme")
		req.State, _ = cmd.Flags().GetString("state")
		req.BudgetLakhs, _ = cmd.Flags().GetFloat64("budget")
		if req.Theme == "" {
			return fmt.Errorf("--theme is required")
		}

		return withRuntime(cmd, func(ctx context.Context, rt *cli.Runtime) error {
			sel, err := rt.Engine.SelectMethodologies(ctx, req)
			if err != nil {
				return err
			}
			localized := cli.Localize(ctx, rt.Engine, settings.cfg.Language, *sel)
			return render(cmd, localized, func() string { return methodologiesMarkdown(localized) })
		})
	},
}

func methodologiesMarkdown(sel logframe.MethodologySelection) string {
	var sb strings.Builder
	methods := make([]string, len(sel.Methodologies))
	for i, m := range sel.Methodologies {
		methods[i] = fmt.Sprintf("**%s** (%g-%g lakhs)", m.Name, m.BudgetRangeLakhs[0], m.BudgetRangeLakhs[1])
	}
	sb.WriteString(tui.ListMarkdown("Methodologies", methods, "None match this state and budget."))

	components := make([]string, len(sel.Components))
	for i, c := range sel.Components {
		components[i] = fmt.Sprintf("%s: used in %s", c.Component, strings.Join(c.UsedIn, ", "))
	}
	sb.WriteString(tui.ListMarkdown("Component library", components, "None."))
	return sb.String()
}

var stakeholdersCmd = &cobra.Command{
	Use:   "stakeholders <theme>",
	Short: "List stakeholder groups and recommend those working on a theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orgID, _ := cmd.Flags().GetString("org")

		return withRuntime(cmd, func(ctx context.Context, rt *cli.Runtime) error {
			sel, err := rt.Engine.RecommendStakeholders(ctx, orgID, args[0])
			if err != nil {
				return err
			}
			localized := cli.Localize(ctx, rt.Engine, settings.cfg.Language, *sel)
			return render(cmd, localized, func() string {
				all := make([]string, len(localized.Available))
				for i, s := range localized.Available {
					all[i] = fmt.Sprintf("`%s` %s", s.ID, s.Name)
				}
				return tui.ListMarkdown("Recommended for "+args[0], localized.Recommended, "None.") +
					tui.ListMarkdown("All stakeholder groups", all, "None on record.")
			})
		})
	},
}

func init() {
	rootCmd.AddCommand(methodologiesCmd)
	rootCmd.AddCommand(stakeholdersCmd)
	orgFlag(methodologiesCmd)
	orgFlag(stakeholdersCmd)
	methodologiesCmd.Flags().String("theme", "", "Program theme")
	methodologiesCmd.Flags().String("state", "", "State the program runs in")
	methodologiesCmd.Flags().Float64("budget", 0, "Budget in lakhs")
}
