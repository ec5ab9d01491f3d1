package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/logframe/internal/cli"
	"github.com/aretw0/logframe/pkg/domain"
	"github.com/spf13/cobra"
)

var recordsCmd = &cobra.Command{
	Use:   "records <organization>",
	Short: "List the recorded evaluations of an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(ctx context.Context, rt *cli.Runtime) error {
			reader := rt.Records()
			if reader == nil {
				return fmt.Errorf("no record store configured: use --records-dir or --redis")
			}
			recs, err := reader.Records(ctx, args[0])
			if err != nil {
				return err
			}
			return render(cmd, recs, func() string { return recordsMarkdown(args[0], recs) })
		})
	},
}

func recordsMarkdown(org string, recs []domain.Record) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Evaluations of %s\n\n", org)
	if len(recs) == 0 {
		sb.WriteString("Nothing recorded yet.\n")
		return sb.String()
	}
	sb.WriteString("| When | Operation | Theme |\n|---|---|---|\n")
	for _, r := range recs {
		theme := r.Theme
		if theme == "" {
			theme = "-"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", r.EvaluatedAt.Format(time.RFC3339), r.Operation, theme)
	}
	return sb.String()
}

func init() {
	rootCmd.AddCommand(recordsCmd)
}
