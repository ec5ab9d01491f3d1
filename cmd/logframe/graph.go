package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/logframe"
	"github.com/aretw0/logframe/internal/cli"
	"github.com/aretw0/logframe/internal/presentation/graph"
	"github.com/aretw0/logframe/internal/presentation/tui"
	"github.com/aretw0/logframe/pkg/domain"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Render a mermaid diagram of a design",
	Long: `Kinds:
  toc           {nodes, edges} as a flowchart
  problem-tree  {causes, core_problem, effects} as a graph
  timeline      {outcome_statement, timeline_months} as a gantt chart`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")

		var source string
		switch kind {
		case "toc":
			var req logframe.PathwayRequest
			if err := cli.ReadInput(args[0], &req); err != nil {
				return err
			}
			source = graph.TheoryOfChange(req.Nodes, req.Edges)
		case "problem-tree":
			var tree domain.ProblemTree
			if err := cli.ReadInput(args[0], &tree); err != nil {
				return err
			}
			source = graph.ProblemTree(tree)
		case "timeline":
			var req logframe.OutcomeRequest
			if err := cli.ReadInput(args[0], &req); err != nil {
				return err
			}
			source = graph.OutcomeTimeline(req.Statement, req.TimelineMonths)
		default:
			return fmt.Errorf("unknown diagram kind %q", kind)
		}

		d := graph.NewDiagram(source)
		return render(cmd, d, func() string {
			var sb strings.Builder
			sb.WriteString(tui.CodeMarkdown("mermaid", d.Source))
			fmt.Fprintf(&sb, "\n- [Edit on mermaid.live](%s)\n- [PNG](%s)\n- [SVG](%s)\n", d.PreviewURL, d.PNGURL, d.SVGURL)
			return sb.String()
		})
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("kind", "toc", "Diagram kind: toc, problem-tree or timeline")
}
