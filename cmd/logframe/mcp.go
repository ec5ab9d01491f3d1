package main

import (
	"context"

	"github.com/aretw0/logframe/internal/cli"
	"github.com/aretw0/logframe/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the engine as MCP tools over stdio",
	Long: `Starts a Model Context Protocol server on stdin/stdout.
Logs go to stderr so they never corrupt the protocol stream.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(cmd, func(ctx context.Context, rt *cli.Runtime) error {
			settings.logger.Info("starting mcp server", "language", settings.cfg.Language)
			return mcp.NewServer(rt.Engine, settings.cfg.Language, settings.logger).ServeStdio()
		})
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
