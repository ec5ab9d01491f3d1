package main

import (
	"fmt"

	"github.com/aretw0/logframe"
	"github.com/aretw0/logframe/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of logframe",
	Run: func(cmd *cobra.Command, args []string) {
		if output(cmd).Styled() {
			tui.PrintBanner(cmd.OutOrStdout())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "logframe version %s\n", logframe.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
