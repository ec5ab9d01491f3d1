package main

import (
	"context"
	"fmt"

	"github.com/aretw0/logframe/internal/cli"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load reference data from --catalog-file or --catalog-dir into redis",
	RunE: func(cmd *cobra.Command, args []string) error {
		if settings.cfg.Catalog.Redis.Addr == "" {
			return fmt.Errorf("seed requires --redis")
		}
		data, err := cli.LoadReferenceData(cmdContext(cmd), settings.cfg.Catalog)
		if err != nil {
			return err
		}

		return withRuntime(cmd, func(ctx context.Context, rt *cli.Runtime) error {
			if err := rt.Redis.Seed(ctx, data); err != nil {
				return fmt.Errorf("failed to seed redis: %w", err)
			}
			settings.logger.Info("seeded reference data",
				"ecosystems", len(data.EcosystemPatterns),
				"pathways", len(data.PathwayPatterns),
				"states", len(data.StateChallenges),
				"districts", len(data.DistrictChallenges),
				"methodologies", len(data.Methodologies),
				"stakeholders", len(data.Stakeholders),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %s\n", settings.cfg.Catalog.Redis.Addr)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
