package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/logframe/internal/cli"
	"github.com/aretw0/logframe/internal/config"
	"github.com/aretw0/logframe/internal/presentation/tui"
	"github.com/spf13/cobra"
)

// settings is resolved once per invocation by the root pre-run.
var settings struct {
	cfg    config.Config
	logger *slog.Logger
	format string
}

var rootCmd = &cobra.Command{
	Use:   "logframe",
	Short: "Validate and score Logical Framework (LFA) program designs",
	Long: `logframe checks the internal logic of education program designs:
theory of change ordering, problem trees, rubric completeness and design quality.

Inputs are YAML or JSON files ("-" reads stdin). Results are rendered as
markdown on a terminal, or as JSON with --format json.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	f := rootCmd.PersistentFlags()
	f.String("config", config.DefaultPath, "Path to logframe.yaml")
	f.String("log-level", "", "Log level: debug, info, warn, error")
	f.String("language", "", "Output language (default en)")
	f.String("catalog-file", "", "YAML/JSON reference data file")
	f.String("catalog-dir", "", "Markdown pattern library directory")
	f.String("redis", "", "Redis address for catalog and records")
	f.String("records-dir", "", "Directory for evaluation records")
	f.String("metrics-file", "", "Write Prometheus metrics to this file on exit")
	f.String("format", "markdown", "Output format: markdown or json")
}

func loadSettings(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	overrides := []struct {
		flag string
		dst  *string
	}{
		{"log-level", &cfg.LogLevel},
		{"language", &cfg.Language},
		{"catalog-file", &cfg.Catalog.File},
		{"catalog-dir", &cfg.Catalog.Dir},
		{"redis", &cfg.Catalog.Redis.Addr},
		{"records-dir", &cfg.Records.Dir},
		{"metrics-file", &cfg.MetricsFile},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			*o.dst, _ = cmd.Flags().GetString(o.flag)
		}
	}

	logger, err := cli.CreateLogger(cfg)
	if err != nil {
		return err
	}

	settings.cfg = cfg
	settings.logger = logger
	settings.format, _ = cmd.Flags().GetString("format")
	if settings.format != "markdown" && settings.format != "json" {
		return fmt.Errorf("unknown format %q: use markdown or json", settings.format)
	}
	return nil
}

// withRuntime builds the engine for one command and closes it afterwards.
func withRuntime(cmd *cobra.Command, fn func(ctx context.Context, rt *cli.Runtime) error) (err error) {
	ctx := cmdContext(cmd)
	rt, err := cli.NewRuntime(ctx, settings.cfg, settings.logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rt.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(ctx, rt)
}

// render prints v as JSON, or the markdown built by md. status is a
// coloured one-line summary shown only on terminals.
func render(cmd *cobra.Command, v any, md func() string, status ...string) error {
	if settings.format == "json" {
		return cli.WriteJSON(cmd.OutOrStdout(), v)
	}
	out := output(cmd)
	if err := out.Print(md()); err != nil {
		return err
	}
	if out.Styled() {
		for _, line := range status {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
	}
	return nil
}

func output(cmd *cobra.Command) *tui.Output {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return tui.NewOutput(f)
	}
	return tui.NewPlainOutput(cmd.OutOrStdout())
}

func orgFlag(cmd *cobra.Command) {
	cmd.Flags().String("org", "", "Organization the evaluation is recorded under")
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
