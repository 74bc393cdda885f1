// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the nametags CLI.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/nametags/internal/config"
	"github.com/pdiddy/nametags/internal/generate"
	"github.com/pdiddy/nametags/internal/ledger"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the nametags CLI. Run without a
// subcommand it behaves like generate.
var rootCmd = &cobra.Command{
	Use:   "nametags",
	Short: "Print a sheet of name badges as a PDF grid",
	Long: `nametags reads a list of names (one per line) and a YAML layout
configuration, fits each name into a fixed-size cell and writes the cells
as a bordered grid to a PDF, one page per full grid.

Missing config.yaml and names.txt files are created with defaults on the
first run. Every configuration key can also be set from the environment
as NAMETAGS_<KEY>, for example NAMETAGS_FONT_NAME=Times-Bold.`,
	SilenceUsage: true,
	RunE:         runGenerate,
}

func init() {
	rootCmd.PersistentFlags().String("config", generate.DefaultConfigPath, "layout configuration file (created with defaults if missing)")
	rootCmd.PersistentFlags().String("history-db", ledger.DefaultPath, "SQLite database recording generated sheets")
	rootCmd.PersistentFlags().Bool("no-history", false, "do not record this run in the history database")

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()
	viper.BindPFlag("history_db", rootCmd.PersistentFlags().Lookup("history-db"))
	viper.BindPFlag("no_history", rootCmd.PersistentFlags().Lookup("no-history"))

	addGenerateFlags(rootCmd)
}

// configPath returns the --config flag value.
func configPath(cmd *cobra.Command) string {
	p, _ := cmd.Flags().GetString("config")
	if p == "" {
		return generate.DefaultConfigPath
	}
	return p
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
