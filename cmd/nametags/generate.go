// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/nametags/internal/generate"
	"github.com/pdiddy/nametags/internal/ledger"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the badge PDF",
	Long: `Generate loads the configuration and the names file, computes how many
cells fit on a page, picks the largest font size (at most 24pt) at which
each name fits its cell, and writes the PDF. An existing output file is
replaced.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().String("output", "", "output PDF path (default: output_file from the configuration)")
	cmd.Flags().Duration("pause", 0, "wait this long before exiting, e.g. to keep a console window open")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	pause, _ := cmd.Flags().GetDuration("pause")

	opts := generate.Options{
		ConfigPath: configPath(cmd),
		OutputPath: output,
	}

	if !viper.GetBool("no_history") {
		store, err := ledger.Open(viper.GetString("history_db"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
		} else {
			defer store.Close()
			opts.History = store
		}
	}

	_, err := generate.Run(cmd.Context(), opts, os.Stdout)
	if pause > 0 {
		fmt.Fprintf(os.Stderr, "exiting in %s\n", pause)
		select {
		case <-cmd.Context().Done():
		case <-time.After(pause):
		}
	}
	return err
}
