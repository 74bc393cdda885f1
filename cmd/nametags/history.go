// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/nametags/internal/ledger"
	"github.com/pdiddy/nametags/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously generated badge sheets",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to show")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	store, err := ledger.Open(viper.GetString("history_db"))
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}
	return formatHistory(runs, jsonOutput)
}

func formatHistory(runs []types.Run, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-20s  %-6s  %-5s  %-8s  %-16s  %s\n",
		"ID", "When", "Names", "Pages", "Per page", "Font", "Output")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
	for _, r := range runs {
		font := r.Font
		if len(font) > 16 {
			font = font[:13] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-20s  %-6d  %-5d  %-8d  %-16s  %s\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.Names, r.Pages, r.TagsPerPage, font, r.OutputFile)
	}
	return nil
}
