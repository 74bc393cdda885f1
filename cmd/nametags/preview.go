// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pdiddy/nametags/internal/generate"
	"github.com/pdiddy/nametags/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the badge layout without writing a PDF",
	Long: `Preview computes the same layout as generate and prints it: a text grid
per page with each name and its fitted font size, or with --yaml the full
sheet plan.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Bool("yaml", false, "print the sheet plan as YAML")
	previewCmd.Flags().Int("width", 0, "output width in columns (default: terminal width or 80)")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	asYAML, _ := cmd.Flags().GetBool("yaml")
	width, _ := cmd.Flags().GetInt("width")

	res, err := generate.Plan(generate.Options{ConfigPath: configPath(cmd)}, os.Stderr)
	if err != nil {
		return err
	}
	if asYAML {
		return preview.YAML(os.Stdout, res.Sheet)
	}
	if width <= 0 {
		width = terminalWidth()
	}
	return preview.Text(os.Stdout, res.Sheet, width)
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return preview.DefaultWidth
}
