// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preview prints a computed badge sheet as text, either as a boxed
// grid for the terminal or as a YAML plan.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/nametags/pkg/types"
)

const (
	// DefaultWidth is used when the terminal width is unknown.
	DefaultWidth = 80

	minCellWidth = 6
	maxCellWidth = 24
)

// CellWidth returns the number of characters available inside each cell
// when columns cells share totalWidth terminal columns.
func CellWidth(totalWidth, columns int) int {
	if totalWidth <= 0 {
		totalWidth = DefaultWidth
	}
	if columns < 1 {
		columns = 1
	}
	w := (totalWidth-1)/columns - 1
	return max(minCellWidth, min(maxCellWidth, w))
}

// Text writes each page of sheet as a box-drawn grid no wider than
// totalWidth where possible. Every cell shows the wrapped name followed by
// its font size.
func Text(w io.Writer, sheet *types.Sheet, totalWidth int) error {
	cw := CellWidth(totalWidth, sheet.Grid.Columns)
	var b strings.Builder

	fmt.Fprintf(&b, "%d names on %d page(s), %d x %d per %s page, font %s\n",
		sheet.Names(), len(sheet.Pages), sheet.Grid.Columns, sheet.Grid.Rows, sheet.PageSize, sheet.Font)

	for _, page := range sheet.Pages {
		fmt.Fprintf(&b, "\nPage %d of %d (%d badges)\n", page.Number, len(sheet.Pages), page.Count())
		for r, row := range page.Rows {
			if r == 0 {
				b.WriteString(rule("┌", "┬", "┐", len(row), cw))
			} else {
				b.WriteString(separator(len(page.Rows[r-1]), len(row), cw))
			}
			writeRow(&b, row, cw)
		}
		if n := len(page.Rows); n > 0 {
			b.WriteString(rule("└", "┴", "┘", len(page.Rows[n-1]), cw))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func rule(left, mid, right string, cells, width int) string {
	if cells < 1 {
		return ""
	}
	seg := strings.Repeat("─", width)
	return left + strings.Repeat(seg+mid, cells-1) + seg + right + "\n"
}

// separator draws the line between a row of above cells and a row of below
// cells, closing off the columns only one of them has.
func separator(above, below, width int) string {
	n := max(above, below)
	if n < 1 {
		return ""
	}
	var b strings.Builder
	b.WriteString("├")
	seg := strings.Repeat("─", width)
	for i := 1; i <= n; i++ {
		b.WriteString(seg)
		up, down := i <= above, i <= below
		last := i == n
		switch {
		case up && down && last:
			b.WriteString("┤")
		case up && down:
			b.WriteString("┼")
		case up && last:
			b.WriteString("┘")
		case up:
			b.WriteString("┴")
		case last:
			b.WriteString("┐")
		default:
			b.WriteString("┬")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func writeRow(b *strings.Builder, row []types.Cell, width int) {
	blocks := make([][]string, len(row))
	height := 0
	for i, c := range row {
		blocks[i] = cellLines(c, width)
		height = max(height, len(blocks[i]))
	}
	for line := 0; line < height; line++ {
		b.WriteString("│")
		for _, block := range blocks {
			text := ""
			if line < len(block) {
				text = block[line]
			}
			b.WriteString(center(text, width))
			b.WriteString("│")
		}
		b.WriteString("\n")
	}
}

func cellLines(c types.Cell, width int) []string {
	var lines []string
	for _, l := range strings.Split(wordwrap.String(c.Name, width), "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, truncate.StringWithTail(l, uint(width), "…"))
	}
	return append(lines, fmt.Sprintf("%dpt", c.FontSize))
}

func center(s string, width int) string {
	pad := width - ansi.PrintableRuneWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// YAML writes the sheet plan as a YAML document.
func YAML(w io.Writer, sheet *types.Sheet) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sheet); err != nil {
		return fmt.Errorf("encoding sheet: %w", err)
	}
	return enc.Close()
}
