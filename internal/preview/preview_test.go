// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/nametags/internal/layout"
	"github.com/pdiddy/nametags/pkg/types"
)

func sevenNameSheet(t *testing.T) *types.Sheet {
	t.Helper()
	cfg := types.DefaultConfig()
	cfg.CellWidthCM = 10
	cfg.CellHeightCM = 12
	cfg.Margins = false
	sheet, err := layout.BuildSheet(
		[]string{"Alice Dupont", "Théo Leblanc", "Claire Leblanc", "David Petit", "Emma Moreau", "Ada", "Maximilian Alexander von Habsburg"},
		cfg, layout.EstimateWrapper{})
	require.NoError(t, err)
	return sheet
}

func TestCellWidth(t *testing.T) {
	assert.Equal(t, 24, CellWidth(200, 2))
	assert.Equal(t, 18, CellWidth(80, 4))
	assert.Equal(t, 6, CellWidth(20, 10))
	assert.Equal(t, CellWidth(DefaultWidth, 3), CellWidth(0, 3))
}

func TestText(t *testing.T) {
	sheet := sevenNameSheet(t)
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sheet, 41))
	out := buf.String()

	assert.Contains(t, out, "7 names on 2 page(s), 2 x 2 per letter page, font Helvetica-Bold")
	assert.Contains(t, out, "Page 1 of 2 (4 badges)")
	assert.Contains(t, out, "Page 2 of 2 (3 badges)")
	assert.Contains(t, out, "Théo Leblanc")
	assert.Contains(t, out, "24pt")

	// Every grid line has the same display width.
	width := 0
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "│") && !strings.HasPrefix(line, "┌") && !strings.HasPrefix(line, "├") && !strings.HasPrefix(line, "└") {
			continue
		}
		w := ansi.PrintableRuneWidth(line)
		if width == 0 {
			width = w
		}
		// The short last row of page 2 has its own, narrower lines.
		assert.LessOrEqual(t, w, width, line)
	}
	assert.Equal(t, 41, width)

	// Page 2 ends with a one-cell row under a two-cell row.
	seg := strings.Repeat("─", CellWidth(41, 2))
	assert.Contains(t, out, "├"+seg+"┼"+seg+"┘\n")
}

func TestSeparator(t *testing.T) {
	tests := []struct {
		above, below, width int
		want                string
	}{
		{above: 3, below: 3, width: 1, want: "├─┼─┼─┤\n"},
		{above: 2, below: 1, width: 2, want: "├──┼──┘\n"},
		{above: 3, below: 1, width: 1, want: "├─┼─┴─┘\n"},
		{above: 1, below: 2, width: 1, want: "├─┼─┐\n"},
		{above: 0, below: 0, width: 1, want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, separator(tt.above, tt.below, tt.width), "%d over %d", tt.above, tt.below)
	}
}

func TestTextTruncatesLongWords(t *testing.T) {
	sheet := &types.Sheet{
		Grid:  types.Grid{Columns: 1, Rows: 1},
		Font:  "Courier",
		Pages: []types.Page{{Number: 1, Rows: [][]types.Cell{{{Name: "Supercalifragilistic", FontSize: 3}}}}},
	}
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sheet, 9))
	assert.Contains(t, buf.String(), "…")
	assert.Contains(t, buf.String(), "3pt")
}

func TestYAML(t *testing.T) {
	sheet := sevenNameSheet(t)
	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, sheet))

	var decoded types.Sheet
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sheet.Grid, decoded.Grid)
	require.Len(t, decoded.Pages, 2)
	assert.Equal(t, "Ada", decoded.Pages[1].Rows[0][1].Name)
	assert.Equal(t, 7, decoded.Names())
}
