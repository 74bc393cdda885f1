// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"fmt"
	"math"

	"github.com/pdiddy/nametags/pkg/types"
)

// BuildSheet lays names out on pages according to cfg. Each name is fitted
// to half the cell (floored to whole points) using w.
func BuildSheet(list []string, cfg types.Config, w Wrapper) (*types.Sheet, error) {
	page, ok := LookupPageSize(cfg.PageSize)
	if !ok {
		return nil, fmt.Errorf("unknown page size %q", cfg.PageSize)
	}
	margin := 0.0
	if cfg.Margins {
		margin = DefaultMargin
	}
	cellW, cellH := CM(cfg.CellWidthCM), CM(cfg.CellHeightCM)

	grid, err := NewGrid(page, margin, cellW, cellH)
	if err != nil {
		return nil, err
	}

	fitW, fitH := math.Floor(cellW/2), math.Floor(cellH/2)
	sizes := make(map[string]int)
	cells := make([]types.Cell, len(list))
	for i, name := range list {
		size, seen := sizes[name]
		if !seen {
			size = FitFontSize(w, name, cfg.FontName, fitW, fitH)
			sizes[name] = size
		}
		cells[i] = types.Cell{Name: name, FontSize: size}
	}

	sheet := &types.Sheet{
		Grid:       grid,
		PageSize:   page.Name,
		PageWidth:  page.Width,
		PageHeight: page.Height,
		Margin:     margin,
		CellWidth:  cellW,
		CellHeight: cellH,
		Font:       cfg.FontName,
	}
	for i, p := range Paginate(cells, grid.TagsPerPage()) {
		sheet.Pages = append(sheet.Pages, types.Page{
			Number: i + 1,
			Rows:   Reshape(p, grid.Columns),
		})
	}
	return sheet, nil
}
