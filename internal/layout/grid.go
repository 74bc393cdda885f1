// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout computes the badge grid: how many cells fit on a page, how
// the names are split into pages and rows, and which font size each name
// gets. It has no PDF dependency; text wrapping is supplied through the
// Wrapper interface.
package layout

import (
	"fmt"
	"math"

	"github.com/pdiddy/nametags/pkg/types"
)

// NewGrid returns the number of whole cells of cellWidth x cellHeight that
// fit on page after subtracting margin from each dimension. It fails when
// not even one cell fits.
func NewGrid(page PageSize, margin, cellWidth, cellHeight float64) (types.Grid, error) {
	if cellWidth <= 0 || cellHeight <= 0 {
		return types.Grid{}, fmt.Errorf("cell dimensions must be positive, got %gx%g", cellWidth, cellHeight)
	}
	g := types.Grid{
		Columns: int(math.Floor((page.Width - margin) / cellWidth)),
		Rows:    int(math.Floor((page.Height - margin) / cellHeight)),
	}
	if g.Columns < 1 || g.Rows < 1 {
		return types.Grid{}, fmt.Errorf("a %.1fx%.1fpt cell does not fit on a %s page", cellWidth, cellHeight, page.Name)
	}
	return g, nil
}

// PageCount returns ceil(total / perPage).
func PageCount(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// Paginate splits items into consecutive pages of perPage items. Only the
// last page may be shorter.
func Paginate[T any](items []T, perPage int) [][]T {
	n := PageCount(len(items), perPage)
	pages := make([][]T, 0, n)
	for p := 0; p < n; p++ {
		start := p * perPage
		end := min(start+perPage, len(items))
		pages = append(pages, items[start:end])
	}
	return pages
}

// Reshape lays items out in row-major rows of columns items. Only the last
// row may be shorter.
func Reshape[T any](items []T, columns int) [][]T {
	return Paginate(items, columns)
}
