// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Grid is the number of badge columns and rows that fit on one page.
type Grid struct {
	Columns int `json:"columns" yaml:"columns"`
	Rows    int `json:"rows" yaml:"rows"`
}

// TagsPerPage returns the capacity of one page.
func (g Grid) TagsPerPage() int {
	return g.Columns * g.Rows
}

// Cell is one badge slot: a name and the font size fitted to it.
type Cell struct {
	Name     string `json:"name" yaml:"name"`
	FontSize int    `json:"font_size" yaml:"font_size"`
}

// Page is one printed page of badges in row-major order. Every row holds
// Grid.Columns cells except possibly the last row of the last page.
type Page struct {
	// Number is the 1-based page number.
	Number int      `json:"number" yaml:"number"`
	Rows   [][]Cell `json:"rows" yaml:"rows"`
}

// Count returns the number of badges on the page.
func (p Page) Count() int {
	n := 0
	for _, r := range p.Rows {
		n += len(r)
	}
	return n
}

// Sheet is the complete, render-ready badge layout. Dimensions are in
// PDF points.
type Sheet struct {
	Grid       Grid    `json:"grid" yaml:"grid"`
	PageSize   string  `json:"page_size" yaml:"page_size"`
	PageWidth  float64 `json:"page_width" yaml:"page_width"`
	PageHeight float64 `json:"page_height" yaml:"page_height"`
	Margin     float64 `json:"margin" yaml:"margin"`
	CellWidth  float64 `json:"cell_width" yaml:"cell_width"`
	CellHeight float64 `json:"cell_height" yaml:"cell_height"`
	Font       string  `json:"font" yaml:"font"`
	Pages      []Page  `json:"pages" yaml:"pages"`
}

// Names returns the number of badges across all pages.
func (s *Sheet) Names() int {
	n := 0
	for _, p := range s.Pages {
		n += p.Count()
	}
	return n
}
