// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a computed badge sheet into a document. The Writer
// interface keeps layout independent of the output format; PDFWriter is the
// go-pdf/fpdf implementation.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/pdiddy/nametags/internal/layout"
	"github.com/pdiddy/nametags/pkg/types"
)

// Writer serializes a sheet to w.
type Writer interface {
	Write(w io.Writer, sheet *types.Sheet) error
}

// PDFWriter renders one PDF page per sheet page. Each page holds a table of
// bordered cells, centred horizontally and starting half a margin from the
// top, with every name centred in its cell at its fitted size.
type PDFWriter struct {
	// Title is stored in the document information dictionary.
	Title string
	// CreationDate overrides the document timestamp when non-zero.
	CreationDate time.Time
}

// borderWidth is the cell grid line width in points.
const borderWidth = 1.0

// Write implements Writer.
func (pw PDFWriter) Write(w io.Writer, sheet *types.Sheet) error {
	if sheet == nil {
		return errors.New("render: sheet is nil")
	}
	if len(sheet.Pages) == 0 {
		return errors.New("render: sheet has no pages")
	}
	fc, err := resolveFace(sheet.Font)
	if err != nil {
		return err
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: sheet.PageWidth, Ht: sheet.PageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(sheet.Margin/2, sheet.Margin/2, sheet.Margin/2)
	pdf.SetCatalogSort(true)
	pdf.SetCreator("nametags", true)
	if pw.Title != "" {
		pdf.SetTitle(pw.Title, true)
	}
	if !pw.CreationDate.IsZero() {
		pdf.SetCreationDate(pw.CreationDate)
		pdf.SetModificationDate(pw.CreationDate)
	}
	if err := fc.register(pdf); err != nil {
		return err
	}

	pdf.SetLineWidth(borderWidth)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetFillColor(255, 255, 255)
	pdf.SetTextColor(0, 0, 0)

	tableW := float64(sheet.Grid.Columns) * sheet.CellWidth
	x0 := (sheet.PageWidth - tableW) / 2
	y0 := sheet.Margin / 2

	for _, page := range sheet.Pages {
		pdf.AddPage()
		for r, row := range page.Rows {
			for c, cell := range row {
				x := x0 + float64(c)*sheet.CellWidth
				y := y0 + float64(r)*sheet.CellHeight
				drawCell(pdf, fc, cell, x, y, sheet.CellWidth, sheet.CellHeight)
			}
		}
	}

	if pdf.Err() {
		return fmt.Errorf("building PDF: %w", pdf.Error())
	}
	return pdf.Output(w)
}

func drawCell(pdf *fpdf.Fpdf, fc face, cell types.Cell, x, y, w, h float64) {
	pdf.Rect(x, y, w, h, "FD")

	size := float64(cell.FontSize)
	pdf.SetFont(fc.family, fc.style, size)
	lines := pdf.SplitText(fc.measureText(cell.Name), w)
	lineH := size * layout.LineSpacing
	top := y + (h-float64(len(lines))*lineH)/2
	for i, line := range lines {
		pdf.SetXY(x, top+float64(i)*lineH)
		pdf.CellFormat(w, lineH, fc.drawText(line), "", 0, "CM", false, 0, "")
	}
}

// WriteFile renders sheet with wr to path. The document is written to a
// temporary file next to path and renamed over it, so an existing file is
// replaced only by a complete document.
func WriteFile(path string, wr Writer, sheet *types.Sheet) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".nametags-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	writeErr := wr.Write(tmpFile, sheet)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return writeErr
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
