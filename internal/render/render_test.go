// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/nametags/internal/layout"
	"github.com/pdiddy/nametags/pkg/types"
)

var pageObject = regexp.MustCompile(`/Type /Page[^s]`)

const testTTF = "testdata/DejaVuSansCondensed.ttf"

func testSheet(t *testing.T, list []string) *types.Sheet {
	t.Helper()
	cfg := types.DefaultConfig()
	cfg.CellWidthCM = 10
	cfg.CellHeightCM = 12
	cfg.Margins = false
	sheet, err := layout.BuildSheet(list, cfg, layout.EstimateWrapper{})
	require.NoError(t, err)
	return sheet
}

func TestResolveFace(t *testing.T) {
	tests := []struct {
		name   string
		want   face
		errMsg string
	}{
		{name: "Helvetica-Bold", want: face{family: "Helvetica", style: "B"}},
		{name: "Helvetica", want: face{family: "Helvetica"}},
		{name: "Times-Roman", want: face{family: "Times"}},
		{name: "Times-BoldItalic", want: face{family: "Times", style: "BI"}},
		{name: "Courier-Oblique", want: face{family: "Courier", style: "I"}},
		{name: "arial-bold", want: face{family: "Helvetica", style: "B"}},
		{name: "fonts/DejaVuSans.ttf", want: face{family: "DejaVuSans", path: "fonts/DejaVuSans.ttf"}},
		{name: "Comic-Sans", errMsg: "unsupported font"},
		{name: "Helvetica-Condensed", errMsg: "unsupported style"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveFace(tt.name)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoreFontEncoding(t *testing.T) {
	fc := face{family: "Helvetica"}

	measured := fc.measureText("Théo €")
	assert.Equal(t, []rune{'T', 'h', 0xE9, 'o', ' ', 0x80}, []rune(measured))
	assert.Equal(t, "Th\xe9o \x80", fc.drawText(measured))
	assert.Equal(t, "Théo €", fc.plainText(measured))

	assert.Equal(t, "?ukasz", fc.plainText(fc.measureText("Łukasz")))

	utf := face{family: "DejaVuSans", path: "x.ttf"}
	assert.Equal(t, "Łukasz", utf.measureText("Łukasz"))
	assert.Equal(t, "Łukasz", utf.drawText("Łukasz"))
	assert.Equal(t, "Zoë \ufffd", utf.measureText("Zoë \U0001F600"))
}

func TestPDFWriterPages(t *testing.T) {
	sheet := testSheet(t, []string{"Alice Dupont", "Théo Leblanc", "Claire Leblanc", "David Petit", "Emma Moreau", "Ada", "Grace"})
	require.Len(t, sheet.Pages, 2)

	var buf bytes.Buffer
	pw := PDFWriter{Title: "Badges", CreationDate: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	require.NoError(t, pw.Write(&buf, sheet))

	out := buf.String()
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Len(t, pageObject.FindAllString(out, -1), 2)
	assert.Contains(t, out, "Helvetica-Bold")
}

func TestPDFWriterTrueType(t *testing.T) {
	sheet := testSheet(t, []string{"Zoë \U0001F600 Smith", "Łukasz Nowak", "𝔄da"})
	sheet.Font = testTTF

	var buf bytes.Buffer
	require.NoError(t, PDFWriter{}.Write(&buf, sheet))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Len(t, pageObject.FindAllString(buf.String(), -1), 1)
}

func TestPDFWriterErrors(t *testing.T) {
	var buf bytes.Buffer

	err := PDFWriter{}.Write(&buf, nil)
	require.Error(t, err)

	err = PDFWriter{}.Write(&buf, &types.Sheet{Font: "Helvetica"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no pages")

	sheet := testSheet(t, []string{"Ada"})
	sheet.Font = "Wingdings"
	err = PDFWriter{}.Write(&buf, sheet)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported font")

	sheet.Font = filepath.Join(t.TempDir(), "missing.ttf")
	err = PDFWriter{}.Write(&buf, sheet)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading font")
}

// failingWriter writes a few bytes and then fails.
type failingWriter struct{}

func (failingWriter) Write(w io.Writer, _ *types.Sheet) error {
	io.WriteString(w, "%PDF-partial")
	return errors.New("disk on fire")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "nametags.pdf")
	sheet := testSheet(t, []string{"Ada", "Grace"})

	require.NoError(t, WriteFile(path, PDFWriter{}, sheet))
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(first, []byte("%PDF-")))

	// Overwrites an existing file.
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))
	require.NoError(t, WriteFile(path, PDFWriter{}, sheet))
	again, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(again, []byte("%PDF-")))
}

func TestWriteFileFailureKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nametags.pdf")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0o644))

	err := WriteFile(path, failingWriter{}, testSheet(t, []string{"Ada"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should be removed")
}

func TestFontWrapper(t *testing.T) {
	fw, err := NewFontWrapper("Helvetica-Bold")
	require.NoError(t, err)

	assert.Equal(t, []string{"Alice Dupont"}, fw.Wrap("Alice Dupont", "Helvetica-Bold", 12, 1000))
	assert.Equal(t, []string{"Alice", "Dupont"}, fw.Wrap("Alice Dupont", "Helvetica-Bold", 12, 60))
	assert.Equal(t, []string{"Théo Leblanc"}, fw.Wrap("Théo Leblanc", "Helvetica-Bold", 12, 1000))

	// Unknown fonts fall back to the estimate.
	assert.Equal(t,
		layout.EstimateWrapper{}.Wrap("Alice Dupont", "", 14, 56),
		fw.Wrap("Alice Dupont", "Nope", 14, 56))
}

func TestFontWrapperTrueType(t *testing.T) {
	fw, err := NewFontWrapper(testTTF)
	require.NoError(t, err)

	assert.Equal(t, []string{"Zoë \ufffd Smith"}, fw.Wrap("Zoë \U0001F600 Smith", testTTF, 12, 1000))
	assert.Equal(t, []string{"Łukasz", "Nowak"}, fw.Wrap("Łukasz Nowak", testTTF, 12, 60))

	got := layout.FitFontSize(fw, "Zoë \U0001F600 Smith", testTTF, 56, 35)
	assert.GreaterOrEqual(t, got, layout.MinFontSize)
	assert.LessOrEqual(t, got, layout.MaxFontSize)
}

func TestFitWithFontWrapperMonotonic(t *testing.T) {
	fw, err := NewFontWrapper("Helvetica-Bold")
	require.NoError(t, err)

	for _, name := range []string{"iiiiiiii llll", "Alice Dupont", "WWW MMM ii", "Jean-Baptiste Poquelin"} {
		for w := 1.0; w <= 200; w++ {
			for h := 1.0; h <= 80; h += 7 {
				got := layout.FitFontSize(fw, name, "Helvetica-Bold", w, h)
				narrower := layout.FitFontSize(fw, name, "Helvetica-Bold", w-1, h)
				shorter := layout.FitFontSize(fw, name, "Helvetica-Bold", w, h-1)
				if narrower > got || shorter > got {
					t.Fatalf("%q at %gx%g -> %d; narrower -> %d, shorter -> %d", name, w, h, got, narrower, shorter)
				}
			}
		}
	}
}

func TestFontWrapperUnknownFont(t *testing.T) {
	_, err := NewFontWrapper("Papyrus")
	require.Error(t, err)
}

func TestFitWithFontWrapper(t *testing.T) {
	fw, err := NewFontWrapper("Helvetica-Bold")
	require.NoError(t, err)
	for _, name := range []string{"Alice Dupont", "Théo Leblanc", "Maximilian Alexander von Habsburg-Lothringen"} {
		got := layout.FitFontSize(fw, name, "Helvetica-Bold", 56, 35)
		assert.GreaterOrEqual(t, got, layout.MinFontSize)
		assert.LessOrEqual(t, got, layout.MaxFontSize)
	}
}
