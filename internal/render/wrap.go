// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"math"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/pdiddy/nametags/internal/layout"
)

// FontWrapper implements layout.Wrapper with the real glyph widths of the
// font. A line breaks at a space once it would be wider than the box or
// longer than the character budget layout.EstimateBox allows at that size,
// so a narrower box never needs fewer lines. A word that fits neither gets a
// line of its own. Fonts are loaded on first use; a font that cannot be
// loaded falls back to layout.EstimateWrapper.
type FontWrapper struct {
	pdf   *fpdf.Fpdf
	faces map[string]*face
}

// NewFontWrapper returns a wrapper that has already loaded font, so font
// errors surface before any layout work.
func NewFontWrapper(font string) (*FontWrapper, error) {
	fw := &FontWrapper{
		pdf:   fpdf.New("P", "pt", "Letter", ""),
		faces: make(map[string]*face),
	}
	if _, err := fw.load(font); err != nil {
		return nil, err
	}
	return fw, nil
}

func (fw *FontWrapper) load(font string) (*face, error) {
	if fc, ok := fw.faces[font]; ok {
		return fc, nil
	}
	fc, err := resolveFace(font)
	if err != nil {
		return nil, err
	}
	if err := fc.register(fw.pdf); err != nil {
		return nil, err
	}
	fw.faces[font] = &fc
	return &fc, nil
}

// Wrap implements layout.Wrapper.
func (fw *FontWrapper) Wrap(text, font string, size, maxWidth float64) []string {
	fc, err := fw.load(font)
	if err != nil {
		return layout.EstimateWrapper{}.Wrap(text, font, size, maxWidth)
	}
	fw.pdf.SetFont(fc.family, fc.style, size)

	limit := 1
	if size > 0 {
		if n := int(math.Floor(maxWidth / (size / 2))); n > 1 {
			limit = n
		}
	}

	var (
		lines []string
		line  []rune
	)
	for _, word := range strings.Fields(text) {
		measured := []rune(fc.measureText(word))
		if len(line) > 0 {
			next := append(append(line[:len(line):len(line)], ' '), measured...)
			if len(next) <= limit && fw.width(fc, next) <= maxWidth {
				line = next
				continue
			}
			lines = append(lines, fc.plainText(string(line)))
		}
		line = measured
	}
	if len(line) > 0 {
		lines = append(lines, fc.plainText(string(line)))
	}
	return lines
}

func (fw *FontWrapper) width(fc *face, measured []rune) float64 {
	return fw.pdf.GetStringWidth(fc.drawText(string(measured)))
}
