// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

// face is a font resolved to an fpdf family and style.
type face struct {
	family string
	style  string
	// path is set for TrueType fonts, which are embedded as UTF-8 fonts.
	path string
}

var coreFamilies = map[string]string{
	"helvetica":    "Helvetica",
	"arial":        "Helvetica",
	"times":        "Times",
	"courier":      "Courier",
	"symbol":       "Symbol",
	"zapfdingbats": "ZapfDingbats",
}

var coreStyles = map[string]string{
	"":            "",
	"roman":       "",
	"regular":     "",
	"bold":        "B",
	"oblique":     "I",
	"italic":      "I",
	"boldoblique": "BI",
	"bolditalic":  "BI",
}

// resolveFace maps a PostScript-style core font name such as
// "Helvetica-Bold" or "Times-Roman", or a path to a .ttf file.
func resolveFace(name string) (face, error) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(filepath.Ext(name), ".ttf") {
		family := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
		return face{family: family, path: name}, nil
	}

	base, variant, _ := strings.Cut(name, "-")
	family, ok := coreFamilies[strings.ToLower(base)]
	if !ok {
		return face{}, fmt.Errorf("unsupported font %q: use a core PDF font (Helvetica, Times, Courier) or a .ttf file", name)
	}
	style, ok := coreStyles[strings.ToLower(variant)]
	if !ok {
		return face{}, fmt.Errorf("unsupported style %q for font %s", variant, family)
	}
	return face{family: family, style: style}, nil
}

func (fc face) utf8() bool {
	return fc.path != ""
}

// register makes fc available to pdf. Core fonts need no registration.
func (fc face) register(pdf *fpdf.Fpdf) error {
	if !fc.utf8() {
		return nil
	}
	data, err := os.ReadFile(fc.path)
	if err != nil {
		return fmt.Errorf("reading font: %w", err)
	}
	pdf.AddUTF8FontFromBytes(fc.family, fc.style, data)
	if pdf.Err() {
		return fmt.Errorf("loading font %s: %w", fc.path, pdf.Error())
	}
	return nil
}

// maxUTF8Rune is the last character fpdf's UTF-8 width table covers.
const maxUTF8Rune = 0xFFFF

// measureText converts s into the form fpdf's width tables index. Core
// fonts are single-byte Windows-1252, so each character becomes the rune
// with its code page value; characters outside the code page become '?'.
// TrueType fonts keep UTF-8 but characters beyond the Basic Multilingual
// Plane, such as emoji, become U+FFFD.
func (fc face) measureText(s string) string {
	var b strings.Builder
	if fc.utf8() {
		for _, r := range s {
			if r > maxUTF8Rune {
				r = utf8.RuneError
			}
			b.WriteRune(r)
		}
		return b.String()
	}
	for _, r := range s {
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			c = '?'
		}
		b.WriteRune(rune(c))
	}
	return b.String()
}

// drawText converts a measured line to the bytes written to the page.
func (fc face) drawText(measured string) string {
	if fc.utf8() {
		return measured
	}
	b := make([]byte, 0, len(measured))
	for _, r := range measured {
		b = append(b, byte(r))
	}
	return string(b)
}

// plainText converts a measured line back to UTF-8.
func (fc face) plainText(measured string) string {
	if fc.utf8() {
		return measured
	}
	var b strings.Builder
	for _, r := range measured {
		b.WriteRune(charmap.Windows1252.DecodeByte(byte(r)))
	}
	return b.String()
}
