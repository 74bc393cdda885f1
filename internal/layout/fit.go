// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"math"
	"strings"
	"unicode/utf8"
)

const (
	// MaxFontSize is where the fitting search starts.
	MaxFontSize = 24
	// MinFontSize is returned when no larger size fits.
	MinFontSize = 1
	// LineSpacing is the line height as a multiple of the font size.
	LineSpacing = 1.2
)

// Wrapper breaks text into lines no wider than maxWidth points when set in
// font at size points.
type Wrapper interface {
	Wrap(text, font string, size, maxWidth float64) []string
}

// FitFontSize returns the largest integer size in [MinFontSize, MaxFontSize]
// whose estimated text box fits within maxWidth x maxHeight. The estimate
// treats every character as half the font size wide and every line as
// LineSpacing times the font size tall; line breaks come from w.
func FitFontSize(w Wrapper, text, font string, maxWidth, maxHeight float64) int {
	size := MaxFontSize
	for ; size > MinFontSize; size-- {
		lines := w.Wrap(text, font, float64(size), maxWidth)
		width, height := EstimateBox(lines, float64(size))
		if width <= maxWidth && height <= maxHeight {
			break
		}
	}
	return size
}

// EstimateBox returns the approximate rendered width and height of lines.
func EstimateBox(lines []string, size float64) (width, height float64) {
	longest := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > longest {
			longest = n
		}
	}
	return float64(longest) * size / 2, float64(len(lines)) * size * LineSpacing
}

// EstimateWrapper wraps greedily at spaces using the same half-em character
// width as EstimateBox, so it needs no font metrics. A word longer than the
// line gets a line of its own.
type EstimateWrapper struct{}

// Wrap implements Wrapper.
func (EstimateWrapper) Wrap(text, _ string, size, maxWidth float64) []string {
	limit := 1
	if size > 0 {
		if n := int(math.Floor(maxWidth / (size / 2))); n > 1 {
			limit = n
		}
	}

	var (
		lines   []string
		line    strings.Builder
		lineLen int
	)
	for _, word := range strings.Fields(text) {
		n := utf8.RuneCountInString(word)
		if lineLen > 0 && lineLen+1+n > limit {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
		if lineLen > 0 {
			line.WriteByte(' ')
			lineLen++
		}
		line.WriteString(word)
		lineLen += n
	}
	if lineLen > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
