// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import "strings"

// Lengths are PDF points.
const (
	PointsPerInch = 72.0
	PointsPerCM   = PointsPerInch / 2.54

	// DefaultMargin is subtracted from each page dimension when margins
	// are enabled.
	DefaultMargin = PointsPerInch
)

// CM converts centimetres to points.
func CM(v float64) float64 {
	return v * PointsPerCM
}

// PageSize is a portrait paper size in points.
type PageSize struct {
	Name   string
	Width  float64
	Height float64
}

var pageSizes = map[string]PageSize{
	"letter": {Name: "letter", Width: 612, Height: 792},
	"legal":  {Name: "legal", Width: 612, Height: 1008},
	"a4":     {Name: "a4", Width: 595.28, Height: 841.89},
	"a5":     {Name: "a5", Width: 420.94, Height: 595.28},
}

// LookupPageSize resolves a case-insensitive paper name. An empty name is
// letter.
func LookupPageSize(name string) (PageSize, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = "letter"
	}
	ps, ok := pageSizes[key]
	return ps, ok
}
