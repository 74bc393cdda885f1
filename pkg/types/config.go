// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Config holds the layout settings read from config.yaml.
type Config struct {
	// NamesFile is the path of the newline-delimited name list.
	NamesFile string `json:"names_file_path" yaml:"names_file_path" mapstructure:"names_file_path"`

	// CellWidthCM is the badge cell width in centimetres.
	CellWidthCM float64 `json:"cell_width_cm" yaml:"cell_width_cm" mapstructure:"cell_width_cm"`

	// CellHeightCM is the badge cell height in centimetres.
	CellHeightCM float64 `json:"cell_height_cm" yaml:"cell_height_cm" mapstructure:"cell_height_cm"`

	// FontName is a core PDF font name (e.g. "Helvetica-Bold") or a path
	// to a TrueType font file.
	FontName string `json:"font_name" yaml:"font_name" mapstructure:"font_name"`

	// PageSize selects the paper: letter, legal, a4 or a5 (default letter).
	PageSize string `json:"page_size" yaml:"page_size" mapstructure:"page_size"`

	// Margins subtracts one inch from each page dimension before the grid
	// is computed (default true).
	Margins bool `json:"margins" yaml:"margins" mapstructure:"margins"`

	// OutputFile is the PDF written by generate (default "nametags.pdf").
	OutputFile string `json:"output_file" yaml:"output_file" mapstructure:"output_file"`
}

// DefaultConfig returns the configuration written when no config file exists.
func DefaultConfig() Config {
	return Config{
		NamesFile:    "names.txt",
		CellWidthCM:  4.0,
		CellHeightCM: 2.5,
		FontName:     "Helvetica-Bold",
		PageSize:     "letter",
		Margins:      true,
		OutputFile:   "nametags.pdf",
	}
}
