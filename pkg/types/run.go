// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Run records one successful badge generation in the history ledger.
type Run struct {
	ID          int64     `json:"id" yaml:"id"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	ConfigFile  string    `json:"config_file" yaml:"config_file"`
	NamesFile   string    `json:"names_file" yaml:"names_file"`
	OutputFile  string    `json:"output_file" yaml:"output_file"`
	Names       int       `json:"names" yaml:"names"`
	Pages       int       `json:"pages" yaml:"pages"`
	TagsPerPage int       `json:"tags_per_page" yaml:"tags_per_page"`
	Font        string    `json:"font" yaml:"font"`
}
