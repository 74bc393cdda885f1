// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate runs the badge pipeline: load the configuration and the
// name list, lay the names out on pages, render the document and record the
// run in the history ledger.
package generate

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/nametags/internal/config"
	"github.com/pdiddy/nametags/internal/layout"
	"github.com/pdiddy/nametags/internal/names"
	"github.com/pdiddy/nametags/internal/render"
	"github.com/pdiddy/nametags/pkg/types"
)

// Recorder stores a completed run. *ledger.Store implements it.
type Recorder interface {
	Record(ctx context.Context, run *types.Run) error
}

// Options controls a pipeline run. Zero values select the defaults.
type Options struct {
	// ConfigPath is the YAML configuration file (default "config.yaml").
	ConfigPath string

	// OutputPath overrides the configured output_file when non-empty.
	OutputPath string

	// Wrapper splits names into lines for font fitting. Nil uses the
	// configured font's real metrics via render.FontWrapper.
	Wrapper layout.Wrapper

	// Writer serializes the sheet. Nil uses render.PDFWriter.
	Writer render.Writer

	// History records successful runs when non-nil.
	History Recorder
}

// DefaultConfigPath is used when Options.ConfigPath is empty.
const DefaultConfigPath = "config.yaml"

// Result describes a planned or generated sheet.
type Result struct {
	Config        types.Config
	ConfigPath    string
	Sheet         *types.Sheet
	OutputFile    string
	ConfigCreated bool
	NamesCreated  bool
}

// Plan loads the inputs and computes the sheet without rendering it.
func Plan(opts Options, w io.Writer) (*Result, error) {
	res := &Result{ConfigPath: opts.ConfigPath}
	if res.ConfigPath == "" {
		res.ConfigPath = DefaultConfigPath
	}

	cfg, created, err := config.Load(res.ConfigPath, w)
	if err != nil {
		return nil, err
	}
	res.Config = cfg
	res.ConfigCreated = created

	res.OutputFile = cfg.OutputFile
	if opts.OutputPath != "" {
		res.OutputFile = opts.OutputPath
	}

	list, created, err := names.Load(cfg.NamesFile, w)
	if err != nil {
		return nil, err
	}
	res.NamesCreated = created
	if len(list) == 0 {
		return nil, fmt.Errorf("no names in %s", cfg.NamesFile)
	}

	wrapper := opts.Wrapper
	if wrapper == nil {
		fw, err := render.NewFontWrapper(cfg.FontName)
		if err != nil {
			return nil, fmt.Errorf("loading font: %w", err)
		}
		wrapper = fw
	}

	sheet, err := layout.BuildSheet(list, cfg, wrapper)
	if err != nil {
		return nil, fmt.Errorf("computing layout: %w", err)
	}
	res.Sheet = sheet
	return res, nil
}

// Run plans the sheet, writes it to the output file and records the run.
// A failure to record history is reported on w but does not fail the run.
func Run(ctx context.Context, opts Options, w io.Writer) (*Result, error) {
	res, err := Plan(opts, w)
	if err != nil {
		return nil, err
	}

	writer := opts.Writer
	if writer == nil {
		writer = render.PDFWriter{Title: "Nametags"}
	}
	if err := render.WriteFile(res.OutputFile, writer, res.Sheet); err != nil {
		return nil, fmt.Errorf("generating PDF: %w", err)
	}
	fmt.Fprintf(w, "generated: %s (%d names, %d pages, %d per page)\n",
		res.OutputFile, res.Sheet.Names(), len(res.Sheet.Pages), res.Sheet.Grid.TagsPerPage())

	if opts.History != nil {
		run := &types.Run{
			ConfigFile:  res.ConfigPath,
			NamesFile:   res.Config.NamesFile,
			OutputFile:  res.OutputFile,
			Names:       res.Sheet.Names(),
			Pages:       len(res.Sheet.Pages),
			TagsPerPage: res.Sheet.Grid.TagsPerPage(),
			Font:        res.Config.FontName,
		}
		if err := opts.History.Record(ctx, run); err != nil {
			fmt.Fprintf(w, "warning: %v\n", err)
		}
	}
	return res, nil
}
