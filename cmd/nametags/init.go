// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/nametags/internal/config"
	"github.com/pdiddy/nametags/internal/names"
	"github.com/pdiddy/nametags/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration and names files",
	Long: `Init writes config.yaml (or the file named by --config) with the default
layout and the names file it points to with five example names. Existing
files are left alone unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite existing files")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	cfgPath := configPath(cmd)
	cfg := types.DefaultConfig()

	if force || !exists(cfgPath) {
		if err := config.Write(cfgPath, cfg); err != nil {
			return fmt.Errorf("writing configuration: %w", err)
		}
		fmt.Printf("created: %s\n", cfgPath)
	} else {
		fmt.Printf("skipped: %s (already exists)\n", cfgPath)
		loaded, _, err := config.Load(cfgPath, os.Stdout)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if force || !exists(cfg.NamesFile) {
		if err := names.Write(cfg.NamesFile, names.Defaults); err != nil {
			return fmt.Errorf("writing names: %w", err)
		}
		fmt.Printf("created: %s (%d names)\n", cfg.NamesFile, len(names.Defaults))
	} else {
		fmt.Printf("skipped: %s (already exists)\n", cfg.NamesFile)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
