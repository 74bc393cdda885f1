//go:build mage

package main

import "github.com/magefile/mage/sh"

// Init writes the default config.yaml and names.txt into the working directory.
func Init() error {
	return sh.RunV("go", "run", cmdPkg, "init")
}

// Generate builds the badge PDF from config.yaml.
func Generate() error {
	return sh.RunV("go", "run", cmdPkg, "generate")
}

// Preview prints the badge layout without writing a PDF.
func Preview() error {
	return sh.RunV("go", "run", cmdPkg, "preview")
}

// History lists previously generated sheets.
func History() error {
	return sh.RunV("go", "run", cmdPkg, "history")
}
