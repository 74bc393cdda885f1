// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package names reads the badge name list: one name per line, in file order.
package names

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Defaults is the sample list written when the names file is missing.
var Defaults = []string{
	"Alice Dupont",
	"Théo Leblanc",
	"Claire Leblanc",
	"David Petit",
	"Emma Moreau",
}

const bom = "\ufeff"

// Load returns the names in the file at path. A missing file is created
// with Defaults, which are then returned; created reports that case.
func Load(path string, w io.Writer) (list []string, created bool, err error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "names file %s not found, creating default\n", path)
		if err := Write(path, Defaults); err != nil {
			return nil, false, fmt.Errorf("creating default names file: %w", err)
		}
		fmt.Fprintf(w, "created: %s (%d names)\n", path, len(Defaults))
		return append([]string(nil), Defaults...), true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("loading names: %w", err)
	}
	defer f.Close()

	list, err = Parse(f)
	if err != nil {
		return nil, false, fmt.Errorf("loading names from %s: %w", path, err)
	}
	return list, false, nil
}

// maxLineSize bounds a single line of the name file.
const maxLineSize = 16 << 20

// Parse reads one name per line. Surrounding whitespace is trimmed, blank
// lines are skipped and names are normalised to NFC. Duplicates are kept.
// Lines may be up to 16 MiB long.
func Parse(r io.Reader) ([]string, error) {
	var list []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			line = strings.TrimPrefix(line, bom)
			first = false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		list = append(list, norm.NFC.String(line))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// Write saves list to path, one name per line.
func Write(path string, list []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, []byte(strings.Join(list, "\n")+"\n"), 0o644)
}
