package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/db2tools/dclgen2schema/dclgen"
)

// TableEntry is one parsed DCLGEN file discovered during a scan.
type TableEntry struct {
	Table *dclgen.Table
	Path  string
}

// IsDCLGENContent reports whether text looks like DCLGEN output. Both
// the pragma header and the embedded declare statement must be
// present; anything else in the scanned tree is ignored.
func IsDCLGENContent(content string) bool {
	return strings.Contains(content, "DCLGEN TABLE") &&
		strings.Contains(content, "EXEC SQL DECLARE")
}

// ScanDirectory walks dir recursively, parses every DCLGEN file found
// and returns the entries sorted by table name. A table name declared
// by more than one file aborts the scan: duplicate definitions mean
// the scan is misconfigured and the caller must fix it.
func ScanDirectory(dir string, parser *dclgen.Parser) ([]TableEntry, error) {
	slog.Debug("scanning directory", "directory", dir)

	seen := make(map[string]string)
	var entries []TableEntry

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			slog.Debug("skipping unreadable file", "path", path, "error", err)
			return nil
		}
		if !IsDCLGENContent(string(content)) {
			return nil
		}
		slog.Debug("found dclgen file", "path", path)

		table, err := parser.Parse(string(content))
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		if previous, exists := seen[table.TableName]; exists {
			return fmt.Errorf("table %q is defined more than once (%s and %s)",
				table.TableName, previous, path)
		}
		seen[table.TableName] = path

		entries = append(entries, TableEntry{Table: table, Path: path})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Table.TableName < entries[j].Table.TableName
	})

	slog.Info("scan completed", "directory", dir, "tables", len(entries))
	return entries, nil
}
