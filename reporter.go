package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// WriteCSVReport writes one row per scanned table: name, attribute
// count, source path, schema and the normalized file name (base name
// without its last extension, upper-cased). Entries are expected in
// table-name order, as produced by ScanDirectory.
func WriteCSVReport(entries []TableEntry, outputFile string) error {
	if !strings.HasSuffix(strings.ToLower(outputFile), ".csv") {
		outputFile += ".csv"
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"Table Name", "Number of Attributes", "File Path", "Schema", "Normalized File Name"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for _, entry := range entries {
		row := []string{
			entry.Table.TableName,
			strconv.Itoa(len(entry.Table.Attributes)),
			entry.Path,
			entry.Table.SchemaName,
			normalizeFileName(entry.Path),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}

	slog.Info("csv report generated", "file", outputFile, "tables", len(entries))
	return nil
}

func normalizeFileName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.ToUpper(name)
}
