package main

import "github.com/db2tools/dclgen2schema/dclgen"

// Scanner discovers and parses DCLGEN files
type Scanner interface {
	// Scan walks the directory tree and parses every DCLGEN file found
	Scan(dir string) ([]TableEntry, error)
}

// Reporter writes scan results to a report file
type Reporter interface {
	// Write renders the entries into outputFile
	Write(entries []TableEntry, outputFile string) error
}

// WorkbookWriter writes a single table description as a spreadsheet
type WorkbookWriter interface {
	// WriteWorkbook renders the table into an xlsx file
	WriteWorkbook(table *dclgen.Table, outputFile string) error
}

// Renderer formats a single table description for terminal output
type Renderer interface {
	// Render returns the human-readable report for one table
	Render(table *dclgen.Table) string
}
