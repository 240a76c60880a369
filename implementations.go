package main

import (
	"github.com/db2tools/dclgen2schema/dclgen"
)

type FileSystemScanner struct {
	parser *dclgen.Parser
}

func NewFileSystemScanner() Scanner {
	return &FileSystemScanner{parser: dclgen.NewParser()}
}

func (s *FileSystemScanner) Scan(dir string) ([]TableEntry, error) {
	return ScanDirectory(dir, s.parser)
}

type CSVReporter struct{}

func NewCSVReporter() Reporter {
	return &CSVReporter{}
}

func (r *CSVReporter) Write(entries []TableEntry, outputFile string) error {
	return WriteCSVReport(entries, outputFile)
}

type ExcelReporter struct{}

func NewExcelReporter() WorkbookWriter {
	return &ExcelReporter{}
}

func (r *ExcelReporter) WriteWorkbook(table *dclgen.Table, outputFile string) error {
	return WriteExcelReport(table, outputFile)
}

type TerminalRenderer struct{}

func NewTerminalRenderer() Renderer {
	return &TerminalRenderer{}
}

func (r *TerminalRenderer) Render(table *dclgen.Table) string {
	return RenderTableReport(table)
}
