package main

import (
	"github.com/db2tools/dclgen2schema/dclgen"
)

// MockScanner is a mock implementation of Scanner for testing
type MockScanner struct {
	ScanFunc func(dir string) ([]TableEntry, error)

	// Track calls for verification
	ScanCalled bool
}

func (m *MockScanner) Scan(dir string) ([]TableEntry, error) {
	m.ScanCalled = true
	if m.ScanFunc != nil {
		return m.ScanFunc(dir)
	}
	return []TableEntry{}, nil
}

// MockReporter is a mock implementation of Reporter for testing
type MockReporter struct {
	WriteFunc func(entries []TableEntry, outputFile string) error

	WriteCalled bool
	LastEntries []TableEntry
	LastOutput  string
}

func (m *MockReporter) Write(entries []TableEntry, outputFile string) error {
	m.WriteCalled = true
	m.LastEntries = entries
	m.LastOutput = outputFile
	if m.WriteFunc != nil {
		return m.WriteFunc(entries, outputFile)
	}
	return nil
}

// MockWorkbookWriter is a mock implementation of WorkbookWriter for testing
type MockWorkbookWriter struct {
	WriteWorkbookFunc func(table *dclgen.Table, outputFile string) error

	WriteWorkbookCalled bool
	LastOutput          string
}

func (m *MockWorkbookWriter) WriteWorkbook(table *dclgen.Table, outputFile string) error {
	m.WriteWorkbookCalled = true
	m.LastOutput = outputFile
	if m.WriteWorkbookFunc != nil {
		return m.WriteWorkbookFunc(table, outputFile)
	}
	return nil
}

// MockRenderer is a mock implementation of Renderer for testing
type MockRenderer struct {
	RenderFunc func(table *dclgen.Table) string
}

func (m *MockRenderer) Render(table *dclgen.Table) string {
	if m.RenderFunc != nil {
		return m.RenderFunc(table)
	}
	return ""
}
