package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/db2tools/dclgen2schema/dclgen"
)

// StartMCPServer starts the MCP server for DCLGEN parsing
func StartMCPServer() error {
	s := server.NewMCPServer(
		"dclgen2schema",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	parseTool := mcp.NewTool("parse_dclgen",
		mcp.WithDescription("Parse a single DB2 DCLGEN file and return its table description"),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Path to the DCLGEN file to parse"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'table' for a terminal table (default) or 'json'"),
			mcp.Enum("table", "json"),
		),
	)

	s.AddTool(parseTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleParseDCLGEN(ctx, request)
	})

	scanTool := mcp.NewTool("scan_dclgen_directory",
		mcp.WithDescription("Scan a directory tree for DCLGEN files and return a per-table summary"),
		mcp.WithString("directory",
			mcp.Required(),
			mcp.Description("Path to the directory to scan"),
		),
	)

	s.AddTool(scanTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleScanDirectory(ctx, request)
	})

	slog.Info("starting dclgen2schema mcp server")
	return server.ServeStdio(s)
}

// handleParseDCLGEN processes the parse_dclgen tool request
func handleParseDCLGEN(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filePath, err := request.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError("file_path parameter is required"), nil
	}

	format := request.GetString("format", "table")

	output, err := parseDCLGENCore(filePath, format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("dclgen parsed successfully:\n\n%s", output)), nil
}

// parseDCLGENCore contains the core logic for single-file parsing, separated for testing
func parseDCLGENCore(filePath, format string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %v", err)
	}

	table, err := dclgen.NewParser().Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse dclgen file: %v", err)
	}

	if format == "json" {
		jsonOutput, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal table to JSON: %w", err)
		}
		return string(jsonOutput), nil
	}

	return RenderTableReport(table), nil
}

// handleScanDirectory processes the scan_dclgen_directory tool request
func handleScanDirectory(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	directory, err := request.RequireString("directory")
	if err != nil {
		return mcp.NewToolResultError("directory parameter is required"), nil
	}

	output, err := scanDirectoryCore(directory)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("directory scan completed:\n\n%s", output)), nil
}

// scanDirectoryCore contains the core logic for directory scanning, separated for testing
func scanDirectoryCore(directory string) (string, error) {
	if _, err := os.Stat(directory); os.IsNotExist(err) {
		return "", fmt.Errorf("scan directory does not exist: %s", directory)
	}

	entries, err := ScanDirectory(directory, dclgen.NewParser())
	if err != nil {
		return "", fmt.Errorf("failed to scan directory: %v", err)
	}

	result := map[string]interface{}{
		"table_count": len(entries),
		"tables":      make([]map[string]interface{}, len(entries)),
	}

	for i, entry := range entries {
		tableInfo := map[string]interface{}{
			"table_name":      entry.Table.TableName,
			"attribute_count": len(entry.Table.Attributes),
			"file_path":       entry.Path,
		}
		if entry.Table.SchemaName != "" {
			tableInfo["schema_name"] = entry.Table.SchemaName
		}
		result["tables"].([]map[string]interface{})[i] = tableInfo
	}

	jsonOutput, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result to JSON: %w", err)
	}

	return string(jsonOutput), nil
}
