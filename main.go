package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/db2tools/dclgen2schema/dclgen"
)

var (
	outputFile string
	singleFile string
	excelMode  bool
	verbose    bool
	mcpMode    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "dclgen2schema [dclgen-directory]",
	Short: "Extract table schemas from DB2 DCLGEN files",
	Long: `dclgen2schema parses DB2 DCLGEN output (SQL DECLARE TABLE blocks embedded
in COBOL fixed-format text) into structured table descriptions.

Modes:
  scan mode (default): scans a directory tree and generates a CSV report
  file mode (-f): parses a single DCLGEN file and prints its attributes
  mcp mode (--mcp): run as Model Context Protocol server`,
	Args: func(cmd *cobra.Command, args []string) error {
		if mcpMode || singleFile != "" || configPath != "" {
			return cobra.MaximumNArgs(1)(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	Run: runDclgen2Schema,
}

func main() {
	if err := run(); err != nil {
		slog.Error("command execution failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))

	if rootCmd.Flags().Lookup("output") == nil {
		rootCmd.Flags().StringVarP(&outputFile, "output", "o", "dclgen_report.csv", "Output file for the CSV report")
	}
	if rootCmd.Flags().Lookup("file") == nil {
		rootCmd.Flags().StringVarP(&singleFile, "file", "f", "", "Parse a single DCLGEN file instead of scanning a directory")
	}
	if rootCmd.Flags().Lookup("excel") == nil {
		rootCmd.Flags().BoolVar(&excelMode, "excel", false, "Also generate an Excel report (file mode)")
	}
	if rootCmd.Flags().Lookup("verbose") == nil {
		rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show the file content before parsing (file mode)")
	}
	if rootCmd.Flags().Lookup("mcp") == nil {
		rootCmd.Flags().BoolVar(&mcpMode, "mcp", false, "Run as Model Context Protocol server")
	}
	if rootCmd.Flags().Lookup("config") == nil {
		rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Scan settings YAML file")
	}

	return rootCmd.Execute()
}

func runDclgen2Schema(cmd *cobra.Command, args []string) {
	if mcpMode {
		slog.Info("starting mcp server")
		if err := StartMCPServer(); err != nil {
			slog.Error("failed to start mcp server", "error", err)
			os.Exit(1)
		}
		return
	}

	if singleFile != "" {
		if err := processFile(singleFile, NewTerminalRenderer(), NewExcelReporter(), excelMode, verbose); err != nil {
			slog.Error("failed to process file", "error", err)
			os.Exit(1)
		}
		return
	}

	dir := ""
	if len(args) == 1 {
		dir = args[0]
	}
	output := outputFile

	if configPath != "" {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		if dir == "" {
			dir = cfg.Scan.Directory
		}
		if !cmd.Flags().Changed("output") && cfg.Report.Output != "" {
			output = cfg.Report.Output
		}
	}

	if dir == "" {
		slog.Error("no scan directory given (argument or config scan.directory)")
		os.Exit(1)
	}

	if err := processScan(dir, output, NewFileSystemScanner(), NewCSVReporter()); err != nil {
		slog.Error("failed to process scan", "error", err)
		os.Exit(1)
	}
}

func processScan(dir, output string, scanner Scanner, reporter Reporter) error {
	slog.Info("processing dclgen directory", "directory", dir)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("scan directory does not exist: %s", dir)
	}

	entries, err := scanner.Scan(dir)
	if err != nil {
		return fmt.Errorf("failed to scan directory: %w", err)
	}

	if len(entries) == 0 {
		slog.Warn("no dclgen files found", "directory", dir)
	}

	if err := reporter.Write(entries, output); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	fmt.Printf("CSV report generated: %s\n", output)
	return nil
}

func processFile(path string, renderer Renderer, workbook WorkbookWriter, excel, verbose bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if verbose {
		fmt.Println("\nFile Content:")
		fmt.Println(strings.Repeat("=", 80))
		fmt.Println(string(content))
		fmt.Println(strings.Repeat("=", 80))
	}

	table, err := dclgen.NewParser().Parse(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	fmt.Println("\nDCLGEN File Analysis Report")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Print(renderer.Render(table))

	if excel {
		base := filepath.Base(path)
		xlsxFile := strings.TrimSuffix(base, filepath.Ext(base)) + ".xlsx"
		if err := workbook.WriteWorkbook(table, xlsxFile); err != nil {
			return fmt.Errorf("failed to generate excel report: %w", err)
		}
		fmt.Printf("Excel report generated: %s\n", xlsxFile)
	}

	return nil
}
