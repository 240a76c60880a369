package main

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/db2tools/dclgen2schema/dclgen"
)

const excelSheetName = "Table Information"

// WriteExcelReport writes one attribute per row into an xlsx
// workbook. Absent numeric fields are rendered as N/A to keep the
// sheet readable for non-technical consumers.
func WriteExcelReport(table *dclgen.Table, outputFile string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", excelSheetName); err != nil {
		return fmt.Errorf("failed to set sheet name: %w", err)
	}

	header := []any{"Name", "Type", "Length", "Precision", "Scale", "Nullable"}
	if err := f.SetSheetRow(excelSheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, attr := range table.Attributes {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}

		nullable := "No"
		if attr.Nullable {
			nullable = "Yes"
		}

		row := []any{
			attr.Name,
			attr.Type,
			excelNumeric(attr.Length),
			excelNumeric(attr.Precision),
			excelNumeric(attr.Scale),
			nullable,
		}
		if err := f.SetSheetRow(excelSheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write attribute row: %w", err)
		}
	}

	if err := f.SaveAs(outputFile); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	slog.Info("excel report generated", "file", outputFile, "attributes", len(table.Attributes))
	return nil
}

func excelNumeric(v *int) any {
	if v == nil {
		return "N/A"
	}
	return *v
}
