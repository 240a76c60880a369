package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexeyco/simpletable"

	"github.com/db2tools/dclgen2schema/dclgen"
)

// RenderTableReport formats a parsed table for terminal output: a
// table-information block followed by the attribute details.
func RenderTableReport(table *dclgen.Table) string {
	var sb strings.Builder

	sb.WriteString("\nTable Information:\n")
	sb.WriteString(renderTableInfo(table))
	sb.WriteString("\n\nAttributes:\n")
	sb.WriteString(renderAttributes(table.Attributes))
	sb.WriteString("\n")

	return sb.String()
}

func renderTableInfo(table *dclgen.Table) string {
	info := simpletable.New()
	info.Header = &simpletable.Header{
		Cells: []*simpletable.Cell{
			{Align: simpletable.AlignLeft, Text: "Property"},
			{Align: simpletable.AlignLeft, Text: "Value"},
		},
	}

	schema := table.SchemaName
	if schema == "" {
		schema = "N/A"
	}

	rows := [][2]string{
		{"Table Name", table.TableName},
		{"Schema Name", schema},
		{"Total Attributes", strconv.Itoa(len(table.Attributes))},
	}
	for _, row := range rows {
		info.Body.Cells = append(info.Body.Cells, []*simpletable.Cell{
			{Align: simpletable.AlignLeft, Text: row[0]},
			{Align: simpletable.AlignLeft, Text: row[1]},
		})
	}

	info.SetStyle(simpletable.StyleDefault)
	return info.String()
}

func renderAttributes(attrs []dclgen.Attribute) string {
	detail := simpletable.New()
	detail.Header = &simpletable.Header{
		Cells: []*simpletable.Cell{
			{Align: simpletable.AlignLeft, Text: "Name"},
			{Align: simpletable.AlignLeft, Text: "Type"},
			{Align: simpletable.AlignLeft, Text: "Length"},
			{Align: simpletable.AlignLeft, Text: "Precision"},
			{Align: simpletable.AlignLeft, Text: "Scale"},
			{Align: simpletable.AlignLeft, Text: "Nullable"},
		},
	}

	for _, attr := range attrs {
		nullable := "No"
		if attr.Nullable {
			nullable = "Yes"
		}
		detail.Body.Cells = append(detail.Body.Cells, []*simpletable.Cell{
			{Align: simpletable.AlignLeft, Text: attr.Name},
			{Align: simpletable.AlignLeft, Text: attr.Type},
			{Align: simpletable.AlignLeft, Text: displayNumeric(attr.Length)},
			{Align: simpletable.AlignLeft, Text: displayNumeric(attr.Precision)},
			{Align: simpletable.AlignLeft, Text: displayNumeric(attr.Scale)},
			{Align: simpletable.AlignLeft, Text: nullable},
		})
	}

	detail.SetStyle(simpletable.StyleDefault)
	return detail.String()
}

func displayNumeric(v *int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *v)
}
