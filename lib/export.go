package lib

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	defaultSheet   = "Sheet1"
	maxSheetLength = 31
)

var sheetNameReplacer = strings.NewReplacer(
	":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_",
)

/*
	ExportWorkbook writes every part table to its own sheet: the header
	properties and an ANNOTATION column, then one line per row.
*/
func ExportWorkbook(dst string, files []*PartTableFile) error {
	f := excelize.NewFile()
	defer f.Close()

	used := map[string]bool{strings.ToUpper(defaultSheet): true}
	sheets := 0
	for _, file := range files {
		for _, table := range file.PartTables {
			sheet := sheetName(file, table, used)
			idx, err := f.NewSheet(sheet)
			if err != nil {
				return err
			}

			if sheets == 0 {
				f.SetActiveSheet(idx)
			}
			sheets++

			if err := writeTableSheet(f, sheet, table); err != nil {
				return err
			}
		}
	}

	if sheets > 0 {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return err
		}
	}

	return f.SaveAs(dst)
}

func writeTableSheet(f *excelize.File, sheet string, table *PartTable) error {
	title := []interface{}{}
	for _, value := range table.Header.Values() {
		title = append(title, value)
	}
	title = append(title, "ANNOTATION")

	if err := f.SetSheetRow(sheet, "A1", &title); err != nil {
		return err
	}

	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		values := []interface{}{}
		for _, value := range row.Values() {
			values = append(values, value)
		}
		values = append(values, row.Annotation)

		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	return nil
}

/*
	sheetName builds a unique sheet name from the cell and table names,
	within the characters and length a workbook accepts
*/
func sheetName(file *PartTableFile, table *PartTable, used map[string]bool) string {
	base := table.Name
	if file.Path != "" && file.Cell() != "" && file.Cell() != table.Name {
		base = file.Cell() + " " + table.Name
	}
	base = sheetNameReplacer.Replace(base)

	name := truncate(base, maxSheetLength)
	for n := 2; used[strings.ToUpper(name)]; n++ {
		suffix := fmt.Sprintf("~%d", n)
		name = truncate(base, maxSheetLength-len(suffix)) + suffix
	}
	used[strings.ToUpper(name)] = true

	return name
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}
