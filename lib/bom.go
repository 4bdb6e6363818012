package lib

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strings"
)

/*
	BOM is a bill of materials as read from CSV: a title row and line items
*/
type BOM struct {
	Title []string
	Items [][]string
}

func ReadBOM(r io.Reader) (*BOM, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("bom has no title row")
	}

	return &BOM{Title: records[0], Items: records[1:]}, nil
}

func ReadBOMFile(src string) (*BOM, error) {
	fp, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	return ReadBOM(fp)
}

func WriteBOM(w io.Writer, bom *BOM) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(bom.Title); err != nil {
		return err
	}

	if err := writer.WriteAll(bom.Items); err != nil {
		return err
	}

	return writer.Error()
}

func WriteBOMFile(dst string, bom *BOM) error {
	fp, err := os.Create(dst)
	if err != nil {
		return err
	}

	if err := WriteBOM(fp, bom); err != nil {
		fp.Close()
		return err
	}

	return fp.Close()
}

/*
	Enricher cross-references BOM line items with part tables. A line item
	matches a table when its part type equals the table name; the rows holding
	its part number then contribute their IncludeColumns.
*/
type Enricher struct {
	PartNumberColumn string
	PartTypeColumn   string

	// restricts the part number search to one table column when set
	SearchColumn string

	IncludeColumns []string
	AddColumns     []string
}

func NewEnricher(config BOMConfig) *Enricher {
	return &Enricher{
		PartNumberColumn: config.PartNumberColumn,
		PartTypeColumn:   config.PartTypeColumn,
		SearchColumn:     config.SearchColumn,
		IncludeColumns:   config.IncludeColumns,
		AddColumns:       config.AddColumns,
	}
}

func (e *Enricher) Enrich(bom *BOM, files []*PartTableFile) error {
	pnIdx := slices.Index(bom.Title, e.PartNumberColumn)
	if pnIdx < 0 {
		return fmt.Errorf("bom has no part number column %q", e.PartNumberColumn)
	}

	typeIdx := slices.Index(bom.Title, e.PartTypeColumn)
	if typeIdx < 0 {
		return fmt.Errorf("bom has no part type column %q", e.PartTypeColumn)
	}

	bom.Title = append(bom.Title, e.AddColumns...)
	for i, item := range bom.Items {
		if pnIdx >= len(item) || typeIdx >= len(item) {
			continue
		}

		for _, file := range files {
			for _, table := range file.PartTables {
				if table.Name != item[typeIdx] {
					continue
				}

				for row := range e.search(table, item[pnIdx]) {
					for _, column := range e.IncludeColumns {
						item = append(item, row.GetProperty(column))
					}
				}
			}
		}

		bom.Items[i] = item
	}

	return nil
}

func (e *Enricher) search(table *PartTable, pn string) iter.Seq[*Row] {
	if e.SearchColumn == "" {
		return table.Search(pn)
	}

	pn = strings.ToUpper(pn)
	return func(yield func(*Row) bool) {
		for _, row := range table.Rows {
			value := strings.ToUpper(row.GetProperty(e.SearchColumn))
			if strings.Contains(value, pn) && !yield(row) {
				return
			}
		}
	}
}
