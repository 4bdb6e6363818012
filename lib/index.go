package lib

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve"
)

/*
	RowIndex is an in-memory full-text index over the rows of parsed part
	tables. Each row is a document whose fields are its column names, plus
	table, class, library and cell. Nothing is written to disk.
*/
type RowIndex struct {
	index bleve.Index
	refs  map[string]*RowRef
	files int
}

type RowRef struct {
	File  *PartTableFile
	Table *PartTable
	Row   *Row
}

type RowHit struct {
	*RowRef
	Score float64
}

func NewRowIndex() (*RowIndex, error) {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, err
	}

	return &RowIndex{
		index: index,
		refs:  make(map[string]*RowRef),
	}, nil
}

func (ri *RowIndex) Add(files ...*PartTableFile) error {
	batch := ri.index.NewBatch()
	for _, file := range files {
		for t, table := range file.PartTables {
			for r, row := range table.Rows {
				id := fmt.Sprintf("%d/%d/%d", ri.files, t, r)
				if err := batch.Index(id, rowDocument(file, table, row)); err != nil {
					return err
				}

				ri.refs[id] = &RowRef{File: file, Table: table, Row: row}
			}
		}
		ri.files++
	}

	return ri.index.Batch(batch)
}

func rowDocument(file *PartTableFile, table *PartTable, row *Row) map[string]interface{} {
	doc := map[string]interface{}{
		"table": table.Name,
		"class": table.ClassType,
	}

	if file.Path != "" {
		doc["library"] = file.Library()
		doc["cell"] = file.Cell()
	}

	for _, prop := range row.Properties() {
		doc[prop.Column] = strings.Trim(prop.Value, "'")
	}

	if row.Annotation != "" {
		doc["annotation"] = row.Annotation
	}

	return doc
}

/*
	Search runs a bleve query string ("10K", "PACKAGE:0402 +table:RES") and
	returns at most size hits, best first
*/
func (ri *RowIndex) Search(query string, size int) ([]*RowHit, error) {
	request := bleve.NewSearchRequestOptions(bleve.NewQueryStringQuery(query), size, 0, false)
	result, err := ri.index.Search(request)
	if err != nil {
		return nil, err
	}

	hits := []*RowHit{}
	for _, hit := range result.Hits {
		if ref, ok := ri.refs[hit.ID]; ok {
			hits = append(hits, &RowHit{RowRef: ref, Score: hit.Score})
		}
	}

	return hits, nil
}

func (ri *RowIndex) Len() int {
	return len(ri.refs)
}

func (ri *RowIndex) Close() error {
	return ri.index.Close()
}
