package lib

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// a project_specific library is reported under this code
const projectSpecificLibrary = "PROJ_SPCF"

/*
	PartTableFile is one parsed document. Path is only used to derive the
	library and cell the document belongs to:

		<library>/<cell>/part_table/<file>
*/
type PartTableFile struct {
	Path       string
	FileType   string
	PartTables []*PartTable
}

/*
	Parse parses a whole document held in memory
*/
func Parse(text string) (*PartTableFile, error) {
	raw, err := parseGrammar(SanitizeText(text))
	if err != nil {
		return nil, err
	}

	file := &PartTableFile{FileType: raw.FileType}
	for _, block := range raw.Tables {
		var table *PartTable
		if raw.KeyValue {
			table, err = BuildKeyValue(block.Name, block.Class, block.Pairs)
		} else {
			table, err = BuildTabular(block.Name, block.Class, block.Header, block.Rows)
		}

		if err != nil {
			return nil, err
		}

		file.PartTables = append(file.PartTables, table)
	}

	return file, nil
}

/*
	ParseFile reads and parses the document at path. A missing file keeps the
	fs.ErrNotExist chain.
*/
func ParseFile(path string) (*PartTableFile, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	file, err := Parse(string(buf))
	if err != nil {
		var grammar *GrammarError
		if errors.As(err, &grammar) {
			grammar.Path = path
			return nil, grammar
		}

		return nil, fmt.Errorf("%s: %w", path, err)
	}

	file.Path = path
	return file, nil
}

/*
	Format renders the document as lines, in the same layout it is read from
*/
func (f *PartTableFile) Format() []string {
	lines := []string{"FILE_TYPE = " + f.FileType + ";"}
	for _, table := range f.PartTables {
		lines = append(lines, table.Format()...)
	}

	return append(lines, "", "END.")
}

func (f *PartTableFile) String() string {
	return strings.Join(f.Format(), "\n")
}

func (f *PartTableFile) WriteFile(dst string) error {
	return os.WriteFile(dst, []byte(f.String()+"\n"), 0644)
}

/*
	Table returns the first part table with the given name
*/
func (f *PartTableFile) Table(name string) *PartTable {
	for _, table := range f.PartTables {
		if table.Name == name {
			return table
		}
	}

	return nil
}

func (f *PartTableFile) cellDir() string {
	return filepath.Dir(filepath.Dir(f.Path))
}

/*
	Cell is the upper-cased name of the cell directory, with the #2d escape
	turned back into a hyphen
*/
func (f *PartTableFile) Cell() string {
	cell := filepath.Base(f.cellDir())
	return strings.ToUpper(strings.ReplaceAll(cell, "#2d", "-"))
}

/*
	Library is the upper-cased name of the library directory above the cell
*/
func (f *PartTableFile) Library() string {
	library := filepath.Base(filepath.Dir(f.cellDir()))
	if library == "project_specific" {
		return projectSpecificLibrary
	}

	return strings.ToUpper(library)
}
