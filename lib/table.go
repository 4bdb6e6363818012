package lib

import (
	"errors"
	"iter"
	"strings"
	"unicode/utf8"
)

// placeholders that never count as a repeated part number; "" is a table without one
var partNumberPlaceholders = map[string]bool{"": true, "NONE": true, "NaN": true}

var decorator = "{" + strings.Repeat("=", 88) + "}"

/*
	PartTable is one PART block: the rows of a single part class, all bound to
	the same header.
*/
type PartTable struct {
	Name      string
	ClassType string
	Header    *Header
	Rows      []*Row
}

/*
	NewPartTable parses raw rows against header. The first row whose column
	counts disagree with the header fails the whole table.
*/
func NewPartTable(name, classType string, header *Header, rows []string) (*PartTable, error) {
	table := &PartTable{
		Name:      name,
		ClassType: classType,
		Header:    header,
	}

	for _, raw := range rows {
		row, err := ParseRow(raw, header)
		if err != nil {
			return nil, table.wrap(err)
		}

		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

/*
	BuildTabular builds a table from a header line and its data lines
*/
func BuildTabular(name, classType, header string, rows []string) (*PartTable, error) {
	return NewPartTable(name, classType, ParseHeader(header), rows)
}

/*
	BuildKeyValue builds a single-row table from KEY = value pairs; every key
	becomes a key column. The values are joined with pipes and parsed as a
	row, so a value holding | or = fails with an *ArityError instead of
	producing a table that cannot be read back once formatted.
*/
func BuildKeyValue(name, classType string, pairs [][2]string) (*PartTable, error) {
	keys := make([]string, len(pairs))
	values := make([]string, len(pairs))
	for i, pair := range pairs {
		keys[i], values[i] = pair[0], pair[1]
	}

	table := &PartTable{
		Name:      name,
		ClassType: classType,
		Header:    NewHeader(keys, nil),
	}

	row, err := ParseRow(strings.Join(values, " | "), table.Header)
	if err != nil {
		return nil, table.wrap(err)
	}

	table.Rows = []*Row{row}
	return table, nil
}

func (t *PartTable) wrap(err error) error {
	var arity *ArityError
	if errors.As(err, &arity) {
		arity.Table = t.Name
		arity.Class = t.ClassType
	}

	return err
}

/*
	Widths returns the rendered width of every column, in characters: the
	widest of the header and all row values. The last key column also makes room for a row's
	annotation and the space before it.
*/
func (t *PartTable) Widths() []int {
	widths := make([]int, t.Header.NumProperties())
	for i, value := range t.Header.Values() {
		widths[i] = utf8.RuneCountInString(value)
	}

	last := t.Header.NumKeyProperties() - 1
	for _, row := range t.Rows {
		for i, value := range row.Values() {
			width := utf8.RuneCountInString(value)
			if i == last && row.Annotation != "" {
				width += utf8.RuneCountInString(row.Annotation) + 1
			}

			widths[i] = max(widths[i], width)
		}
	}

	return widths
}

/*
	Format renders the table as lines. Padding is recomputed on every call so
	values edited since the last call line up.
*/
func (t *PartTable) Format() []string {
	widths := t.Widths()
	t.Header.assignPadding(widths)
	for _, row := range t.Rows {
		row.assignPadding(widths)
	}

	lines := []string{
		"",
		"PART '" + t.Name + "'",
		"CLASS=" + t.ClassType,
		"",
		decorator,
		t.Header.Format(),
		decorator,
	}

	for _, row := range t.Rows {
		lines = append(lines, row.Format())
	}

	return append(lines, "", "END_PART")
}

/*
	Search yields the rows holding value anywhere, ignoring case
*/
func (t *PartTable) Search(value string) iter.Seq[*Row] {
	return func(yield func(*Row) bool) {
		for _, row := range t.Rows {
			if row.ContainsValue(value) && !yield(row) {
				return
			}
		}
	}
}

/*
	FindDuplicates returns every row whose values repeat an earlier row. The
	first occurrence is not reported.
*/
func (t *PartTable) FindDuplicates() []*Row {
	return t.findRepeated(func(row *Row) string {
		return row.String()
	})
}

/*
	FindSimilar returns every row equal to an earlier row in all values but
	the part number. Rows without a part number compare in full.
*/
func (t *PartTable) FindSimilar() []*Row {
	return t.findRepeated(func(row *Row) string {
		if row.PartNumber() == "" {
			return row.String()
		}

		values := []string{}
		for _, prop := range row.Properties() {
			if prop.Column != "PART_NUMBER" {
				values = append(values, prop.Value)
			}
		}

		return strings.Join(values, " | ")
	})
}

func (t *PartTable) findRepeated(key func(*Row) string) []*Row {
	duplicates := []*Row{}
	existing := make(map[string]bool)
	for _, row := range t.Rows {
		k := key(row)
		if existing[k] {
			duplicates = append(duplicates, row)
			continue
		}

		existing[k] = true
	}

	return duplicates
}

/*
	FindRepeatedPartNumbers lists, once each and in order of first repetition,
	the part numbers used by more than one row. Rows without a part number
	are ignored.
*/
func (t *PartTable) FindRepeatedPartNumbers() []string {
	repeated := []string{}
	seen := make(map[string]int)
	for _, pn := range t.PartNumbers() {
		if partNumberPlaceholders[pn] {
			continue
		}

		seen[pn]++
		if seen[pn] == 2 {
			repeated = append(repeated, pn)
		}
	}

	return repeated
}

func (t *PartTable) PartNumbers() []string {
	pns := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		pns[i] = row.PartNumber()
	}

	return pns
}

func (t *PartTable) JedecTypes() []string {
	types := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		types[i] = row.GetProperty("JEDEC_TYPE")
	}

	return types
}

/*
	EnsureColumns appends every named derived column the header lacks, with
	an empty quoted value on each row
*/
func (t *PartTable) EnsureColumns(names ...string) {
	for _, name := range names {
		if t.Header.HasColumn(name) {
			continue
		}

		t.Header.DerivedProperties = append(t.Header.DerivedProperties, &ColumnHeader{Name: name})
		for _, row := range t.Rows {
			row.DerivedProperties = append(row.DerivedProperties, newColumnRow(name, "''"))
		}
	}
}
