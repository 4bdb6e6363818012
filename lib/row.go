package lib

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// the annotation is a parenthesized tail on the last key value: 'DEF' (!)
var reAnnotation = regexp.MustCompile(`^(.*?)\s*(\(.*\))$`)

type ColumnRow struct {
	Column  string
	Value   string
	Padding int

	lookup string
}

func newColumnRow(column, value string) *ColumnRow {
	return &ColumnRow{
		Column: column,
		Value:  value,
		lookup: strings.ToUpper(column),
	}
}

func (cr *ColumnRow) String() string {
	return cr.Value
}

func (cr *ColumnRow) Format() string {
	return cr.Value + strings.Repeat(" ", max(cr.Padding, 0))
}

type Row struct {
	KeyProperties     []*ColumnRow
	DerivedProperties []*ColumnRow
	Annotation        string
}

/*
	ParseRow binds one raw data line to the columns of header. The key side is
	split from the derived side on the first =, and each side on pipes.
*/
func ParseRow(raw string, header *Header) (*Row, error) {
	keySide, derivedSide, found := strings.Cut(raw, "=")

	var derived []string
	if found && (header.NumDerivedProperties() > 0 || strings.TrimSpace(derivedSide) != "") {
		derived = strings.Split(derivedSide, "|")
	}

	return NewRow(strings.Split(keySide, "|"), derived, header)
}

/*
	NewRow builds a row from tokens that are already split into columns. The
	token counts must match the header exactly.
*/
func NewRow(keys, derived []string, header *Header) (*Row, error) {
	if len(keys) != header.NumKeyProperties() || len(derived) != header.NumDerivedProperties() {
		return nil, &ArityError{
			HeaderKeys:    header.KeyValues(),
			HeaderDerived: header.DerivedValues(),
			RowKeys:       keys,
			RowDerived:    derived,
		}
	}

	row := &Row{}
	for i, token := range keys {
		row.KeyProperties = append(row.KeyProperties,
			newColumnRow(header.KeyProperties[i].Name, sanitizeValue(token)))
	}

	for i, token := range derived {
		row.DerivedProperties = append(row.DerivedProperties,
			newColumnRow(header.DerivedProperties[i].Name, sanitizeValue(token)))
	}

	if n := len(row.KeyProperties); n > 0 {
		last := row.KeyProperties[n-1]
		if match := reAnnotation.FindStringSubmatch(last.Value); match != nil {
			last.Value = match[1]
			row.Annotation = match[2]
		}
	}

	return row, nil
}

/*
	sanitizeValue drops everything from the first colon that does not belong
	to a URL scheme, trims spaces and double quotes, and removes tabs that are
	not next to a single quote. Only lowercase http and https count as a
	scheme; both are kept on purpose, any other colon cuts the value.
*/
func sanitizeValue(value string) string {
	for i := 0; i < len(value); i++ {
		if value[i] != ':' {
			continue
		}

		if prefix := value[:i]; !strings.HasSuffix(prefix, "http") && !strings.HasSuffix(prefix, "https") {
			value = prefix
			break
		}
	}

	value = strings.Trim(value, " \"")

	var b strings.Builder
	for i := 0; i < len(value); i++ {
		if value[i] == '\t' && (i == 0 || value[i-1] != '\'') && (i == len(value)-1 || value[i+1] != '\'') {
			continue
		}
		b.WriteByte(value[i])
	}

	return b.String()
}

func (r *Row) Properties() []*ColumnRow {
	properties := make([]*ColumnRow, 0, len(r.KeyProperties)+len(r.DerivedProperties))
	properties = append(properties, r.KeyProperties...)
	return append(properties, r.DerivedProperties...)
}

func (r *Row) NumKeyProperties() int { return len(r.KeyProperties) }
func (r *Row) NumProperties() int    { return len(r.KeyProperties) + len(r.DerivedProperties) }

func (r *Row) Values() []string        { return rowValues(r.Properties()) }
func (r *Row) KeyValues() []string     { return rowValues(r.KeyProperties) }
func (r *Row) DerivedValues() []string { return rowValues(r.DerivedProperties) }

/*
	property finds the first column whose name contains name, ignoring case.
	Substring matching lets PART_NUMBER find a column declared with an (OPT)
	qualifier.
*/
func (r *Row) property(name string) *ColumnRow {
	name = strings.ToUpper(name)
	for _, prop := range r.Properties() {
		if strings.Contains(prop.lookup, name) {
			return prop
		}
	}

	return nil
}

func (r *Row) GetProperty(name string) string {
	if prop := r.property(name); prop != nil {
		return prop.Value
	}

	return ""
}

/*
	EditProperty rewrites the value of the column GetProperty would read and
	reports whether such a column exists
*/
func (r *Row) EditProperty(name, value string) bool {
	prop := r.property(name)
	if prop == nil {
		return false
	}

	prop.Value = value
	return true
}

func (r *Row) ContainsValue(needle string) bool {
	needle = strings.ToUpper(needle)
	for _, prop := range r.Properties() {
		if strings.Contains(strings.ToUpper(prop.Value), needle) {
			return true
		}
	}

	return false
}

func (r *Row) PartNumber() string {
	return strings.ReplaceAll(r.GetProperty("PART_NUMBER"), "'", "")
}

func (r *Row) String() string {
	return strings.Join(r.KeyValues(), " | ") + " = " + strings.Join(r.DerivedValues(), " | ")
}

func (r *Row) assignPadding(widths []int) {
	for i, prop := range r.Properties() {
		prop.Padding = widths[i] - utf8.RuneCountInString(prop.Value)
	}
}

/*
	Format renders the row with its current padding. A row without an
	annotation is marked with (!); otherwise the annotation is right aligned
	inside the last key column.
*/
func (r *Row) Format() string {
	keys := make([]string, len(r.KeyProperties))
	for i, prop := range r.KeyProperties {
		keys[i] = prop.Format()
	}

	derived := make([]string, len(r.DerivedProperties))
	for i, prop := range r.DerivedProperties {
		derived[i] = prop.Format()
	}

	if r.Annotation == "" || len(keys) == 0 {
		return "  " + strings.Join(keys, " | ") + " (!)= " + strings.Join(derived, " | ")
	}

	last := r.KeyProperties[len(keys)-1]
	keys[len(keys)-1] = last.Value +
		strings.Repeat(" ", max(last.Padding-utf8.RuneCountInString(r.Annotation), 1)) + r.Annotation

	return "  " + strings.Join(keys, " | ") + "= " + strings.Join(derived, " | ")
}

func rowValues(columns []*ColumnRow) []string {
	values := make([]string, len(columns))
	for i, column := range columns {
		values[i] = column.Value
	}

	return values
}
