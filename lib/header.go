package lib

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var reOptional = regexp.MustCompile(`^(.*?)(\s*\(OPT.*)$`)

/*
	ColumnHeader is one declared column. Optional holds an (OPT...) suffix,
	including the whitespace before it, exactly as it appeared.
*/
type ColumnHeader struct {
	Name     string
	Optional string
	Padding  int
}

func (ch *ColumnHeader) String() string {
	return ch.Name + ch.Optional
}

func (ch *ColumnHeader) Format() string {
	return ch.String() + strings.Repeat(" ", max(ch.Padding, 0))
}

type Header struct {
	KeyProperties     []*ColumnHeader
	DerivedProperties []*ColumnHeader
}

/*
	ParseHeader parses the text between the leading colon and the terminating
	semicolon of a header line.
*/
func ParseHeader(raw string) *Header {
	keys, derived := splitHeaderSides(raw)
	return NewHeader(splitColumns(keys), splitColumns(derived))
}

/*
	splitHeaderSides splits on the first = that is not part of an (OPT=...)
	qualifier
*/
func splitHeaderSides(raw string) (string, string) {
	for i := 0; i < len(raw); i++ {
		if raw[i] == '=' && !strings.HasSuffix(raw[:i], "OPT") {
			return raw[:i], raw[i+1:]
		}
	}

	return raw, ""
}

func NewHeader(keys, derived []string) *Header {
	header := &Header{}
	for _, column := range keys {
		header.KeyProperties = append(header.KeyProperties, newColumnHeader(column))
	}

	for _, column := range derived {
		header.DerivedProperties = append(header.DerivedProperties, newColumnHeader(column))
	}

	return header
}

func newColumnHeader(column string) *ColumnHeader {
	column = sanitizeColumn(column)
	if match := reOptional.FindStringSubmatch(column); match != nil {
		return &ColumnHeader{Name: match[1], Optional: match[2]}
	}

	return &ColumnHeader{Name: column}
}

func sanitizeColumn(column string) string {
	column, _, _ = strings.Cut(column, ":")
	return strings.Trim(column, " '\"")
}

/*
	splitColumns splits one side of a header or row on pipes. A side holding
	nothing but whitespace has no columns at all.
*/
func splitColumns(side string) []string {
	if strings.TrimSpace(side) == "" {
		return nil
	}

	return strings.Split(side, "|")
}

func (h *Header) Properties() []*ColumnHeader {
	properties := make([]*ColumnHeader, 0, h.NumProperties())
	properties = append(properties, h.KeyProperties...)
	return append(properties, h.DerivedProperties...)
}

func (h *Header) NumKeyProperties() int     { return len(h.KeyProperties) }
func (h *Header) NumDerivedProperties() int { return len(h.DerivedProperties) }
func (h *Header) NumProperties() int        { return h.NumKeyProperties() + h.NumDerivedProperties() }

func (h *Header) Values() []string        { return columnValues(h.Properties()) }
func (h *Header) KeyValues() []string     { return columnValues(h.KeyProperties) }
func (h *Header) DerivedValues() []string { return columnValues(h.DerivedProperties) }

/*
	HasColumn reports whether a column with exactly this name exists
*/
func (h *Header) HasColumn(name string) bool {
	for _, prop := range h.Properties() {
		if prop.Name == name {
			return true
		}
	}

	return false
}

func (h *Header) String() string {
	return strings.Join(h.Values(), " | ")
}

func (h *Header) assignPadding(widths []int) {
	for i, prop := range h.Properties() {
		prop.Padding = widths[i] - utf8.RuneCountInString(prop.String())
	}
}

func (h *Header) Format() string {
	return ": " + formatColumns(h.KeyProperties) + "= " + formatColumns(h.DerivedProperties) + ";"
}

func formatColumns(columns []*ColumnHeader) string {
	formatted := make([]string, len(columns))
	for i, column := range columns {
		formatted[i] = column.Format()
	}

	return strings.Join(formatted, " | ")
}

func columnValues(columns []*ColumnHeader) []string {
	values := make([]string, len(columns))
	for i, column := range columns {
		values[i] = column.String()
	}

	return values
}
