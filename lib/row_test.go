package lib

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRowAnnotation(t *testing.T) {
	header := ParseHeader("PART_NUMBER | JEDEC_TYPE = DESCRIPTION")

	tests := []struct {
		name       string
		raw        string
		value      string
		annotation string
	}{
		{"tagged", "'1' | DEF ('CON6P_1R2M-HEADER',5284426,Y) = 'x'", "DEF", "('CON6P_1R2M-HEADER',5284426,Y)"},
		{"marker", "'1' | DEF (!) = 'x'", "DEF", "(!)"},
		{"quoted", "'1' | 'DEF'(~CON,1,Y) = 'x'", "'DEF'", "(~CON,1,Y)"},
		{"none", "'1' | DEF = 'x'", "DEF", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := ParseRow(tt.raw, header)
			require.NoError(t, err)
			assert.Equal(t, tt.value, row.KeyProperties[1].Value)
			assert.Equal(t, tt.annotation, row.Annotation)
		})
	}
}

func TestParseRowSanitize(t *testing.T) {
	header := ParseHeader("A | B | C | D = E | F")

	row, err := ParseRow(" \"x\" | 'y':comment |\tz\t | '\tq' (!) = 'https://example.com/a' | http://example.com:8080/b ", header)
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "'y'", "z", "'\tq'"}, row.KeyValues())
	assert.Equal(t, []string{"'https://example.com/a'", "http://example.com"}, row.DerivedValues())
}

func TestParseRowArity(t *testing.T) {
	header := ParseHeader("A | B = C | D")

	for _, raw := range []string{
		"'a' (!) = 'c' | 'd'",
		"'a' | 'b' | 'x' (!) = 'c' | 'd'",
		"'a' | 'b' (!) = 'c'",
		"'a' | 'b' (!)",
	} {
		_, err := ParseRow(raw, header)
		require.Error(t, err, raw)

		var arity *ArityError
		require.ErrorAs(t, err, &arity)
		assert.True(t, errors.Is(err, ErrArity))
		assert.Equal(t, []string{"A", "B"}, arity.HeaderKeys)
		assert.Equal(t, []string{"C", "D"}, arity.HeaderDerived)
	}
}

func TestParseRowWithoutDerived(t *testing.T) {
	header := NewHeader([]string{"A", "B"}, nil)

	for _, raw := range []string{"'a' | 'b'", "'a' | 'b' (!)= ", "'a' | 'b' (!)=    "} {
		row, err := ParseRow(raw, header)
		require.NoError(t, err, raw)
		assert.Equal(t, []string{"'a'", "'b'"}, row.KeyValues())
		assert.Empty(t, row.DerivedProperties)
	}
}

func TestRowProperties(t *testing.T) {
	header := ParseHeader("PART_NUMBER (OPT='') | VALUE = DESCRIPTION | JEDEC_TYPE")
	row, err := ParseRow("'1000-0001' | '10K' (!) = 'Resistor 10K' | 'R0402'", header)
	require.NoError(t, err)

	assert.Equal(t, "'1000-0001'", row.GetProperty("PART_NUMBER"))
	assert.Equal(t, "'1000-0001'", row.GetProperty("part_number"))
	assert.Equal(t, "'R0402'", row.GetProperty("jedec"))
	assert.Equal(t, "", row.GetProperty("AML"))
	assert.Equal(t, "1000-0001", row.PartNumber())

	assert.True(t, row.ContainsValue("resistor"))
	assert.True(t, row.ContainsValue("R04"))
	assert.False(t, row.ContainsValue("capacitor"))

	assert.True(t, row.EditProperty("description", "'Resistor 10K 1%'"))
	assert.Equal(t, "'Resistor 10K 1%'", row.GetProperty("DESCRIPTION"))
	assert.False(t, row.EditProperty("AML", "'x'"))

	assert.Equal(t, "'1000-0001' | '10K' = 'Resistor 10K 1%' | 'R0402'", row.String())
	assert.Equal(t, 2, row.NumKeyProperties())
	assert.Equal(t, 4, row.NumProperties())
}

func TestRowFormat(t *testing.T) {
	header := ParseHeader("A | B = C")

	plain, err := ParseRow("'a' | 'b' = 'c'", header)
	require.NoError(t, err)
	assert.Equal(t, "  'a' | 'b' (!)= 'c'", plain.Format())

	annotated, err := ParseRow("'a' | 'b' ('T',1,Y) = 'c'", header)
	require.NoError(t, err)
	assert.Equal(t, "  'a' | 'b' ('T',1,Y)= 'c'", annotated.Format())

	annotated.assignPadding([]int{5, 16, 4})
	assert.Equal(t, "  'a'   | 'b'    ('T',1,Y)= 'c' ", annotated.Format())
}

func TestSanitizeValueSchemes(t *testing.T) {
	for in, want := range map[string]string{
		"'http://example.com/a'":  "'http://example.com/a'",
		"'https://example.com/a'": "'https://example.com/a'",
		"'HTTPS://example.com/a'": "'HTTPS",
		"'ftp://example.com/a'":   "'ftp",
	} {
		assert.Equal(t, want, sanitizeValue(in), in)
	}
}
