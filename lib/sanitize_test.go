package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLines(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"inline comment", []string{"DATA {comment} MORE"}, []string{"DATA  MORE"}},
		{"whole line comment", []string{"{ whole comment }"}, []string{}},
		{"comment opener", []string{"  { opens a comment"}, []string{}},
		{"trailing close", []string{"the end of a trailing }"}, []string{}},
		{"opener with inner spans", []string{"{ a {b} c"}, []string{}},
		{"blank lines", []string{"", "   ", "\t", "KEEP"}, []string{"KEEP"}},
		{"only a comment span", []string{"  {note}  "}, []string{}},
		{
			"data line with span and close",
			[]string{"'A' (!) = 'B' {note}"},
			[]string{"'A' (!) = 'B' "},
		},
		{"nested spans", []string{"X {a{b}c} Y"}, []string{"X {ac} Y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeLines(tt.in))
		})
	}
}

func TestSanitizeText(t *testing.T) {
	text := "FILE_TYPE = MULTI_PHYS_TABLE;\r\n{ header }\r\n\r\nEND.\r\n"
	assert.Equal(t, "FILE_TYPE = MULTI_PHYS_TABLE;\nEND.\n", SanitizeText(text))
	assert.Equal(t, "", SanitizeText("{ nothing }\n\n"))
}
