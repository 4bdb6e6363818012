package lib

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tabularText = `FILE_TYPE = MULTI_PHYS_TABLE;
PART 'RES-SMD'
CLASS = 'DISCRETE'
: PART_NUMBER | VALUE = DESCRIPTION;
  '1' | '10K' (!) = 'RES 10K'
	'2' | '1K' (!) = 'RES 1K'
END_PART
PART 'CAP'
: PART_NUMBER = DESCRIPTION;
  '3' (!) = 'CAP'
  END_PART
END.
`

func TestGrammarTabular(t *testing.T) {
	raw, err := parseGrammar(tabularText)
	require.NoError(t, err)

	assert.False(t, raw.KeyValue)
	assert.Equal(t, "MULTI_PHYS_TABLE", raw.FileType)
	require.Len(t, raw.Tables, 2)

	assert.Equal(t, "RES-SMD", raw.Tables[0].Name)
	assert.Equal(t, "DISCRETE", raw.Tables[0].Class)
	assert.Equal(t, " PART_NUMBER | VALUE = DESCRIPTION", raw.Tables[0].Header)
	assert.Equal(t, []string{"'1' | '10K' (!) = 'RES 10K'", "'2' | '1K' (!) = 'RES 1K'"}, raw.Tables[0].Rows)

	assert.Equal(t, "CAP", raw.Tables[1].Name)
	assert.Equal(t, "", raw.Tables[1].Class)
	assert.Equal(t, []string{"'3' (!) = 'CAP'"}, raw.Tables[1].Rows)
}

func TestGrammarKeyValue(t *testing.T) {
	text := "FILE_TYPE = MULTI_PHYS_TABLE;\n" +
		"PART 'CON6P'\n" +
		"CLASS = IO\n" +
		"PART_NUMBER = '3000-0001'\n" +
		"JEDEC_TYPE = 'CON6P_1R2M-HEADER'\n" +
		"END_PART\n" +
		"END."

	raw, err := parseGrammar(text)
	require.NoError(t, err)

	assert.True(t, raw.KeyValue)
	require.Len(t, raw.Tables, 1)
	assert.Equal(t, "IO", raw.Tables[0].Class)
	assert.Equal(t, [][2]string{
		{"PART_NUMBER", "'3000-0001'"},
		{"JEDEC_TYPE", "'CON6P_1R2M-HEADER'"},
	}, raw.Tables[0].Pairs)
}

func TestGrammarClasses(t *testing.T) {
	for _, class := range []string{"IC", "DISCRETE", "Discrete", "discrete", "IO", "MECHANICAL"} {
		t.Run(class, func(t *testing.T) {
			text := "FILE_TYPE = MULTI_PHYS_TABLE;\nPART 'X'\nCLASS = " + class + "\n: A = B;\n  'a' (!) = 'b'\nEND_PART\nEND.\n"
			raw, err := parseGrammar(text)
			require.NoError(t, err)
			assert.Equal(t, class, raw.Tables[0].Class)
		})
	}

	t.Run("empty", func(t *testing.T) {
		raw, err := parseGrammar("FILE_TYPE = MULTI_PHYS_TABLE;\nPART 'X'\nCLASS =\n: A = B;\n  'a' (!) = 'b'\nEND_PART\nEND.\n")
		require.NoError(t, err)
		assert.Equal(t, "", raw.Tables[0].Class)
	})
}

func TestGrammarRejects(t *testing.T) {
	tests := map[string]string{
		"unknown file type": "FILE_TYPE = OTHER;\nPART 'X'\n: A = B;\n  'a' (!) = 'b'\nEND_PART\nEND.\n",
		"unknown class":     "FILE_TYPE = MULTI_PHYS_TABLE;\nPART 'X'\nCLASS = PASSIVE\n: A = B;\n  'a' (!) = 'b'\nEND_PART\nEND.\n",
		"no parts":          "FILE_TYPE = MULTI_PHYS_TABLE;\nEND.\n",
		"no rows":           "FILE_TYPE = MULTI_PHYS_TABLE;\nPART 'X'\n: A = B;\nEND_PART\nEND.\n",
		"missing end part":  "FILE_TYPE = MULTI_PHYS_TABLE;\nPART 'X'\n: A = B;\n  'a' (!) = 'b'\nEND.\n",
		"missing end":       "FILE_TYPE = MULTI_PHYS_TABLE;\nPART 'X'\n: A = B;\n  'a' (!) = 'b'\nEND_PART\n",
		"trailing text":     "FILE_TYPE = MULTI_PHYS_TABLE;\nPART 'X'\n: A = B;\n  'a' (!) = 'b'\nEND_PART\nEND.\nmore\n",
		"bad part name":     "FILE_TYPE = MULTI_PHYS_TABLE;\nPART 'X Y'\n: A = B;\n  'a' (!) = 'b'\nEND_PART\nEND.\n",
		"bad key value":     "FILE_TYPE = MULTI_PHYS_TABLE;\nPART 'X'\nKEY = 'a.b'\nEND_PART\nEND.\n",
	}

	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseGrammar(text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrGrammar))
		})
	}
}

func TestGrammarErrorLine(t *testing.T) {
	_, err := parseGrammar("FILE_TYPE = MULTI_PHYS_TABLE;\nPART 'X'\n: A = B;\n  'a' (!) = 'b'\nEND_PART\nEND;\n")

	var grammarErr *GrammarError
	require.ErrorAs(t, err, &grammarErr)
	assert.Equal(t, 6, grammarErr.Line)
}
