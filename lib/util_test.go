package lib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFile(t *testing.T) {
	assert.True(t, isFile(resistorFile))
	assert.False(t, isFile(filepath.Dir(resistorFile)))
	assert.False(t, isFile(filepath.Join("testdata", "nowhere.ptf")))
}

func TestNormalize(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path, err := Normalize("~/library")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "library"), path)

	path, err = Normalize("testdata/../testdata")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, "testdata", filepath.Base(path))
}
