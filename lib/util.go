package lib

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

/*
	isFile reports whether path names something that can be read as a
	document, i.e. it exists and is not a directory
*/
func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

/*
	Normalize expands a leading ~ and returns an absolute, cleaned path
*/
func Normalize(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	return filepath.Abs(path)
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}

	return log
}
