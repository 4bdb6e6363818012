package lib

import (
	"fmt"
	"runtime"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

/*
	Config is read from a TOML file:

		[library]
		root = "/cad/share/library"
		skip = ["obsolete", "problem_parts", "nonparts"]
		workers = 8

		[log]
		level = "debug"
		format = "console"

		[bom]
		part_number_column = "Part Number"
		part_type_column = "Part Type"
		include_columns = ["AML", "DESCRIPTION"]
		add_columns = ["Manufacturer", "Description"]

		[format]
		ensure_columns = ["DESCRIPTION", "AML", "MANUFACTURER", "STATUS", "ORACLE_LINK"]
*/
type Config struct {
	Library LibraryConfig `toml:"library"`
	Log     LogConfig     `toml:"log"`
	BOM     BOMConfig     `toml:"bom"`
	Format  FormatConfig  `toml:"format"`
}

type LibraryConfig struct {
	Root    string   `toml:"root"`
	Skip    []string `toml:"skip"`
	Workers int      `toml:"workers"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type BOMConfig struct {
	PartNumberColumn string   `toml:"part_number_column"`
	PartTypeColumn   string   `toml:"part_type_column"`
	SearchColumn     string   `toml:"search_column"`
	IncludeColumns   []string `toml:"include_columns"`
	AddColumns       []string `toml:"add_columns"`
}

type FormatConfig struct {
	EnsureColumns []string `toml:"ensure_columns"`
}

func DefaultConfig() *Config {
	return &Config{
		Library: LibraryConfig{
			Skip:    append([]string{}, DefaultSkip...),
			Workers: runtime.NumCPU(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

/*
	LoadConfig decodes path over the defaults. An empty path yields the
	defaults alone.
*/
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if config.Library.Workers < 1 {
		config.Library.Workers = 1
	}

	return config, nil
}

/*
	NewLogger builds a zap logger; an unknown level falls back to info
*/
func NewLogger(config LogConfig) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if config.Format != "json" {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Encoding = "console"
	}

	level, err := zap.ParseAtomicLevel(config.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapConfig.Level = level
	zapConfig.OutputPaths = []string{"stderr"}

	return zapConfig.Build()
}
