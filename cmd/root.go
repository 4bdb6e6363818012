/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xoviat/ptf/lib"
	"go.uber.org/zap"
)

var (
	cfgFile     string
	logLevel    string
	libraryRoot string

	config *lib.Config
	logger *zap.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ptf",
	Short: "Parse, format and check part table files.",
	Long: `ptf reads part table files (PTF) from a component library, checks them for
duplicate entries, rewrites them in the standard column-aligned layout, and
cross-references them with bills of materials.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		config, err = lib.LoadConfig(cfgFile)
		if err != nil {
			return err
		}

		if logLevel != "" {
			config.Log.Level = logLevel
		}

		if libraryRoot != "" {
			config.Library.Root = libraryRoot
		}

		logger, err = lib.NewLogger(config.Log)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Sync()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVarP(&libraryRoot, "library", "l", "", "library root directory or archive")
}

/*
	discover lists the part table files under the configured library root.
	The returned cleanup removes an unpacked archive.
*/
func discover() ([]string, func(), error) {
	if config.Library.Root == "" {
		return nil, nil, fmt.Errorf("no library root given; use --library or [library] root")
	}

	src, err := lib.Normalize(config.Library.Root)
	if err != nil {
		return nil, nil, err
	}

	root, cleanup, err := lib.OpenLibraryRoot(src)
	if err != nil {
		return nil, nil, err
	}

	paths, err := lib.Discover(root, config.Library.Skip, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return paths, cleanup, nil
}

/*
	loadFiles parses the files named in args, or every file in the library
	when args is empty. Files that fail to parse are logged and left out.
*/
func loadFiles(ctx context.Context, args []string) ([]*lib.PartTableFile, func(), error) {
	paths, cleanup := args, func() {}
	if len(paths) == 0 {
		var err error
		if paths, cleanup, err = discover(); err != nil {
			return nil, nil, err
		}
	}

	results := lib.ParseFiles(ctx, paths, config.Library.Workers, logger)
	return lib.Files(results), cleanup, nil
}
