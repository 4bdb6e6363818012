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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xoviat/ptf/lib"
	"go.uber.org/zap"
)

var (
	bomFlags lib.BOMConfig
)

// bomCmd represents the bom command
var bomCmd = &cobra.Command{
	Use:   "bom",
	Short: "Add part table properties to a bill of materials.",
	Long: `Read a BOM in the csv format, look up every line item in the library's part
tables, and write the BOM with the requested properties appended.

		Arguments are:
			- bom: the csv file to read
			- output: the csv file to write

	A line item matches the part table named by its part type column, and the
	rows of that table that contain its part number.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		settings := config.BOM
		if bomFlags.PartNumberColumn != "" {
			settings.PartNumberColumn = bomFlags.PartNumberColumn
		}
		if bomFlags.PartTypeColumn != "" {
			settings.PartTypeColumn = bomFlags.PartTypeColumn
		}
		if bomFlags.SearchColumn != "" {
			settings.SearchColumn = bomFlags.SearchColumn
		}
		if len(bomFlags.IncludeColumns) > 0 {
			settings.IncludeColumns = bomFlags.IncludeColumns
		}
		if len(bomFlags.AddColumns) > 0 {
			settings.AddColumns = bomFlags.AddColumns
		}

		if len(settings.IncludeColumns) != len(settings.AddColumns) {
			fmt.Println("include and add columns must have the same length")
			return
		}

		bom, err := lib.ReadBOMFile(args[0])
		if err != nil {
			fmt.Printf("failed to read bom: %s\n", err)
			return
		}

		files, cleanup, err := loadFiles(cmd.Context(), nil)
		if err != nil {
			fmt.Printf("failed to load part tables: %s\n", err)
			return
		}
		defer cleanup()

		logger.Info("enriching bom", zap.Int("items", len(bom.Items)), zap.Int("files", len(files)))
		if err := lib.NewEnricher(settings).Enrich(bom, files); err != nil {
			fmt.Printf("failed to enrich bom: %s\n", err)
			return
		}

		if err := lib.WriteBOMFile(args[1], bom); err != nil {
			fmt.Printf("failed to write bom: %s\n", err)
			return
		}
	},
}

func init() {
	rootCmd.AddCommand(bomCmd)

	bomCmd.Flags().StringVar(&bomFlags.PartNumberColumn, "part-number-column", "", "BOM column holding part numbers")
	bomCmd.Flags().StringVar(&bomFlags.PartTypeColumn, "part-type-column", "", "BOM column holding part types, e.g. RES-SMD")
	bomCmd.Flags().StringVar(&bomFlags.SearchColumn, "search-column", "", "part table column to search for the part number")
	bomCmd.Flags().StringSliceVar(&bomFlags.IncludeColumns, "include-columns", nil, "part table columns to copy into the BOM")
	bomCmd.Flags().StringSliceVar(&bomFlags.AddColumns, "add-columns", nil, "BOM titles for the copied columns, in the same order")
}
