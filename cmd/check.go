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
	"go.uber.org/zap"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report duplicate entries in part tables.",
	Long: `Check part tables for duplicate rows, rows that differ only by part number,
and part numbers used more than once. Without arguments every part table file
in the library is checked.`,
	Run: func(cmd *cobra.Command, args []string) {
		files, cleanup, err := loadFiles(cmd.Context(), args)
		if err != nil {
			fmt.Printf("failed to load part tables: %s\n", err)
			return
		}
		defer cleanup()

		for _, file := range files {
			for _, table := range file.PartTables {
				where := fmt.Sprintf("%s: %s", file.Path, table.Name)

				for _, row := range table.FindDuplicates() {
					logger.Debug("duplicate row", zap.String("table", table.Name), zap.String("row", row.String()))
					fmt.Printf("%s: duplicate: %s\n", where, row)
				}

				for _, row := range table.FindSimilar() {
					logger.Debug("similar row", zap.String("table", table.Name), zap.String("row", row.String()))
					fmt.Printf("%s: similar: %s\n", where, row)
				}

				for _, pn := range table.FindRepeatedPartNumbers() {
					fmt.Printf("%s: repeated part number: %s\n", where, pn)
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
