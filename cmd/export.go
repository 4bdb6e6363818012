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
	"strings"

	"github.com/spf13/cobra"
	"github.com/xoviat/ptf/lib"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export part tables to a workbook.",
	Long: `Export part tables in the xlsx format, one sheet per part table. Without
part table files every file in the library is exported.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dst := args[0]
		if !strings.HasSuffix(dst, "xlsx") {
			fmt.Printf("export file name must be excel file\n")
			return
		}

		files, cleanup, err := loadFiles(cmd.Context(), args[1:])
		if err != nil {
			fmt.Printf("failed to load part tables: %s\n", err)
			return
		}
		defer cleanup()

		if err := lib.ExportWorkbook(dst, files); err != nil {
			fmt.Printf("failed to export workbook: %s\n", err)
			return
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
