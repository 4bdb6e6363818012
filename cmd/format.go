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
)

var (
	ensureColumns []string
)

// formatCmd represents the format command
var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Rewrite a part table file with aligned columns.",
	Long: `Parse a part table file and write it back in the standard layout.

		Arguments are:
			- src: the part table file to read
			- dst: the file to write; standard output when omitted
	`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		file, err := lib.ParseFile(args[0])
		if err != nil {
			fmt.Printf("failed to parse file: %s\n", err)
			return
		}

		columns := ensureColumns
		if len(columns) == 0 {
			columns = config.Format.EnsureColumns
		}

		for _, table := range file.PartTables {
			table.EnsureColumns(columns...)
		}

		if len(args) < 2 {
			fmt.Println(file.String())
			return
		}

		if err := file.WriteFile(args[1]); err != nil {
			fmt.Printf("failed to write file: %s\n", err)
			return
		}
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().StringSliceVarP(&ensureColumns, "ensure", "e", nil, "derived columns to add when missing")
}
