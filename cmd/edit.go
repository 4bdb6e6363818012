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

	"github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"
	"github.com/xoviat/ptf/lib"
)

var (
	output string
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a property of a part.",
	Long: `Edit sets one property on every row carrying a part number, then rewrites
the file in the standard layout.

	Example:
		- ptf edit <file> <part number>                 : prompt for property and value
		- ptf edit <file> <part number> <property>      : prompt for the value
		- ptf edit <file> <part number> <property> <v>  : set the value
		- ptf edit -o <dst> ...                         : write to dst instead of file
	`,
	Args: cobra.RangeArgs(2, 4),
	Run: func(cmd *cobra.Command, args []string) {
		src, pn := args[0], args[1]
		file, err := lib.ParseFile(src)
		if err != nil {
			fmt.Printf("failed to parse file: %s\n", err)
			return
		}

		rows := []*lib.Row{}
		suggestions := []prompt.Suggest{}
		for _, table := range file.PartTables {
			for _, row := range table.Rows {
				if row.PartNumber() == pn {
					rows = append(rows, row)
				}
			}

			if len(rows) > 0 && len(suggestions) == 0 {
				for _, prop := range table.Header.Properties() {
					suggestions = append(suggestions, prompt.Suggest{Text: prop.Name, Description: table.Name})
				}
			}
		}

		if len(rows) == 0 {
			fmt.Printf("no rows with part number %s\n", pn)
			return
		}

		property := ""
		if len(args) > 2 {
			property = args[2]
		} else {
			fmt.Printf("Enter property for %s\n:", pn)
			property = prompt.Input("> ", func(d prompt.Document) []prompt.Suggest {
				return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
			})
		}

		value := ""
		if len(args) > 3 {
			value = args[3]
		} else {
			fmt.Printf("Enter value for %s (currently %s)\n:", property, rows[0].GetProperty(property))
			value = prompt.Input("> ", func(d prompt.Document) []prompt.Suggest {
				return []prompt.Suggest{}
			})
		}

		for _, row := range rows {
			if !row.EditProperty(property, value) {
				fmt.Printf("part %s has no property %s\n", pn, property)
				return
			}
		}

		dst := src
		if output != "" {
			dst = output
		}

		if err := file.WriteFile(dst); err != nil {
			fmt.Printf("failed to write file: %s\n", err)
			return
		}
	},
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVarP(&output, "output", "o", "", "file to write")
}
