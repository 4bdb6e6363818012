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

	"github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"
	"github.com/xoviat/ptf/lib"
)

var (
	limit int
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the rows of every part table.",
	Long: `Search indexes the rows of the library's part tables in memory and runs a
query against them. Columns can be queried by name:

	ptf search 10K
	ptf search "PACKAGE:0402 +table:RES"

Without a query, queries are read interactively until an empty line.`,
	Run: func(cmd *cobra.Command, args []string) {
		files, cleanup, err := loadFiles(cmd.Context(), nil)
		if err != nil {
			fmt.Printf("failed to load part tables: %s\n", err)
			return
		}
		defer cleanup()

		index, err := lib.NewRowIndex()
		if err != nil {
			fmt.Printf("failed to create index: %s\n", err)
			return
		}
		defer index.Close()

		if err := index.Add(files...); err != nil {
			fmt.Printf("failed to index part tables: %s\n", err)
			return
		}

		if len(args) > 0 {
			printHits(index, strings.Join(args, " "))
			return
		}

		suggestions := []prompt.Suggest{}
		seen := map[string]bool{}
		for _, file := range files {
			for _, table := range file.PartTables {
				for _, prop := range table.Header.Properties() {
					if !seen[prop.Name] {
						seen[prop.Name] = true
						suggestions = append(suggestions, prompt.Suggest{Text: prop.Name + ":"})
					}
				}
			}
		}

		for {
			query := prompt.Input("> ", func(d prompt.Document) []prompt.Suggest {
				return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
			})
			if query == "" {
				return
			}

			printHits(index, query)
		}
	},
}

func printHits(index *lib.RowIndex, query string) {
	hits, err := index.Search(query, limit)
	if err != nil {
		fmt.Printf("failed to search: %s\n", err)
		return
	}

	for _, hit := range hits {
		fmt.Printf("%s/%s %s: %s\n", hit.File.Library(), hit.File.Cell(), hit.Table.Name, hit.Row)
	}
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVarP(&limit, "limit", "n", 25, "maximum number of results")
}
