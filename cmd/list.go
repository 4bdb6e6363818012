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

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the part table files in the library.",
	Long: `List every part table file found under the library root, with the library
and cell it belongs to. Libraries whose path contains a skipped fragment
(obsolete, problem_parts, nonparts by default) are left out.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		paths, cleanup, err := discover()
		if err != nil {
			fmt.Printf("failed to discover part tables: %s\n", err)
			return
		}
		defer cleanup()

		for _, path := range paths {
			file := &lib.PartTableFile{Path: path}
			fmt.Printf("%s/%s: %s\n", file.Library(), file.Cell(), path)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
