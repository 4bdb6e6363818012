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

// cssCmd represents the css command
var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Report off-grid connections in a connectivity file.",
	Long:  `Parse a connectivity (css) file and list the connections whose coordinates are not on the 10 unit grid.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		elements, err := lib.ParseCssFile(args[0])
		if err != nil {
			fmt.Printf("failed to parse file: %s\n", err)
			return
		}

		for _, c := range lib.OffGrid(elements) {
			fmt.Printf("%s: %d %d\n", c.Name, c.X, c.Y)
		}
	},
}

func init() {
	rootCmd.AddCommand(cssCmd)
}
