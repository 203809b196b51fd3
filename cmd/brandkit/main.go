// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "brandkit",
	Short: "Brand Kit - color palette catalog and exporter",
	Long: `Brand Kit ships a curated catalog of fifty color palettes for a trading
academy interface and exports any of them as CSS, SCSS, JSON, JavaScript,
Sketch or Figma tokens.

Browse palettes from the terminal, or start the server for a live dashboard
preview and a JSON API.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
