// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/xilkadim/brandkit/internal/config"
	"github.com/xilkadim/brandkit/internal/export"
	"github.com/xilkadim/brandkit/internal/themes"
)

var (
	exportFormat string
	exportOutput string
	exportStdout bool
)

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a palette to a file",
	Long: `Export a palette in one of the supported formats.

Without --output the file is written to export.out_dir under its default
name, e.g. deep-ocean-figma-tokens.json. The format defaults to
export.default_format.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		p, err := paletteArg(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		id := exportFormat
		if id == "" {
			id = config.GetString("export.default_format")
		}
		format, err := export.ParseFormat(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		body, err := export.Render(format, p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if exportStdout {
			fmt.Println(body)
			return
		}

		path := exportPath(p, format, exportOutput, config.GetString("export.out_dir"))
		if err := writeExport(path, body); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported %s as %s to %s\n", p.Name, format.Label(), path)
	},
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List export formats",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tLABEL\tFILE\tCONTENT TYPE\tDESCRIPTION")
		for _, f := range export.Formats() {
			fmt.Fprintf(w, "%s\t%s\t<slug>%s\t%s\t%s\n",
				f, f.Label(), f.Suffix(), f.ContentType(), f.Description())
		}
		w.Flush()
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Export format (css, scss, json, js, sketch, figma)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "Print to stdout instead of writing a file")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(formatsCmd)
}

// exportPath is output when set, otherwise the default file name inside dir
func exportPath(p themes.Palette, f export.Format, output, dir string) string {
	if output != "" {
		return output
	}
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, export.FileName(f, p))
}

func writeExport(path string, body string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
