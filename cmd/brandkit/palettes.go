// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/xilkadim/brandkit/internal/preview"
	"github.com/xilkadim/brandkit/internal/themes"
)

var (
	listTheme string
	listLevel string
	listJSON  bool
)

var palettesCmd = &cobra.Command{
	Use:     "palettes",
	Aliases: []string{"palette"},
	Short:   "Browse the palette catalog",
}

var palettesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List palettes, optionally filtered by theme and level",
	Run: func(cmd *cobra.Command, args []string) {
		theme, err := themes.ParseThemeFilter(listTheme)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		level, err := themes.ParseLevelFilter(listLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		palettes := themes.Filter(theme, level)
		if listJSON {
			err = writePalettesJSON(os.Stdout, palettes)
		} else {
			err = writePaletteTable(os.Stdout, palettes)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var palettesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Preview a palette in the terminal",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := paletteArg(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(preview.Render(p))
	},
}

var palettesSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy search palettes by name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		results := themes.Search(args[0])
		if len(results) == 0 {
			fmt.Printf("No palettes match %q\n", args[0])
			return
		}
		if err := writePaletteTable(os.Stdout, results); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	palettesListCmd.Flags().StringVar(&listTheme, "theme", "all", "Filter by theme (light, dark, all)")
	palettesListCmd.Flags().StringVar(&listLevel, "level", "all", "Filter by level (conservative, moderate, bold, all)")
	palettesListCmd.Flags().BoolVar(&listJSON, "json", false, "Print palettes as JSON")

	palettesCmd.AddCommand(palettesListCmd)
	palettesCmd.AddCommand(palettesShowCmd)
	palettesCmd.AddCommand(palettesSearchCmd)
	rootCmd.AddCommand(palettesCmd)
}

// paletteArg resolves a command line palette id
func paletteArg(arg string) (themes.Palette, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return themes.Palette{}, fmt.Errorf("invalid palette id %q", arg)
	}
	p, ok := themes.Get(id)
	if !ok {
		return themes.Palette{}, fmt.Errorf("palette %d not found (ids run 1-%d)", id, themes.Count())
	}
	return p, nil
}

func writePaletteTable(out io.Writer, palettes []themes.Palette) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLEVEL\tTHEME\tPRIMARY\tDESCRIPTION")
	for _, p := range palettes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, p.Level, p.Theme, p.Colors.Primary, p.Description)
	}
	return w.Flush()
}

func writePalettesJSON(out io.Writer, palettes []themes.Palette) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(palettes)
}
