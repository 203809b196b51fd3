// SPDX-License-Identifier: MIT
package themes

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// where is a stable filter over the catalog
func where(keep func(Palette) bool) []Palette {
	out := []Palette{}
	for _, p := range catalog {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// ByLevel returns the palettes with the given level
func ByLevel(level Level) []Palette {
	return where(func(p Palette) bool { return p.Level == level })
}

// ByTheme returns the palettes with the given theme
func ByTheme(theme Theme) []Palette {
	return where(func(p Palette) bool { return p.Theme == theme })
}

// ExcludingBold returns the conservative and moderate palettes
func ExcludingBold() []Palette {
	return where(func(p Palette) bool { return p.Level != Bold })
}

// Filter returns palettes matching both axes. AllThemes and AllLevels leave an axis open.
func Filter(theme Theme, level Level) []Palette {
	return where(func(p Palette) bool {
		return (theme == AllThemes || p.Theme == theme) &&
			(level == AllLevels || p.Level == level)
	})
}

type paletteSource []Palette

func (s paletteSource) String(i int) string { return s[i].Name }
func (s paletteSource) Len() int            { return len(s) }

// Search fuzzy-matches palette names across the whole catalog, best match first
func Search(query string) []Palette {
	return SearchIn(query, catalog)
}

// SearchIn fuzzy-matches palette names within set. An empty query returns set unchanged.
func SearchIn(query string, set []Palette) []Palette {
	query = strings.TrimSpace(query)
	if query == "" {
		out := make([]Palette, len(set))
		copy(out, set)
		return out
	}

	matches := fuzzy.FindFrom(query, paletteSource(set))
	out := make([]Palette, 0, len(matches))
	for _, m := range matches {
		out = append(out, set[m.Index])
	}
	return out
}
