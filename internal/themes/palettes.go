// SPDX-License-Identifier: MIT
package themes

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidLevel = errors.New("invalid level")
	ErrInvalidTheme = errors.New("invalid theme")
)

// Level is the editorial intensity of a palette
type Level string

const (
	Conservative Level = "conservative"
	Moderate     Level = "moderate"
	Bold         Level = "bold"

	// AllLevels places no constraint on the level axis of Filter
	AllLevels Level = ""
)

// Levels returns the three levels in display order
func Levels() []Level {
	return []Level{Conservative, Moderate, Bold}
}

// ParseLevel converts outside input into a Level
func ParseLevel(s string) (Level, error) {
	switch l := Level(s); l {
	case Conservative, Moderate, Bold:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q (want conservative, moderate or bold)", ErrInvalidLevel, s)
}

// ParseLevelFilter is ParseLevel that also accepts "all" or "" as AllLevels
func ParseLevelFilter(s string) (Level, error) {
	if s == "" || s == "all" {
		return AllLevels, nil
	}
	return ParseLevel(s)
}

// UnmarshalText rejects unknown levels while decoding YAML or JSON
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Theme tells whether a palette targets a light or dark interface
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"

	// AllThemes places no constraint on the theme axis of Filter
	AllThemes Theme = ""
)

// Themes returns both themes in display order
func Themes() []Theme {
	return []Theme{Light, Dark}
}

// ParseTheme converts outside input into a Theme
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(s); t {
	case Light, Dark:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q (want light or dark)", ErrInvalidTheme, s)
}

// ParseThemeFilter is ParseTheme that also accepts "all" or "" as AllThemes
func ParseThemeFilter(s string) (Theme, error) {
	if s == "" || s == "all" {
		return AllThemes, nil
	}
	return ParseTheme(s)
}

// UnmarshalText rejects unknown themes while decoding YAML or JSON
func (t *Theme) UnmarshalText(text []byte) error {
	parsed, err := ParseTheme(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Palette is one brand kit of the catalog. ID is the only identity.
type Palette struct {
	ID          int    `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Colors      Colors `yaml:"colors" json:"colors"`
	Level       Level  `yaml:"level" json:"level"`
	Theme       Theme  `yaml:"theme" json:"theme"`
}

//go:embed catalog.yaml
var catalogYAML []byte

// catalog is decoded once at init and never written afterwards
var catalog = mustLoadCatalog(catalogYAML)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks that every slot holds a #RRGGBB value and both tags are known
func Validate(p Palette) error {
	if p.Name == "" {
		return fmt.Errorf("palette %d: empty name", p.ID)
	}
	if _, err := ParseLevel(string(p.Level)); err != nil {
		return fmt.Errorf("palette %d: %w", p.ID, err)
	}
	if _, err := ParseTheme(string(p.Theme)); err != nil {
		return fmt.Errorf("palette %d: %w", p.ID, err)
	}
	for _, slot := range Slots() {
		if v := p.Colors.Value(slot); !hexColor.MatchString(v) {
			return fmt.Errorf("palette %d: slot %s: invalid color %q", p.ID, slot, v)
		}
	}
	return nil
}

// loadCatalog decodes and validates a catalog document
func loadCatalog(data []byte) ([]Palette, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var palettes []Palette
	if err := dec.Decode(&palettes); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	seen := make(map[int]bool, len(palettes))
	for _, p := range palettes {
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate palette id: %d", p.ID)
		}
		seen[p.ID] = true
		if err := Validate(p); err != nil {
			return nil, err
		}
	}
	return palettes, nil
}

func mustLoadCatalog(data []byte) []Palette {
	palettes, err := loadCatalog(data)
	if err != nil {
		panic(fmt.Sprintf("themes: embedded catalog: %v", err))
	}
	return palettes
}

// All returns every palette in catalog order
func All() []Palette {
	out := make([]Palette, len(catalog))
	copy(out, catalog)
	return out
}

// Get returns a palette by id
func Get(id int) (Palette, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Palette{}, false
}

// Default returns the first catalog entry, the initial selection of the dashboard
func Default() Palette {
	return catalog[0]
}

// Count returns the number of shipped palettes
func Count() int {
	return len(catalog)
}
