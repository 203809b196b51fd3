// SPDX-License-Identifier: MIT
package export

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/xilkadim/brandkit/internal/themes"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Format selects one of the six export representations
type Format int

const (
	CSS Format = iota
	SCSS
	JSON
	JavaScript
	Sketch
	Figma

	formatCount
)

// formatDef describes everything the shell needs to offer a format for download
type formatDef struct {
	id          string
	label       string
	description string
	suffix      string
	contentType string
	render      func(themes.Palette) string
}

// formatTable is indexed by Format and holds an entry for every value below formatCount
var formatTable = [formatCount]formatDef{
	CSS: {
		id: "css", label: "CSS Variables", description: "CSS custom properties",
		suffix: ".css", contentType: "text/css", render: Stylesheet,
	},
	SCSS: {
		id: "scss", label: "SCSS Variables", description: "SCSS variables for Sass",
		suffix: ".scss", contentType: "text/scss", render: Preprocessor,
	},
	JSON: {
		id: "json", label: "JSON", description: "Structured JSON document",
		suffix: ".json", contentType: "application/json", render: Document,
	},
	JavaScript: {
		id: "js", label: "JavaScript", description: "ES6 module export",
		suffix: ".js", contentType: "text/javascript", render: ScriptModule,
	},
	Sketch: {
		id: "sketch", label: "Sketch", description: "Color variables for Sketch",
		suffix: "-sketch.json", contentType: "application/json", render: ColorList,
	},
	Figma: {
		id: "figma", label: "Figma Tokens", description: "Figma design tokens",
		suffix: "-figma-tokens.json", contentType: "application/json", render: TokenSet,
	},
}

// Formats returns all formats in menu order
func Formats() []Format {
	out := make([]Format, 0, formatCount)
	for f := Format(0); f < formatCount; f++ {
		out = append(out, f)
	}
	return out
}

// ParseFormat maps a shell identifier (css, scss, json, js, sketch, figma) to a Format
func ParseFormat(id string) (Format, error) {
	for f, def := range formatTable {
		if def.id == id {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, id)
}

// IDs returns the identifiers accepted by ParseFormat
func IDs() []string {
	out := make([]string, 0, formatCount)
	for _, def := range formatTable {
		out = append(out, def.id)
	}
	return out
}

func (f Format) valid() bool {
	return f >= 0 && f < formatCount
}

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatTable[f].id
}

// Label is the human-readable format name
func (f Format) Label() string {
	if !f.valid() {
		return ""
	}
	return formatTable[f].label
}

// Description is a one-line summary of the format
func (f Format) Description() string {
	if !f.valid() {
		return ""
	}
	return formatTable[f].description
}

// ContentType is the MIME type suggested for a download
func (f Format) ContentType() string {
	if !f.valid() {
		return "text/plain"
	}
	return formatTable[f].contentType
}

// Suffix is appended to the palette slug to form the download name
func (f Format) Suffix() string {
	if !f.valid() {
		return ".txt"
	}
	return formatTable[f].suffix
}

// MarshalText lets formats appear by id in JSON responses
func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	return []byte(formatTable[f].id), nil
}

// UnmarshalText parses a format id
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Render serializes p in the given format
func Render(f Format, p themes.Palette) (string, error) {
	if !f.valid() {
		return "", fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	return formatTable[f].render(p), nil
}

// whitespace covers ASCII whitespace plus \v and the Unicode space separators
var whitespace = regexp.MustCompile(`[\s\x{000B}\x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}]+`)

// Slug lowercases a palette name and replaces whitespace runs with dashes.
// Leading and trailing runs become dashes too.
func Slug(name string) string {
	return strings.ToLower(whitespace.ReplaceAllString(name, "-"))
}

// FileName is the suggested download name for p in format f
func FileName(f Format, p themes.Palette) string {
	return Slug(p.Name) + f.Suffix()
}
