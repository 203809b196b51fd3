// SPDX-License-Identifier: MIT
package export

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-json"
	"github.com/xilkadim/brandkit/internal/themes"
)

// Record is the structured document form of a palette
type Record struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Level       themes.Level  `json:"level"`
	Theme       themes.Theme  `json:"theme"`
	Colors      themes.Colors `json:"colors"`
}

type namedColor struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type colorList struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Colors      []namedColor `json:"colors"`
}

type token struct {
	Value       string `json:"value"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// tokens mirrors themes.Colors so key order follows the slot schema
type tokens struct {
	Primary    token `json:"primary"`
	Secondary  token `json:"secondary"`
	Background token `json:"background"`
	Surface    token `json:"surface"`
	Text       token `json:"text"`
	TextMuted  token `json:"textMuted"`
	Border     token `json:"border"`
	Success    token `json:"success"`
	Warning    token `json:"warning"`
	Error      token `json:"error"`
}

type tokenSet struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Tokens      tokens `json:"tokens"`
}

// encode writes v as 2-space indented JSON without HTML escaping
func encode(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		// only plain structs of strings reach here
		panic(fmt.Sprintf("export: encode: %v", err))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// nest indents every line of a multi-line literal but the first
func nest(s, indent string) string {
	return strings.ReplaceAll(s, "\n", "\n"+indent)
}

func quote(s string) string {
	return encode(s)
}

func heading(p themes.Palette) string {
	return p.Name + " - " + p.Description
}

// Stylesheet renders a :root block of --color-* custom properties
func Stylesheet(p themes.Palette) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  /* %s */\n", heading(p))
	for _, slot := range themes.Slots() {
		fmt.Fprintf(&b, "  --color-%s: %s;\n", slot.Kebab(), p.Colors.Value(slot))
	}
	b.WriteString("}")
	return b.String()
}

// Preprocessor renders SCSS variable assignments
func Preprocessor(p themes.Palette) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// %s", heading(p))
	for _, slot := range themes.Slots() {
		fmt.Fprintf(&b, "\n$%s: %s;", slot.Kebab(), p.Colors.Value(slot))
	}
	return b.String()
}

func recordOf(p themes.Palette) Record {
	return Record{
		Name:        p.Name,
		Description: p.Description,
		Level:       p.Level,
		Theme:       p.Theme,
		Colors:      p.Colors,
	}
}

// Document renders the palette as an indented JSON document
func Document(p themes.Palette) string {
	return encode(recordOf(p))
}

// Decode parses Document output back into a Record
func Decode(data []byte) (Record, error) {
	var r Record
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&r); err != nil {
		return Record{}, fmt.Errorf("failed to decode palette document: %w", err)
	}
	return r, nil
}

var (
	identWhitespace = regexp.MustCompile(`\s+`)
	identInvalid    = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// Identifier derives the exported constant name of ScriptModule.
// A name without ASCII letters or digits yields just "Palette".
func Identifier(name string) string {
	name = identWhitespace.ReplaceAllString(name, "")
	return identInvalid.ReplaceAllString(name, "") + "Palette"
}

// ScriptModule renders an ES module exporting the palette as a constant
func ScriptModule(p themes.Palette) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// %s\n", heading(p))
	fmt.Fprintf(&b, "export const %s = {\n", Identifier(p.Name))
	fmt.Fprintf(&b, "  name: %s,\n", quote(p.Name))
	fmt.Fprintf(&b, "  description: %s,\n", quote(p.Description))
	fmt.Fprintf(&b, "  level: %s,\n", quote(string(p.Level)))
	fmt.Fprintf(&b, "  theme: %s,\n", quote(string(p.Theme)))
	fmt.Fprintf(&b, "  colors: %s\n", nest(encode(p.Colors), "  "))
	b.WriteString("};")
	return b.String()
}

// ColorList renders Sketch color variables named <palette>/<slot>
func ColorList(p themes.Palette) string {
	list := colorList{
		Name:        p.Name,
		Description: p.Description,
		Colors:      make([]namedColor, 0, len(themes.Slots())),
	}
	for _, slot := range themes.Slots() {
		list.Colors = append(list.Colors, namedColor{
			Name:  p.Name + "/" + string(slot),
			Value: p.Colors.Value(slot),
		})
	}
	return encode(list)
}

// TokenSet renders Figma design tokens keyed by slot
func TokenSet(p themes.Palette) string {
	tok := func(slot themes.Slot) token {
		return token{
			Value:       p.Colors.Value(slot),
			Type:        "color",
			Description: p.Name + " " + string(slot) + " color",
		}
	}

	return encode(tokenSet{
		Name:        p.Name,
		Description: p.Description,
		Tokens: tokens{
			Primary:    tok(themes.SlotPrimary),
			Secondary:  tok(themes.SlotSecondary),
			Background: tok(themes.SlotBackground),
			Surface:    tok(themes.SlotSurface),
			Text:       tok(themes.SlotText),
			TextMuted:  tok(themes.SlotTextMuted),
			Border:     tok(themes.SlotBorder),
			Success:    tok(themes.SlotSuccess),
			Warning:    tok(themes.SlotWarning),
			Error:      tok(themes.SlotError),
		},
	})
}
