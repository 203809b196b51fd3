// SPDX-License-Identifier: MIT
package themes

// Colors holds the ten semantic color roles of a palette.
// Field order is the schema order used by every exporter.
type Colors struct {
	Primary    string `yaml:"primary" json:"primary"`       // Logo / main brand color
	Secondary  string `yaml:"secondary" json:"secondary"`   // Accents, CTA
	Background string `yaml:"background" json:"background"` // Page background
	Surface    string `yaml:"surface" json:"surface"`       // Cards, panels
	Text       string `yaml:"text" json:"text"`             // Main text
	TextMuted  string `yaml:"textMuted" json:"textMuted"`   // Secondary text
	Border     string `yaml:"border" json:"border"`         // Borders and dividers
	Success    string `yaml:"success" json:"success"`       // Profit / success
	Warning    string `yaml:"warning" json:"warning"`       // Warnings
	Error      string `yaml:"error" json:"error"`           // Loss / error
}

// Slot names one of the ten color roles
type Slot string

const (
	SlotPrimary    Slot = "primary"
	SlotSecondary  Slot = "secondary"
	SlotBackground Slot = "background"
	SlotSurface    Slot = "surface"
	SlotText       Slot = "text"
	SlotTextMuted  Slot = "textMuted"
	SlotBorder     Slot = "border"
	SlotSuccess    Slot = "success"
	SlotWarning    Slot = "warning"
	SlotError      Slot = "error"
)

var slotOrder = [...]Slot{
	SlotPrimary, SlotSecondary, SlotBackground, SlotSurface, SlotText,
	SlotTextMuted, SlotBorder, SlotSuccess, SlotWarning, SlotError,
}

// Slots returns the ten color roles in schema order. The slice is a fresh copy.
func Slots() []Slot {
	out := slotOrder
	return out[:]
}

// Kebab returns the dashed form used for style-sheet variable names (textMuted -> text-muted)
func (s Slot) Kebab() string {
	if s == SlotTextMuted {
		return "text-muted"
	}
	return string(s)
}

// Value returns the hex color assigned to a slot
func (c Colors) Value(s Slot) string {
	switch s {
	case SlotPrimary:
		return c.Primary
	case SlotSecondary:
		return c.Secondary
	case SlotBackground:
		return c.Background
	case SlotSurface:
		return c.Surface
	case SlotText:
		return c.Text
	case SlotTextMuted:
		return c.TextMuted
	case SlotBorder:
		return c.Border
	case SlotSuccess:
		return c.Success
	case SlotWarning:
		return c.Warning
	case SlotError:
		return c.Error
	}
	return ""
}
