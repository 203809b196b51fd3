// SPDX-License-Identifier: MIT

// Package preview renders palettes for the terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xilkadim/brandkit/internal/themes"
)

const swatchWidth = 6

// Summary returns the "#<id> <name> [level/theme]" header and the description
func Summary(p themes.Palette) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Colors.Primary))
	tags := lipgloss.NewStyle().Faint(true)
	return fmt.Sprintf("%s %s\n%s",
		title.Render(fmt.Sprintf("#%d %s", p.ID, p.Name)),
		tags.Render(fmt.Sprintf("[%s/%s]", p.Level, p.Theme)),
		p.Description)
}

// Swatches returns one line per slot: a painted block, the slot name and its hex value
func Swatches(p themes.Palette) string {
	label := lipgloss.NewStyle().Width(12)
	lines := make([]string, 0, len(themes.Slots()))
	for _, slot := range themes.Slots() {
		value := p.Colors.Value(slot)
		block := lipgloss.NewStyle().
			Background(lipgloss.Color(value)).
			Render(strings.Repeat(" ", swatchWidth))
		lines = append(lines, fmt.Sprintf("%s  %s %s", block, label.Render(string(slot)), value))
	}
	return strings.Join(lines, "\n")
}

// Card renders a small dashboard card styled with the palette
func Card(p themes.Palette) string {
	c := p.Colors
	badge := func(text, color string) string {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Background)).
			Background(lipgloss.Color(color)).
			Padding(0, 1).
			Render(text)
	}

	heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Primary)).Render("Crypto Trading Academy")
	body := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Text)).Render("BTC/USDT  43,250.00")
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(c.TextMuted)).Render("Portfolio overview")
	cta := lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Background)).
		Background(lipgloss.Color(c.Secondary)).
		Padding(0, 2).
		Render("Start course")
	badges := strings.Join([]string{
		badge("+2.4%", c.Success),
		badge("Volatile", c.Warning),
		badge("-1.1%", c.Error),
	}, " ")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Border)).
		Background(lipgloss.Color(c.Surface)).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, heading, muted, "", body, badges, "", cta))
}

// Render combines the summary, swatches and card
func Render(p themes.Palette) string {
	return lipgloss.JoinVertical(lipgloss.Left, Summary(p), "", Swatches(p), "", Card(p))
}
