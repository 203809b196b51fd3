// SPDX-License-Identifier: MIT
package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xilkadim/brandkit/internal/config"
	"github.com/xilkadim/brandkit/internal/dashboard"
	"github.com/xilkadim/brandkit/internal/export"
	"github.com/xilkadim/brandkit/internal/themes"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates for gin's SetHTMLTemplate
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

type swatch struct {
	Slot  themes.Slot
	Value string
}

type dashboardPage struct {
	Palette  themes.Palette
	Swatches []swatch
	Palettes []themes.Palette
	Total    int
	Filter   paletteQuery
	Themes   []themes.Theme
	Levels   []themes.Level
	Tab      dashboard.Tab
	Tabs     []dashboard.Tab
	Formats  []export.Format
	Content  dashboard.Content
}

// Link builds a dashboard URL that keeps the current filters
func (d dashboardPage) Link(id int, tab dashboard.Tab) string {
	v := url.Values{}
	v.Set("palette", strconv.Itoa(id))
	if d.Filter.Theme != themes.AllThemes {
		v.Set("theme", string(d.Filter.Theme))
	}
	if d.Filter.Level != themes.AllLevels {
		v.Set("level", string(d.Filter.Level))
	}
	if d.Filter.Query != "" {
		v.Set("q", d.Filter.Query)
	}
	if tab != dashboard.TabOverview {
		v.Set("tab", string(tab))
	}
	return "/?" + v.Encode()
}

// selectedPalette resolves ?palette=, then ui.default_palette, then the catalog default
func selectedPalette(c *gin.Context) themes.Palette {
	if id, err := strconv.Atoi(c.Query("palette")); err == nil {
		if p, ok := themes.Get(id); ok {
			return p
		}
	}
	if p, ok := themes.Get(config.GetInt("ui.default_palette")); ok {
		return p
	}
	return themes.Default()
}

// DashboardHandler serves GET / with the selected palette applied to the sample dashboard
func DashboardHandler(c *gin.Context) {
	q, err := parsePaletteQuery(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	p := selectedPalette(c)
	swatches := make([]swatch, 0, len(themes.Slots()))
	for _, slot := range themes.Slots() {
		swatches = append(swatches, swatch{Slot: slot, Value: p.Colors.Value(slot)})
	}

	c.HTML(http.StatusOK, "dashboard.html", dashboardPage{
		Palette:  p,
		Swatches: swatches,
		Palettes: q.apply(),
		Total:    themes.Count(),
		Filter:   q,
		Themes:   themes.Themes(),
		Levels:   themes.Levels(),
		Tab:      dashboard.ParseTab(c.Query("tab")),
		Tabs:     dashboard.Tabs(),
		Formats:  export.Formats(),
		Content:  dashboard.Sample(),
	})
}

// ThemeCSSHandler serves GET /theme.css with the preview variables of the selected palette
func ThemeCSSHandler(c *gin.Context) {
	p := selectedPalette(c)
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(themes.DemoCSS(p)))
}
