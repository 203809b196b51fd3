// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// Chrome palette for the controls around the preview, independent of the selected palette
	ColorChromeBg     = "#F3F4F6" // Light gray background
	ColorChromePanel  = "#FFFFFF" // White panel
	ColorChromeText   = "#2D2D2D" // Dark charcoal
	ColorChromeMuted  = "#6B7280" // Light gray
	ColorChromeAccent = "#2E8B9E" // Teal accent
	ColorChromeBorder = "#E5E5E3" // Subtle border
)

// LayoutCSS returns the dashboard layout stylesheet. Preview regions read the
// --demo-* variables emitted by /theme.css; the sidebar uses the chrome palette.
func LayoutCSS() string {
	return `
:root {
	--chrome-bg: ` + ColorChromeBg + `;
	--chrome-panel: ` + ColorChromePanel + `;
	--chrome-text: ` + ColorChromeText + `;
	--chrome-muted: ` + ColorChromeMuted + `;
	--chrome-accent: ` + ColorChromeAccent + `;
	--chrome-border: ` + ColorChromeBorder + `;
	--font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
	--spacing-sm: 8px;
	--spacing-base: 16px;
	--spacing-md: 24px;
	--radius-base: 6px;
}

* { box-sizing: border-box; }

body { font-family: var(--font-family); margin: 0; line-height: 1.5; }

.layout { display: grid; grid-template-columns: 320px 1fr; min-height: 100vh; }

/* Sidebar */
.sidebar {
	background: var(--chrome-bg);
	color: var(--chrome-text);
	border-right: 1px solid var(--chrome-border);
	padding: var(--spacing-md);
	overflow-y: auto;
	max-height: 100vh;
}

.sidebar h1 { font-size: 20px; color: var(--chrome-text); margin: 0 0 var(--spacing-base); }
.sidebar small { color: var(--chrome-muted); }

.filters { display: grid; gap: var(--spacing-sm); margin-bottom: var(--spacing-base); }
.filters select, .filters input {
	background: var(--chrome-panel);
	color: var(--chrome-text);
	border: 1px solid var(--chrome-border);
}
.filters button { background: var(--chrome-accent); color: white; }

.palette-list { list-style: none; margin: 0; padding: 0; display: grid; gap: var(--spacing-sm); }
.palette-item a {
	display: block;
	background: var(--chrome-panel);
	color: var(--chrome-text);
	border: 1px solid var(--chrome-border);
	border-radius: var(--radius-base);
	padding: var(--spacing-sm);
}
.palette-item.active a { border-color: var(--chrome-accent); box-shadow: 0 0 0 2px var(--chrome-accent); }
.palette-item .tags { color: var(--chrome-muted); font-size: 12px; }

.strip { display: flex; height: 12px; margin-top: 6px; border-radius: 3px; overflow: hidden; }
.strip span { flex: 1; }

/* Preview */
.preview { padding: var(--spacing-md); }
.preview-header { display: flex; justify-content: space-between; align-items: center; gap: var(--spacing-base); }
.tabs { display: flex; flex-wrap: wrap; gap: var(--spacing-sm); margin: var(--spacing-base) 0; }
.tabs a { padding: 6px 12px; border-radius: var(--radius-base); border: 1px solid var(--demo-border); }
.tabs a.active { background: var(--demo-primary); color: var(--demo-background); }

.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: var(--spacing-base); }
.swatches { display: grid; grid-template-columns: repeat(5, 1fr); gap: var(--spacing-sm); }
.swatch { border: 1px solid var(--demo-border); border-radius: var(--radius-base); overflow: hidden; font-size: 12px; }
.swatch .chip { height: 48px; }
.swatch .meta { padding: 4px 6px; }

.downloads { display: flex; flex-wrap: wrap; gap: var(--spacing-sm); }

table { width: 100%; border-collapse: collapse; }
th, td { text-align: left; padding: 6px 8px; border-bottom: 1px solid var(--demo-border); }

.chat .own { text-align: right; }
.price-old { text-decoration: line-through; }

@media (max-width: 800px) {
	.layout { grid-template-columns: 1fr; }
	.sidebar { max-height: none; }
}
`
}

// LayoutCSSHandler serves GET /assets/layout.css
func LayoutCSSHandler(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(LayoutCSS()))
}
