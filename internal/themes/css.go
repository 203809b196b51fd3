// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strings"
)

// DemoVariables returns the :root block that applies a palette to the dashboard preview
func DemoVariables(p Palette) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, slot := range Slots() {
		fmt.Fprintf(&b, "  --demo-%s: %s;\n", slot.Kebab(), p.Colors.Value(slot))
	}
	b.WriteString("}\n")
	return b.String()
}

// DemoCSS returns the preview variables followed by base element styles that read them
func DemoCSS(p Palette) string {
	return DemoVariables(p) + baseStyles
}

const baseStyles = `
/* Base element styles */
body {
  background-color: var(--demo-background);
  color: var(--demo-text);
  transition: background-color 0.2s, color 0.2s;
}

a {
  color: var(--demo-primary);
  text-decoration: none;
}

a:hover {
  text-decoration: underline;
}

/* Button styles */
button, .btn {
  background-color: var(--demo-primary);
  color: var(--demo-background);
  border: none;
  padding: 8px 16px;
  border-radius: 4px;
  cursor: pointer;
  transition: opacity 0.2s;
}

.btn-secondary {
  background-color: var(--demo-secondary);
}

.btn-outline {
  background-color: transparent;
  color: var(--demo-text);
  border: 1px solid var(--demo-border);
}

button:hover, .btn:hover {
  opacity: 0.9;
}

/* Card/surface styles */
.card, .surface {
  background-color: var(--demo-surface);
  border: 1px solid var(--demo-border);
  border-radius: 8px;
  padding: 16px;
}

hr, .divider {
  border: none;
  border-top: 1px solid var(--demo-border);
}

input, textarea, select {
  border: 1px solid var(--demo-border);
  background-color: var(--demo-surface);
  color: var(--demo-text);
  padding: 8px;
  border-radius: 4px;
}

h1, h2, h3, h4, h5, h6 {
  color: var(--demo-text);
}

.text-muted, .muted {
  color: var(--demo-text-muted);
}

/* Status colors */
.success { color: var(--demo-success); }
.error, .danger { color: var(--demo-error); }
.warning { color: var(--demo-warning); }
`
