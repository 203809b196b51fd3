// SPDX-License-Identifier: MIT
package export

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xilkadim/brandkit/internal/themes"
)

func TestEveryFormatIsComplete(t *testing.T) {
	require.Len(t, Formats(), 6)
	for _, f := range Formats() {
		def := formatTable[f]
		assert.NotEmpty(t, def.id, "format %d", f)
		assert.NotEmpty(t, def.label, "format %d", f)
		assert.NotEmpty(t, def.suffix, "format %d", f)
		assert.NotEmpty(t, def.contentType, "format %d", f)
		assert.NotNil(t, def.render, "format %d", f)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, []string{"css", "scss", "json", "js", "sketch", "figma"}, IDs())

	for _, f := range Formats() {
		got, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFormat("pdf")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	_, err = ParseFormat("CSS")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(Format(42), themes.Default())
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Render(Format(-1), themes.Default())
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRenderDispatch(t *testing.T) {
	p := themes.Default()
	want := map[Format]string{
		CSS:        Stylesheet(p),
		SCSS:       Preprocessor(p),
		JSON:       Document(p),
		JavaScript: ScriptModule(p),
		Sketch:     ColorList(p),
		Figma:      TokenSet(p),
	}
	for f, expected := range want {
		got, err := Render(f, p)
		require.NoError(t, err)
		assert.Equal(t, expected, got, "format %s", f)
	}
}

func TestFileName(t *testing.T) {
	p, _ := themes.Get(2)
	tests := []struct {
		format Format
		want   string
	}{
		{CSS, "deep-ocean.css"},
		{SCSS, "deep-ocean.scss"},
		{JSON, "deep-ocean.json"},
		{JavaScript, "deep-ocean.js"},
		{Sketch, "deep-ocean-sketch.json"},
		{Figma, "deep-ocean-figma-tokens.json"},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.format, p))
		})
	}

	assert.Equal(t, "trading-of-the-future-dark", Slug("Trading  of the\tFuture Dark"))
}

func TestSlugUnicodeWhitespace(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Deep\u00a0Ocean", "deep-ocean"},
		{"Deep\vOcean", "deep-ocean"},
		{"Deep\u2003\u00a0 Ocean", "deep-ocean"},
		{"\u3000Night\ufeff", "-night-"},
		{"Deep\u200bOcean", "deep\u200bocean"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slug(tt.name), "%q", tt.name)
	}
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/css", CSS.ContentType())
	assert.Equal(t, "text/scss", SCSS.ContentType())
	assert.Equal(t, "application/json", JSON.ContentType())
	assert.Equal(t, "text/javascript", JavaScript.ContentType())
	assert.Equal(t, "application/json", Sketch.ContentType())
	assert.Equal(t, "application/json", Figma.ContentType())
	assert.Equal(t, "text/plain", Format(99).ContentType())
}

func TestFormatJSON(t *testing.T) {
	out, err := json.Marshal([]Format{CSS, Figma})
	require.NoError(t, err)
	assert.JSONEq(t, `["css","figma"]`, string(out))

	var back []Format
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, []Format{CSS, Figma}, back)

	assert.Error(t, json.Unmarshal([]byte(`["svg"]`), &back))
}
