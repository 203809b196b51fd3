// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xilkadim/brandkit/internal/themes"
)

var errInvalidPaletteID = errors.New("palette id must be a positive integer")

// paletteQuery holds the theme/level/q catalog filters of a request
type paletteQuery struct {
	Theme themes.Theme
	Level themes.Level
	Query string
}

func parsePaletteQuery(c *gin.Context) (paletteQuery, error) {
	theme, err := themes.ParseThemeFilter(c.Query("theme"))
	if err != nil {
		return paletteQuery{}, err
	}
	level, err := themes.ParseLevelFilter(c.Query("level"))
	if err != nil {
		return paletteQuery{}, err
	}
	return paletteQuery{Theme: theme, Level: level, Query: c.Query("q")}, nil
}

// apply filters the catalog by both axes, then ranks by the search query if one is set
func (q paletteQuery) apply() []themes.Palette {
	set := themes.Filter(q.Theme, q.Level)
	if q.Query == "" {
		return set
	}
	return themes.SearchIn(q.Query, set)
}

// lookupPalette resolves a path id, answering 400 or 404 itself on failure
func lookupPalette(c *gin.Context) (themes.Palette, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		abortWithError(c, http.StatusBadRequest, errInvalidPaletteID)
		return themes.Palette{}, false
	}
	p, ok := themes.Get(id)
	if !ok {
		abortWithError(c, http.StatusNotFound, errors.New("palette "+strconv.Itoa(id)+" not found"))
		return themes.Palette{}, false
	}
	return p, true
}

// ListPalettesHandler serves GET /api/palettes
func ListPalettesHandler(c *gin.Context) {
	q, err := parsePaletteQuery(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	palettes := q.apply()
	c.JSON(http.StatusOK, gin.H{
		"palettes": palettes,
		"count":    len(palettes),
		"total":    themes.Count(),
	})
}

// GetPaletteHandler serves GET /api/palettes/:id
func GetPaletteHandler(c *gin.Context) {
	p, ok := lookupPalette(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, p)
}

// abortWithError answers {"error": "..."} with the given status
func abortWithError(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
