// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xilkadim/brandkit/internal/export"
)

var exportsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "brandkit_exports_total",
		Help: "Total number of palette exports served, by format.",
	},
	[]string{"format"},
)

func init() {
	prometheus.MustRegister(exportsTotal)
}

// ExportPaletteHandler serves GET /api/palettes/:id/export/:format as a file download
func ExportPaletteHandler(c *gin.Context) {
	p, ok := lookupPalette(c)
	if !ok {
		return
	}

	format, err := export.ParseFormat(c.Param("format"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest,
			fmt.Errorf("%w (valid: %s)", err, strings.Join(export.IDs(), ", ")))
		return
	}

	body, err := export.Render(format, p)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}

	exportsTotal.WithLabelValues(format.String()).Inc()

	c.Header("Content-Disposition", attachment(export.FileName(format, p)))
	c.Data(http.StatusOK, format.ContentType()+"; charset=utf-8", []byte(body))
}

// attachment builds a Content-Disposition value. Quotes are escaped and
// non-ASCII names use the RFC 2231 filename* form.
func attachment(filename string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return "attachment"
}

type formatInfo struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Extension   string `json:"extension"`
	ContentType string `json:"contentType"`
}

// FormatsHandler serves GET /api/formats
func FormatsHandler(c *gin.Context) {
	formats := export.Formats()
	out := make([]formatInfo, 0, len(formats))
	for _, f := range formats {
		out = append(out, formatInfo{
			ID:          f.String(),
			Label:       f.Label(),
			Description: f.Description(),
			Extension:   f.Suffix(),
			ContentType: f.ContentType(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"formats": out})
}
