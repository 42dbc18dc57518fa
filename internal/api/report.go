package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetReport handles the GET /report endpoint.
func (h *APIHandler) GetReport(c *gin.Context) {
	r := h.prober.Collect(c.Request.Context())
	c.JSON(http.StatusOK, r)
}

// GetSection handles the GET /report/sections/{name} endpoint. Section
// names are matched case-insensitively, with hyphens standing in for
// spaces (e.g. "disk-health").
func (h *APIHandler) GetSection(c *gin.Context) {
	name := sectionSlug(c.Param("name"))

	r := h.prober.Collect(c.Request.Context())
	for _, s := range r.Sections {
		if sectionSlug(s.Title) == name {
			c.JSON(http.StatusOK, s)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "unknown section: " + c.Param("name")})
}

func sectionSlug(title string) string {
	return strings.ToLower(strings.ReplaceAll(title, " ", "-"))
}
