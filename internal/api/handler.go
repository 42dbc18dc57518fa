package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hwprobe/hwprobe/internal/report"
)

// Prober produces a hardware report on demand.
type Prober interface {
	Collect(ctx context.Context) *report.Report
}

// APIHandler serves the hardware report over HTTP.
type APIHandler struct {
	prober Prober
}

// NewAPIHandler creates an APIHandler backed by the given prober.
func NewAPIHandler(p Prober) *APIHandler {
	return &APIHandler{prober: p}
}

// Health handles the GET /health endpoint.
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
