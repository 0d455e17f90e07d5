package handlers

import (
	"net/http"

	"github.com/musicapi-dashboard/backend/internal/api/response"
	"github.com/musicapi-dashboard/backend/internal/probe"
)

// MonitorHandler exposes the external music-lookup probe
type MonitorHandler struct {
	prober *probe.MonitorProber
}

// NewMonitorHandler creates a new monitor handler
func NewMonitorHandler(prober *probe.MonitorProber) *MonitorHandler {
	return &MonitorHandler{prober: prober}
}

// External handles GET /api/monitor/external. The probe runs once,
// synchronously; its failure is a classification, never an error.
func (h *MonitorHandler) External(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.prober.Probe(r.Context()))
}
