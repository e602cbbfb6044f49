package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JaimeStill/tool-server/internal/loader"
	"github.com/JaimeStill/tool-server/pkg/toolkit"
)

type toolStatus struct {
	Tool   string `json:"tool"`
	Prefix string `json:"prefix,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// registerRoutes configures the fixed routes on the host router: the root
// health check and the tool registration report.
func registerRoutes(host chi.Router, report *loader.Report) {
	host.Get("/", handleHealthCheck)
	host.Get("/tools", handleToolReport(report))
}

// handleHealthCheck responds with a static acknowledgement payload.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	toolkit.Respond(w, http.StatusOK, map[string]string{
		"message": "Tool Server Running",
	})
}

// handleToolReport exposes the startup registration report.
func handleToolReport(report *loader.Report) http.HandlerFunc {
	statuses := make([]toolStatus, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		status := toolStatus{
			Tool:   o.Identifier,
			Prefix: o.Prefix,
			Status: string(o.Status),
		}
		if o.Err != nil {
			status.Error = o.Err.Error()
		}
		statuses = append(statuses, status)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		toolkit.Respond(w, http.StatusOK, statuses)
	}
}
