package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/api/response"
)

// ServiceInfo describes the running service for the root endpoint.
type ServiceInfo struct {
	Name    string
	Version string
	Env     string
}

// NewRootHandler returns the service metadata handler for GET /.
func NewRootHandler(info ServiceInfo) http.HandlerFunc {
	body := map[string]any{
		"name":    info.Name,
		"version": info.Version,
		"env":     info.Env,
		"status":  "ok",
		"endpoints": []string{
			"GET /health",
			"POST /analyze",
			"GET /api/analysis/status/{id}",
			"GET /analysis/{id}",
			"GET /api/analysis/report/{id}",
			"GET /test-report",
			"GET /metrics",
		},
	}
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, body)
	}
}

// NewHealthHandler returns the liveness probe handler for GET /health.
func NewHealthHandler(startedAt time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		response.JSON(w, http.StatusOK, map[string]any{
			"status":        "ok",
			"timestamp":     time.Now().UTC().Format(time.RFC3339),
			"uptimeSeconds": int(time.Since(startedAt).Seconds()),
			"memoryMB":      mem.Alloc / (1 << 20),
		})
	}
}
