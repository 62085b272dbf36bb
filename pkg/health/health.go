package health

import (
	"encoding/json"
	"net/http"
)

// StatusOK is the status reported by the liveness probe.
const StatusOK = "ok"

// Response represents a health check response.
type Response struct {
	Status string `json:"status"`
}

// LivenessHandler returns an http.HandlerFunc that always responds with
// {"status":"ok"}. Use it for load balancer and orchestrator liveness probes
// to indicate the process is running.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(Response{Status: StatusOK})
	}
}
