package hc

import (
	"encoding/json"
	"net/http"
	"time"
)

func Handler(version, mode string) http.Handler {
	t := time.Now()
	fn := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":    "ok",
			"message":   "demo wallet api",
			"timestamp": time.Now().Format(time.RFC3339),
			"mode":      mode,
			"version":   version,
			"uptime":    time.Since(t).String(),
		})
	}

	return http.HandlerFunc(fn)
}
