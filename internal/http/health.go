package http

import (
	"encoding/json"
	nethttp "net/http"
)

// HealthHandler reports liveness together with the number of catalog videos.
func HealthHandler(count func() int) nethttp.Handler {
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusOK)
		_ = json.NewEncoder(w).Encode(struct {
			Status string `json:"status"`
			Videos int    `json:"videos"`
		}{"ok", count()})
	})
}
