package http

import (
	"net/http"

	"github.com/TrulyNimz/PayPal-Gateway-Api/internal/config"
)

type healthResponse struct {
	Status string `json:"status"`
	Mode   string `json:"mode"`
}

// HandleHealth reports liveness and the configured PayPal mode. It never
// calls upstream.
func HandleHealth(mode config.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
			return
		}
		writeJSON(w, http.StatusOK, healthResponse{
			Status: "OK",
			Mode:   string(mode),
		})
	}
}
