package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TrulyNimz/PayPal-Gateway-Api/internal/config"
)

func TestHandleHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		mode         config.Mode
		expectedMode string
	}{
		{name: "sandbox", mode: config.ModeSandbox, expectedMode: "sandbox"},
		{name: "live", mode: config.ModeLive, expectedMode: "live"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			rec := httptest.NewRecorder()

			HandleHealth(tt.mode).ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", rec.Code)
			}

			var resp healthResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Status != "OK" {
				t.Fatalf("expected status OK, got %s", resp.Status)
			}
			if resp.Mode != tt.expectedMode {
				t.Fatalf("expected mode %s, got %s", tt.expectedMode, resp.Mode)
			}
		})
	}
}

func TestHandleHealth_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	rec := httptest.NewRecorder()

	HandleHealth(config.ModeSandbox).ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}
