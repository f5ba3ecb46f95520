package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/plutov/paypal/v4"

	"github.com/TrulyNimz/PayPal-Gateway-Api/internal/domain"
)

// OrderCapturer is the minimal interface needed to capture an order.
type OrderCapturer interface {
	CaptureOrder(ctx context.Context, orderID string) (*paypal.CaptureOrderResponse, error)
}

// HandleCaptureOrder returns an HTTP handler for capturing approved orders.
// Every request is forwarded to the processor; there is no local
// duplicate-capture guard.
func HandleCaptureOrder(svc OrderCapturer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, ok := parseCaptureOrderPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, "not found", "")
			return
		}
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
			return
		}

		capture, err := svc.CaptureOrder(r.Context(), orderID)
		if err != nil {
			var upstream *domain.UpstreamError
			switch {
			case errors.Is(err, domain.ErrOrderIDRequired):
				writeError(w, http.StatusNotFound, "not found", "")
			case errors.As(err, &upstream):
				writeError(w, http.StatusInternalServerError, "Failed to capture order", upstream.Detail())
			default:
				writeError(w, http.StatusInternalServerError, "internal error", "")
			}
			return
		}

		writeJSON(w, http.StatusOK, captureOrderResponse{
			OrderID:       capture.ID,
			Status:        capture.Status,
			Payer:         capture.Payer,
			PurchaseUnits: capture.PurchaseUnits,
		})
	}
}

func parseCaptureOrderPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 4 {
		return "", false
	}
	if parts[0] != "api" || parts[1] != "orders" || parts[3] != "capture" {
		return "", false
	}
	if parts[2] == "" {
		return "", false
	}
	return parts[2], true
}

type captureOrderResponse struct {
	OrderID       string                        `json:"orderID"`
	Status        string                        `json:"status"`
	Payer         *paypal.PayerWithNameAndPhone `json:"payer"`
	PurchaseUnits []paypal.CapturedPurchaseUnit `json:"purchase_units"`
}
