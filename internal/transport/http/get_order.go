package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/plutov/paypal/v4"

	"github.com/TrulyNimz/PayPal-Gateway-Api/internal/domain"
)

// OrderFetcher is the minimal interface needed to read an order.
type OrderFetcher interface {
	GetOrder(ctx context.Context, orderID string) (*paypal.Order, error)
}

// HandleGetOrder returns an HTTP handler that passes the processor's raw
// order object through to the caller.
func HandleGetOrder(svc OrderFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, ok := parseOrderDetailPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, "not found", "")
			return
		}
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
			return
		}

		order, err := svc.GetOrder(r.Context(), orderID)
		if err != nil {
			var upstream *domain.UpstreamError
			switch {
			case errors.Is(err, domain.ErrOrderIDRequired):
				writeError(w, http.StatusNotFound, "not found", "")
			case errors.As(err, &upstream):
				writeError(w, http.StatusInternalServerError, "Failed to get order details", upstream.Detail())
			default:
				writeError(w, http.StatusInternalServerError, "internal error", "")
			}
			return
		}

		writeJSON(w, http.StatusOK, order)
	}
}

func parseOrderDetailPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 {
		return "", false
	}
	if parts[0] != "api" || parts[1] != "orders" {
		return "", false
	}
	if parts[2] == "" {
		return "", false
	}
	return parts[2], true
}
