package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/TrulyNimz/PayPal-Gateway-Api/internal/app"
	"github.com/TrulyNimz/PayPal-Gateway-Api/internal/domain"
)

// OrderCreator is the minimal interface needed to create an order.
type OrderCreator interface {
	CreateOrder(ctx context.Context, in app.CreateOrderInput) (app.CreateOrderResult, error)
}

// OrderProvider covers the operations addressed by an order id.
type OrderProvider interface {
	OrderFetcher
	OrderCapturer
}

// HandleCreateOrder returns an HTTP handler for creating payment orders.
func HandleCreateOrder(svc OrderCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
			return
		}

		var req createOrderRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", "")
			return
		}

		res, err := svc.CreateOrder(r.Context(), app.CreateOrderInput{
			Amount:      req.Amount,
			Currency:    req.Currency,
			Description: req.Description,
		})
		if err != nil {
			var upstream *domain.UpstreamError
			switch {
			case errors.Is(err, domain.ErrInvalidAmount):
				writeError(w, http.StatusBadRequest, "Invalid amount", "")
			case errors.As(err, &upstream):
				writeError(w, http.StatusInternalServerError, "Failed to create order", upstream.Detail())
			default:
				writeError(w, http.StatusInternalServerError, "internal error", "")
			}
			return
		}

		writeJSON(w, http.StatusOK, createOrderResponse{
			OrderID: res.OrderID,
			Status:  res.Status,
		})
	}
}

// HandleOrderByID dispatches the /api/orders/{orderID} subtree: capture
// requests go to the capture handler, everything else is an order read.
func HandleOrderByID(svc OrderProvider) http.HandlerFunc {
	capture := HandleCaptureOrder(svc)
	detail := HandleGetOrder(svc)
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := parseCaptureOrderPath(r.URL.Path); ok {
			capture(w, r)
			return
		}
		detail(w, r)
	}
}

type createOrderRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
}

type createOrderResponse struct {
	OrderID string `json:"orderID"`
	Status  string `json:"status"`
}
