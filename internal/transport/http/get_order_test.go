package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/plutov/paypal/v4"

	"github.com/TrulyNimz/PayPal-Gateway-Api/internal/domain"
)

func TestHandleGetOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		method         string
		path           string
		order          *paypal.Order
		serviceErr     error
		expectedStatus int
		expectedSubstr string
		expectedCalls  int
	}{
		{
			name:           "raw order returned",
			method:         http.MethodGet,
			path:           "/api/orders/5O190127TN364715T",
			order:          &paypal.Order{ID: "5O190127TN364715T", Status: "APPROVED", Intent: "CAPTURE"},
			expectedStatus: http.StatusOK,
			expectedSubstr: `"intent":"CAPTURE"`,
			expectedCalls:  1,
		},
		{
			name:           "upstream failure surfaces detail",
			method:         http.MethodGet,
			path:           "/api/orders/missing",
			serviceErr:     &domain.UpstreamError{Op: "get order", Err: errors.New("RESOURCE_NOT_FOUND")},
			expectedStatus: http.StatusInternalServerError,
			expectedSubstr: `"error":"Failed to get order details"`,
			expectedCalls:  1,
		},
		{
			name:           "method not allowed",
			method:         http.MethodPost,
			path:           "/api/orders/5O190127TN364715T",
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "missing order id",
			method:         http.MethodGet,
			path:           "/api/orders/",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubOrderFetcher{
				order: tt.order,
				err:   tt.serviceErr,
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			HandleGetOrder(svc).ServeHTTP(rec, req)

			res := rec.Result()
			if res.StatusCode != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, res.StatusCode)
			}
			if tt.expectedSubstr != "" {
				body := rec.Body.String()
				if !strings.Contains(body, tt.expectedSubstr) {
					t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, body)
				}
			}
			if len(svc.orderIDs) != tt.expectedCalls {
				t.Fatalf("expected %d service calls, got %d", tt.expectedCalls, len(svc.orderIDs))
			}
		})
	}
}

func TestHandleOrderByID_Dispatch(t *testing.T) {
	t.Parallel()

	svc := &stubOrderProvider{
		stubOrderFetcher: stubOrderFetcher{
			order: &paypal.Order{ID: "order-1", Status: "CREATED"},
		},
		stubOrderCapturer: stubOrderCapturer{
			capture: &paypal.CaptureOrderResponse{ID: "order-1", Status: "COMPLETED"},
		},
	}
	handler := HandleOrderByID(svc)

	captureReq := httptest.NewRequest(http.MethodPost, "/api/orders/order-1/capture", nil)
	captureRec := httptest.NewRecorder()
	handler.ServeHTTP(captureRec, captureReq)

	if captureRec.Code != http.StatusOK {
		t.Fatalf("expected capture status 200, got %d", captureRec.Code)
	}
	if !strings.Contains(captureRec.Body.String(), `"status":"COMPLETED"`) {
		t.Fatalf("expected capture response, got %q", captureRec.Body.String())
	}

	detailReq := httptest.NewRequest(http.MethodGet, "/api/orders/order-1", nil)
	detailRec := httptest.NewRecorder()
	handler.ServeHTTP(detailRec, detailReq)

	if detailRec.Code != http.StatusOK {
		t.Fatalf("expected detail status 200, got %d", detailRec.Code)
	}
	if !strings.Contains(detailRec.Body.String(), `"status":"CREATED"`) {
		t.Fatalf("expected order detail, got %q", detailRec.Body.String())
	}

	if len(svc.stubOrderCapturer.orderIDs) != 1 {
		t.Fatalf("expected 1 capture call, got %d", len(svc.stubOrderCapturer.orderIDs))
	}
	if len(svc.stubOrderFetcher.orderIDs) != 1 {
		t.Fatalf("expected 1 detail call, got %d", len(svc.stubOrderFetcher.orderIDs))
	}
}

type stubOrderFetcher struct {
	order    *paypal.Order
	err      error
	orderIDs []string
}

func (s *stubOrderFetcher) GetOrder(_ context.Context, orderID string) (*paypal.Order, error) {
	s.orderIDs = append(s.orderIDs, orderID)
	return s.order, s.err
}

type stubOrderProvider struct {
	stubOrderFetcher
	stubOrderCapturer
}
