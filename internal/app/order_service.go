package app

import (
	"context"

	"github.com/plutov/paypal/v4"
	"github.com/shopspring/decimal"

	"github.com/TrulyNimz/PayPal-Gateway-Api/internal/config"
	"github.com/TrulyNimz/PayPal-Gateway-Api/internal/domain"
)

const brandName = "Your Business Name"

// Processor is the slice of the PayPal SDK the gateway uses.
// *paypal.Client satisfies it.
type Processor interface {
	CreateOrder(ctx context.Context, intent string, purchaseUnits []paypal.PurchaseUnitRequest, payer *paypal.CreateOrderPayer, appContext *paypal.ApplicationContext) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID string, captureOrderRequest paypal.CaptureOrderRequest) (*paypal.CaptureOrderResponse, error)
	GetOrder(ctx context.Context, orderID string) (*paypal.Order, error)
}

// OrderService proxies order operations to the payment processor. It holds
// no state beyond the immutable client handle and configuration, so a single
// instance is shared across requests.
type OrderService struct {
	processor Processor
	cfg       config.Config
}

func NewOrderService(processor Processor, cfg config.Config) *OrderService {
	return &OrderService{
		processor: processor,
		cfg:       cfg,
	}
}

type CreateOrderInput struct {
	Amount      decimal.Decimal
	Currency    string
	Description string
}

type CreateOrderResult struct {
	OrderID string
	Status  string
}

// CreateOrder builds a CAPTURE-intent order with a single purchase unit and
// executes it against the processor. The amount must be positive; currency
// and description fall back to defaults and are otherwise uninterpreted.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (CreateOrderResult, error) {
	pending, err := domain.NewOrder(in.Amount, in.Currency, in.Description)
	if err != nil {
		return CreateOrderResult{}, err
	}

	units := []paypal.PurchaseUnitRequest{
		{
			Amount: &paypal.PurchaseUnitAmount{
				Currency: pending.Currency,
				Value:    pending.WireAmount(),
			},
			Description: pending.Description,
		},
	}
	appContext := &paypal.ApplicationContext{
		BrandName:   brandName,
		LandingPage: "NO_PREFERENCE",
		UserAction:  "PAY_NOW",
		ReturnURL:   s.cfg.ReturnURL(),
		CancelURL:   s.cfg.CancelURL(),
	}

	order, err := s.processor.CreateOrder(ctx, paypal.OrderIntentCapture, units, nil, appContext)
	if err != nil {
		return CreateOrderResult{}, &domain.UpstreamError{Op: "create order", Err: err}
	}

	return CreateOrderResult{
		OrderID: order.ID,
		Status:  order.Status,
	}, nil
}

// CaptureOrder finalizes fund transfer for an approved order. Every call is
// forwarded as-is; the processor's own idempotency behavior is the only
// duplicate-capture guard.
func (s *OrderService) CaptureOrder(ctx context.Context, orderID string) (*paypal.CaptureOrderResponse, error) {
	if orderID == "" {
		return nil, domain.ErrOrderIDRequired
	}

	capture, err := s.processor.CaptureOrder(ctx, orderID, paypal.CaptureOrderRequest{})
	if err != nil {
		return nil, &domain.UpstreamError{Op: "capture order", Err: err}
	}
	return capture, nil
}

// GetOrder reads the current order state from the processor, unmodified.
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*paypal.Order, error) {
	if orderID == "" {
		return nil, domain.ErrOrderIDRequired
	}

	order, err := s.processor.GetOrder(ctx, orderID)
	if err != nil {
		return nil, &domain.UpstreamError{Op: "get order", Err: err}
	}
	return order, nil
}
