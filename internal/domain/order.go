package domain

import "github.com/shopspring/decimal"

// OrderStatus mirrors the processor-side lifecycle of a payment order.
type OrderStatus string

const (
	OrderStatusCreated  OrderStatus = "CREATED"
	OrderStatusApproved OrderStatus = "APPROVED"
	OrderStatusCaptured OrderStatus = "CAPTURED"
)

const (
	DefaultCurrency    = "USD"
	DefaultDescription = "Purchase"
)

// Order is a processor-tracked payment intent. It is never persisted; its
// identity round-trips through the browser between create and capture.
type Order struct {
	ID          string
	Amount      decimal.Decimal
	Currency    string
	Description string
	Status      OrderStatus
}

// NewOrder validates and normalizes checkout input into an order ready to be
// created at the processor. The amount must be positive; currency and
// description default when absent and are otherwise uninterpreted.
func NewOrder(amount decimal.Decimal, currency, description string) (Order, error) {
	if !amount.IsPositive() {
		return Order{}, ErrInvalidAmount
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	if description == "" {
		description = DefaultDescription
	}
	return Order{
		Amount:      amount,
		Currency:    currency,
		Description: description,
		Status:      OrderStatusCreated,
	}, nil
}

// WireAmount is the amount as the processor expects it, fixed to two
// decimal places.
func (o Order) WireAmount() string {
	return o.Amount.StringFixed(2)
}
