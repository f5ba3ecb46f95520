package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrOrderIDRequired = errors.New("order id required")
)

// UpstreamError wraps a failure returned by the payment processor's SDK.
// The gateway does not distinguish transient from permanent upstream
// failures; the original detail is carried through for the response body.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Detail is the processor-reported failure text, without the operation prefix.
func (e *UpstreamError) Detail() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}
