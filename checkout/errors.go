package checkout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyCart is returned when checkout is attempted with no cart lines.
// The UI keeps users off the checkout page with an empty cart, so hitting
// this is a caller bug, not a network failure.
var ErrEmptyCart = errors.New("checkout: cart is empty")

// ErrOrderNotFound is returned by the order client when the server reports
// that an order id does not exist.
var ErrOrderNotFound = errors.New("checkout: order not found")

// ValidationError reports the shipping form fields that were left empty.
// It is returned before any network call is made.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// SubmissionError reports a failed order submission. The cart is preserved
// so the user can retry.
type SubmissionError struct {
	StatusCode int
	Message    string
}

func (e *SubmissionError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("order submission failed (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("order submission failed (%d)", e.StatusCode)
}
