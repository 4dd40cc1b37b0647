// Package checkout orchestrates the transition from cart to submitted order:
// validate the shipping form, POST the cart snapshot to the order service,
// and clear the cart once the server confirms.
package checkout

import (
	"context"
	"fmt"

	"github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/cart"
	"github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/models"
)

// ShippingAddress is the checkout form. Every field is required.
type ShippingAddress struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Flatten renders the address as the single display string stored on the
// order: "{street}, {city}, {state} {postalCode}, {country}".
func (a ShippingAddress) Flatten() string {
	return fmt.Sprintf("%s, %s, %s %s, %s", a.Street, a.City, a.State, a.PostalCode, a.Country)
}

func (a ShippingAddress) missingFields() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"fullName", a.FullName},
		{"email", a.Email},
		{"phone", a.Phone},
		{"street", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"postalCode", a.PostalCode},
		{"country", a.Country},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Coordinator drives one checkout flow over a cart store and the order
// service. It is single-writer like the store it wraps.
type Coordinator struct {
	store  *cart.Store
	orders OrderService
	state  State
}

func NewCoordinator(store *cart.Store, orders OrderService) *Coordinator {
	return &Coordinator{store: store, orders: orders, state: StateIdle}
}

// State reports where the current checkout attempt stands.
func (co *Coordinator) State() State {
	return co.state
}

// SubmitOrder validates the address, submits the cart snapshot, and on
// success clears the cart and returns the stored order. On any failure the
// cart is left untouched so the user can retry. Retrying after a partial
// server-side success creates a second order: there is no idempotency key.
func (co *Coordinator) SubmitOrder(ctx context.Context, address ShippingAddress) (*models.Order, error) {
	snapshot := co.store.Snapshot()
	if snapshot.IsEmpty() {
		return nil, ErrEmptyCart
	}

	co.state = StateValidating
	if missing := address.missingFields(); len(missing) > 0 {
		co.state = StateFailed
		return nil, &ValidationError{Missing: missing}
	}

	co.state = StateSubmitting
	payload := OrderPayload{
		FullName: address.FullName,
		Email:    address.Email,
		Phone:    address.Phone,
		Address:  address.Flatten(),
		Items:    snapshot.Items,
		Total:    snapshot.Total,
		Status:   string(models.OrderStatusPending),
	}

	order, err := co.orders.CreateOrder(ctx, payload)
	if err != nil {
		co.state = StateFailed
		return nil, err
	}
	if order.ID == "" {
		co.state = StateFailed
		return nil, &SubmissionError{Message: "server returned an order without an id"}
	}

	co.state = StateConfirmed
	co.store.Clear()
	return order, nil
}
