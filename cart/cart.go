// Package cart holds the client-side shopping cart: an immutable Cart value
// plus a Store that keeps the current value persisted between sessions.
package cart

// Line is one product selection in a cart.
type Line struct {
	ID       string  `json:"id"` // merchandise id
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}

// Cart is a value type: every mutation returns a new Cart with Total
// recomputed from the surviving lines, so Total can never drift.
type Cart struct {
	Items []Line  `json:"items"`
	Total float64 `json:"total"`
}

func build(items []Line) Cart {
	var total float64
	for _, l := range items {
		total += l.Price * float64(l.Quantity)
	}
	return Cart{Items: items, Total: total}
}

// Add merges by product id: an existing line gets its quantity incremented,
// otherwise the line is appended. Insertion order is preserved.
func (c Cart) Add(item Line) Cart {
	items := make([]Line, len(c.Items))
	copy(items, c.Items)

	merged := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}
	return build(items)
}

// Remove drops the line with the given product id. Unknown ids are a no-op.
func (c Cart) Remove(id string) Cart {
	items := make([]Line, 0, len(c.Items))
	for _, l := range c.Items {
		if l.ID != id {
			items = append(items, l)
		}
	}
	return build(items)
}

// UpdateQuantity sets the quantity of the matching line. Quantity <= 0
// removes the line. Unknown ids are a no-op.
func (c Cart) UpdateQuantity(id string, quantity int) Cart {
	if quantity <= 0 {
		return c.Remove(id)
	}
	items := make([]Line, len(c.Items))
	copy(items, c.Items)
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			break
		}
	}
	return build(items)
}

// Clear returns an empty cart.
func (c Cart) Clear() Cart {
	return Cart{}
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
