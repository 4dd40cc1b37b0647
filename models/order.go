package models

import "time"

type OrderStatus string

const (
	// Order statuses (merch shop flow)
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting confirmation
	OrderStatusProcessing OrderStatus = "processing" // Being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the item
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled before shipping
)

type Order struct {
	ID        string      `gorm:"primaryKey" json:"id"`
	FullName  string      `gorm:"not null" json:"full_name"`
	Email     string      `gorm:"not null" json:"email"`
	Phone     string      `json:"phone"`
	Address   string      `json:"address"` // flattened shipping address
	Total     float64     `json:"total"`
	Status    OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID            string  `gorm:"primaryKey" json:"id"`
	OrderID       string  `gorm:"index" json:"order_id"`
	MerchandiseID string  `json:"merchandise_id"`
	Name          string  `json:"name"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"` // unit price at purchase time, not a catalog reference
	CreatedAt     time.Time `json:"created_at"`
}
