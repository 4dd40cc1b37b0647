package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/models"
)

// -------- Request Structs --------

type OrderItemInput struct {
	ID       string  `json:"id" binding:"required"` // merchandise id
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	FullName string           `json:"fullName" binding:"required"`
	Email    string           `json:"email" binding:"required"`
	Phone    string           `json:"phone" binding:"required"`
	Address  string           `json:"address" binding:"required"`
	Items    []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	Total    float64          `json:"total"`
	Status   string           `json:"status"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusProcessing):
		return models.OrderStatusProcessing, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// decrementStockEnabled is the stock policy switch: when on, placing an
// order deducts merchandise stock inside the same transaction.
func decrementStockEnabled() bool {
	return strings.EqualFold(os.Getenv("DECREMENT_STOCK_ON_ORDER"), "true")
}

// -------- Core Logic --------

// CreateOrder persists the order header and one item row per line in a
// single transaction, so a mid-write failure never leaves a header with
// partial items. Quantities and prices are copied verbatim from the
// request: the service trusts the client-declared prices and total.
func CreateOrder(db *gorm.DB, req CreateOrderRequest) (*models.Order, error) {
	status := models.OrderStatusPending
	if req.Status != "" {
		mapped, err := mapOrderStatus(req.Status)
		if err != nil {
			return nil, err
		}
		status = mapped
	}

	now := time.Now()
	order := models.Order{
		ID:        uuid.NewString(),
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Total:     req.Total,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Item rows in the cart's line order
		for _, item := range req.Items {
			if decrementStockEnabled() {
				var merch models.Merchandise
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					First(&merch, "id = ?", item.ID).Error; err != nil {
					return err
				}
				if !merch.IsDigital {
					if merch.Stock < item.Quantity {
						return errors.New("insufficient stock for item: " + merch.Name)
					}
					merch.Stock -= item.Quantity
					if err := tx.Save(&merch).Error; err != nil {
						return err
					}
				}
			}

			orderItem := models.OrderItem{
				ID:            uuid.NewString(),
				OrderID:       order.ID,
				MerchandiseID: item.ID,
				Name:          item.Name,
				Quantity:      item.Quantity,
				Price:         item.Price,
				CreatedAt:     now,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Return the stored header without items, as the confirmation page
	// only needs the id, total, and status.
	var stored models.Order
	if err := db.First(&stored, "id = ?", order.ID).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// -------- Handlers --------

// POST /api/orders
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := CreateOrder(db, req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		broadcastNewOrder(*order)
		c.JSON(http.StatusOK, order)
	}
}

// GET /api/orders
func ListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:id
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var order models.Order
		if err := db.
			Preload("Items").
			First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /api/orders/:id
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", id).
			Updates(map[string]interface{}{"status": newStatus, "updated_at": time.Now()})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /api/orders/:id
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", id).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id = ?", id).
				Delete(&models.Order{}).Error; err != nil {
				return err
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Order %s deleted", id)})
	}
}
