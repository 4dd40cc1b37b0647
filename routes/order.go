package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/controllers/order"
	"github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/middleware"
)

// SetupOrderRoutes registers the "/api/orders" endpoints. Checkout and
// confirmation are public; listing, status changes, deletion, export, and
// the live feed belong to the admin console.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/api/orders")
	{
		// Checkout submission
		orders.POST("", orderControllers.CreateOrderHandler(db))

		// Admin: all orders, newest first
		orders.GET("", middleware.ValidateAPIKey, orderControllers.ListOrdersHandler(db))

		// Admin: Excel export and real-time new-order feed
		orders.GET("/export-excel", middleware.ValidateAPIKey, orderControllers.ExportOrdersToExcel(db))
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Order confirmation / detail
		orders.GET("/:id", orderControllers.GetOrderHandler(db))

		// Admin: status transitions and deletion
		orders.PUT("/:id", middleware.ValidateAPIKey, orderControllers.UpdateOrderStatusHandler(db))
		orders.DELETE("/:id", middleware.ValidateAPIKey, orderControllers.DeleteOrderHandler(db))
	}
}
