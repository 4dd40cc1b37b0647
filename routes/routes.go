package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/middleware"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	limiter := middleware.NewRateLimiter(10, 20)

	// Public auth routes
	SetupAuthRoutes(r, db, limiter)

	// Public site content (directory, jobs, news, shop)
	SetupPublicRoutes(r, db, limiter)

	// Admin console (API-key protected)
	SetupAdminRoutes(r, db)

	// Order routes (checkout + admin)
	SetupOrderRoutes(r, db)
}
