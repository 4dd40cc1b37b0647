package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/controllers/auth"
	"github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/middleware"
)

// SetupAuthRoutes registers the "/api/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, limiter *middleware.RateLimiter) {
	authGroup := r.Group("/api/auth")
	authGroup.Use(limiter.Limit)
	{
		authGroup.POST("/signup", authControllers.SignupHandler(db))
		authGroup.POST("/signin", authControllers.SigninHandler(db))
		authGroup.GET("/me", middleware.ValidateToken, authControllers.MeHandler(db))
	}
}
