package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	achievementControllers "github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/controllers/achievement"
	jobControllers "github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/controllers/job"
	merchControllers "github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/controllers/merch"
	newsControllers "github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/controllers/news"
	profileControllers "github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/controllers/profile"
	"github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/middleware"
)

// SetupPublicRoutes registers the read-only site content endpoints.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, limiter *middleware.RateLimiter) {
	api := r.Group("/api")
	api.Use(limiter.Limit)
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "Server is running"})
		})

		api.GET("/profiles", profileControllers.GetProfiles(db))
		api.GET("/jobs", jobControllers.GetJobs(db))
		api.GET("/news", newsControllers.GetNews(db))
		api.GET("/achievements", achievementControllers.GetAchievements(db))
		api.GET("/merchandise", merchControllers.GetMerchandise(db))
		api.GET("/merchandise/:id", merchControllers.GetMerchandiseByID(db))
	}
}
