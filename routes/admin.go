package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	achievementControllers "github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/controllers/achievement"
	jobControllers "github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/controllers/job"
	merchControllers "github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/controllers/merch"
	newsControllers "github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/controllers/news"
	profileControllers "github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/controllers/profile"
	"github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/middleware"
)

// SetupAdminRoutes registers the mutating admin endpoints. Requires the
// admin API key.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	api.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Member Directory ───────────
		api.PUT("/profiles/:id", profileControllers.UpdateProfile(db))
		api.DELETE("/profiles/:id", profileControllers.DeleteProfile(db))

		// ─────────── Job Board ───────────
		api.POST("/jobs", jobControllers.CreateJob(db))
		api.PUT("/jobs/:id", jobControllers.UpdateJob(db))
		api.DELETE("/jobs/:id", jobControllers.DeleteJob(db))

		// ─────────── News ───────────
		api.POST("/news", newsControllers.CreateNews(db))
		api.PUT("/news/:id", newsControllers.UpdateNews(db))
		api.DELETE("/news/:id", newsControllers.DeleteNews(db))

		// ─────────── Achievements ───────────
		api.POST("/achievements", achievementControllers.CreateAchievement(db))
		api.PUT("/achievements/:id", achievementControllers.UpdateAchievement(db))
		api.DELETE("/achievements/:id", achievementControllers.DeleteAchievement(db))

		// ─────────── Merchandise Catalog ───────────
		api.POST("/merchandise", merchControllers.CreateMerchandise(db))
		api.PUT("/merchandise/:id", merchControllers.UpdateMerchandise(db))
		api.DELETE("/merchandise/:id", merchControllers.DeleteMerchandise(db))
	}
}
