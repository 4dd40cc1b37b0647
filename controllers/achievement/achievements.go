package achievementControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/models"
)

type AchievementInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date"`
	ImageURL    string `json:"image_url"`
}

// GET /api/achievements
func GetAchievements(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var achievements []models.Achievement
		if err := db.Order("date DESC").Find(&achievements).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch achievements"})
			return
		}
		c.JSON(http.StatusOK, achievements)
	}
}

// POST /api/achievements
func CreateAchievement(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AchievementInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		achievement := models.Achievement{
			ID:          uuid.NewString(),
			Title:       input.Title,
			Description: input.Description,
			Date:        input.Date,
			ImageURL:    input.ImageURL,
			CreatedAt:   time.Now(),
		}
		if err := db.Create(&achievement).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create achievement"})
			return
		}
		c.JSON(http.StatusCreated, achievement)
	}
}

// PUT /api/achievements/:id
func UpdateAchievement(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input AchievementInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.Achievement{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":       input.Title,
			"description": input.Description,
			"date":        input.Date,
			"image_url":   input.ImageURL,
		})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update achievement"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Achievement not found"})
			return
		}

		var achievement models.Achievement
		if err := db.First(&achievement, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated achievement"})
			return
		}
		c.JSON(http.StatusOK, achievement)
	}
}

// DELETE /api/achievements/:id
func DeleteAchievement(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Where("id = ?", id).Delete(&models.Achievement{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete achievement"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Achievement not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
