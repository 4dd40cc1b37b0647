package newsControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/models"
)

type NewsInput struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content"`
	Source     string `json:"source"`
	SourceURL  string `json:"source_url"`
	ImageURL   string `json:"image_url"`
	IsExternal bool   `json:"is_external"`
}

// GET /api/news
func GetNews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var news []models.News
		if err := db.Order("published_at DESC").Find(&news).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
			return
		}
		c.JSON(http.StatusOK, news)
	}
}

// POST /api/news
func CreateNews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input NewsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		now := time.Now()
		item := models.News{
			ID:          uuid.NewString(),
			Title:       input.Title,
			Content:     input.Content,
			Source:      input.Source,
			SourceURL:   input.SourceURL,
			ImageURL:    input.ImageURL,
			IsExternal:  input.IsExternal,
			PublishedAt: now,
			CreatedAt:   now,
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create news"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /api/news/:id
func UpdateNews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input NewsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.News{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":       input.Title,
			"content":     input.Content,
			"source":      input.Source,
			"source_url":  input.SourceURL,
			"image_url":   input.ImageURL,
			"is_external": input.IsExternal,
		})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update news"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
			return
		}

		var item models.News
		if err := db.First(&item, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated news"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /api/news/:id
func DeleteNews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Where("id = ?", id).Delete(&models.News{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete news"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
