package merchControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/models"
)

type MerchandiseInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,min=0"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
	IsDigital   bool    `json:"is_digital"`
	Stock       int     `json:"stock"`
	IsActive    *bool   `json:"is_active"`
}

// GET /api/merchandise
func GetMerchandise(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.Merchandise
		if err := db.Where("is_active = ?", true).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch merchandise"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GET /api/merchandise/:id
func GetMerchandiseByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var item models.Merchandise
		if err := db.First(&item, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Merchandise not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch merchandise"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// POST /api/merchandise
func CreateMerchandise(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MerchandiseInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		item := models.Merchandise{
			ID:          uuid.NewString(),
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			ImageURL:    input.ImageURL,
			Category:    input.Category,
			IsDigital:   input.IsDigital,
			Stock:       input.Stock,
			IsActive:    true,
			CreatedAt:   time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create merchandise"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /api/merchandise/:id
func UpdateMerchandise(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input MerchandiseInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := map[string]interface{}{
			"name":        input.Name,
			"description": input.Description,
			"price":       input.Price,
			"image_url":   input.ImageURL,
			"category":    input.Category,
			"is_digital":  input.IsDigital,
			"stock":       input.Stock,
		}
		if input.IsActive != nil {
			updates["is_active"] = *input.IsActive
		}

		result := db.Model(&models.Merchandise{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update merchandise"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Merchandise not found"})
			return
		}

		var item models.Merchandise
		if err := db.First(&item, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated merchandise"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /api/merchandise/:id
func DeleteMerchandise(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Where("id = ?", id).Delete(&models.Merchandise{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete merchandise"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Merchandise not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
