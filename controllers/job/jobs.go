package jobControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/models"
)

type JobInput struct {
	Title        string `json:"title" binding:"required"`
	Company      string `json:"company" binding:"required"`
	Location     string `json:"location"`
	Type         string `json:"type"`
	SalaryRange  string `json:"salary_range"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	PostedBy     string `json:"posted_by"`
}

// GET /api/jobs
func GetJobs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var jobs []models.Job
		if err := db.
			Where("is_active = ?", true).
			Order("created_at DESC").
			Find(&jobs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch jobs"})
			return
		}
		c.JSON(http.StatusOK, jobs)
	}
}

// POST /api/jobs
func CreateJob(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input JobInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		now := time.Now()
		job := models.Job{
			ID:           uuid.NewString(),
			Title:        input.Title,
			Company:      input.Company,
			Location:     input.Location,
			Type:         input.Type,
			SalaryRange:  input.SalaryRange,
			Description:  input.Description,
			Requirements: input.Requirements,
			PostedBy:     input.PostedBy,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := db.Create(&job).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
			return
		}
		c.JSON(http.StatusCreated, job)
	}
}

// PUT /api/jobs/:id
func UpdateJob(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input JobInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.Job{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":        input.Title,
			"company":      input.Company,
			"location":     input.Location,
			"type":         input.Type,
			"salary_range": input.SalaryRange,
			"description":  input.Description,
			"requirements": input.Requirements,
			"updated_at":   time.Now(),
		})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}

		var job models.Job
		if err := db.First(&job, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated job"})
			return
		}
		c.JSON(http.StatusOK, job)
	}
}

// DELETE /api/jobs/:id
func DeleteJob(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Where("id = ?", id).Delete(&models.Job{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
