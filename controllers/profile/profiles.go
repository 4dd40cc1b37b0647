package profileControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BOT-ENGINEERS/mongol-tori-alumni-connect/models"
)

// UpdateProfileInput uses pointer fields so absent keys leave columns alone.
type UpdateProfileInput struct {
	FullName         *string `json:"full_name"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	PhotoURL         *string `json:"photo_url"`
	LinkedinURL      *string `json:"linkedin_url"`
	FacebookURL      *string `json:"facebook_url"`
	InstagramURL     *string `json:"instagram_url"`
	CurrentEducation *string `json:"current_education"`
	PastEducation    *string `json:"past_education"`
	Company          *string `json:"company"`
	Position         *string `json:"position"`
	Semester         *string `json:"semester"`
	TeamRole         *string `json:"team_role"`
	Bio              *string `json:"bio"`
	IsAlumni         *bool   `json:"is_alumni"`
	IsAdvisor        *bool   `json:"is_advisor"`
	UserType         *string `json:"user_type"`
}

// GET /api/profiles
func GetProfiles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var profiles []models.Profile
		if err := db.Order("created_at desc").Find(&profiles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profiles"})
			return
		}
		c.JSON(http.StatusOK, profiles)
	}
}

// PUT /api/profiles/:id
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var profile models.Profile
		if err := db.First(&profile, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
			return
		}

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.FullName != nil {
			updates["full_name"] = *input.FullName
		}
		if input.Email != nil {
			updates["email"] = *input.Email
		}
		if input.Phone != nil {
			updates["phone"] = *input.Phone
		}
		if input.PhotoURL != nil {
			updates["photo_url"] = *input.PhotoURL
		}
		if input.LinkedinURL != nil {
			updates["linkedin_url"] = *input.LinkedinURL
		}
		if input.FacebookURL != nil {
			updates["facebook_url"] = *input.FacebookURL
		}
		if input.InstagramURL != nil {
			updates["instagram_url"] = *input.InstagramURL
		}
		if input.CurrentEducation != nil {
			updates["current_education"] = *input.CurrentEducation
		}
		if input.PastEducation != nil {
			updates["past_education"] = *input.PastEducation
		}
		if input.Company != nil {
			updates["company"] = *input.Company
		}
		if input.Position != nil {
			updates["position"] = *input.Position
		}
		if input.Semester != nil {
			updates["semester"] = *input.Semester
		}
		if input.TeamRole != nil {
			updates["team_role"] = *input.TeamRole
		}
		if input.Bio != nil {
			updates["bio"] = *input.Bio
		}
		if input.IsAlumni != nil {
			updates["is_alumni"] = *input.IsAlumni
		}
		if input.IsAdvisor != nil {
			updates["is_advisor"] = *input.IsAdvisor
		}
		updates["updated_at"] = time.Now()

		if err := db.Model(&profile).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}

		// Keep the account type in sync when the admin reclassifies a member
		if input.UserType != nil {
			if err := db.Model(&models.User{}).Where("id = ?", profile.UserID).
				Update("user_type", *input.UserType).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user type"})
				return
			}
		}

		var updated models.Profile
		if err := db.First(&updated, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated profile"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /api/profiles/:id
func DeleteProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Where("id = ?", id).Delete(&models.Profile{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete profile"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
