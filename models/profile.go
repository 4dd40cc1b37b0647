package models

import "time"

// Profile is the public directory entry for a member. One per user.
type Profile struct {
	ID               string `gorm:"primaryKey" json:"id"`
	UserID           string `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName         string `gorm:"not null" json:"full_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	PhotoURL         string `json:"photo_url"`
	LinkedinURL      string `json:"linkedin_url"`
	FacebookURL      string `json:"facebook_url"`
	InstagramURL     string `json:"instagram_url"`
	CurrentEducation string `json:"current_education"`
	PastEducation    string `json:"past_education"`
	Company          string `json:"company"`
	Position         string `json:"position"`
	Semester         string `json:"semester"`
	TeamRole         string `json:"team_role"`
	Bio              string `json:"bio"`
	IsAlumni         bool   `json:"is_alumni"`
	IsAdvisor        bool   `json:"is_advisor"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
