package models

import "time"

type Job struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Company     string `gorm:"not null" json:"company"`
	Location    string `json:"location"`
	Type        string `json:"type"` // e.g. "full-time", "internship"
	SalaryRange string `json:"salary_range"`
	Description string `json:"description"`
	Requirements string `json:"requirements"`
	PostedBy    string `json:"posted_by"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
