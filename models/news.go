package models

import "time"

type News struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Content     string `json:"content"`
	Source      string `json:"source"`
	SourceURL   string `json:"source_url"`
	ImageURL    string `json:"image_url"`
	IsExternal  bool   `gorm:"default:false" json:"is_external"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
}
