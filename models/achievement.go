package models

import "time"

type Achievement struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // display date, free-form
	ImageURL    string `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}
