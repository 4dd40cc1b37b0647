package models

import "time"

type Merchandise struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
	IsDigital   bool    `gorm:"default:false" json:"is_digital"`
	Stock       int     `gorm:"default:0" json:"stock"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
