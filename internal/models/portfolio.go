package models

import "time"

type Portfolio struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ImageURL    string `gorm:"size:255;not null" json:"image_url"`
	Description string `gorm:"size:255" json:"description"`

	StylistID uint `gorm:"not null;index" json:"stylist_id"`

	CreatedAt time.Time `json:"created_at"`
}
