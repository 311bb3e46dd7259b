package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"size:255" json:"comment"`

	StylistID  uint `gorm:"not null;index" json:"stylist_id"`
	CustomerID uint `gorm:"not null;index" json:"customer_id"`

	CreatedAt time.Time `json:"created_at"`
}
