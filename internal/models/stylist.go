package models

import "time"

type Stylist struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:100;not null" json:"name"`
	Bio  string `gorm:"size:255" json:"bio"`

	Services  []Service   `gorm:"many2many:offerings;" json:"services,omitempty"`
	Bookings  []Booking   `gorm:"constraint:OnDelete:CASCADE;" json:"bookings,omitempty"`
	Portfolio []Portfolio `gorm:"constraint:OnDelete:CASCADE;" json:"portfolio,omitempty"`
	Reviews   []Review    `gorm:"constraint:OnDelete:CASCADE;" json:"reviews,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
