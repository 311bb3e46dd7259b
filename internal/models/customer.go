package models

import "time"

type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Phone        string `gorm:"size:120;uniqueIndex;not null" json:"phone"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	IsAdmin      bool   `gorm:"default:false" json:"is_admin"`

	Bookings      []Booking      `gorm:"constraint:OnDelete:CASCADE;" json:"bookings,omitempty"`
	Payments      []Payment      `gorm:"constraint:OnDelete:CASCADE;" json:"payments,omitempty"`
	Notifications []Notification `gorm:"constraint:OnDelete:CASCADE;" json:"notifications,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
