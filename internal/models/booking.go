package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentTime time.Time `gorm:"not null" json:"appointment_time"`
	Status          string    `gorm:"size:20;default:'pending'" json:"status"`

	CustomerID uint     `gorm:"not null;index" json:"customer_id"`
	Customer   Customer `json:"customer"`

	StylistID uint    `gorm:"not null;index" json:"stylist_id"`
	Stylist   Stylist `json:"stylist"`

	ServiceID uint    `gorm:"not null;index" json:"service_id"`
	Service   Service `json:"service"`

	// Payments outlive a deleted booking; the store clears the reference.
	Payment       *Payment       `gorm:"constraint:OnDelete:SET NULL;" json:"payment,omitempty"`
	Notifications []Notification `gorm:"constraint:OnDelete:CASCADE;" json:"notifications,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
