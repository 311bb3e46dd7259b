package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Message string `gorm:"size:255;not null" json:"message"`
	Type    string `gorm:"size:50;not null" json:"type"`
	Status  string `gorm:"size:20;default:'unread'" json:"status"`

	CustomerID uint  `gorm:"not null;index" json:"customer_id"`
	BookingID  *uint `gorm:"index" json:"booking_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	NotificationTypeReminder = "reminder"
	NotificationTypeOffer    = "offer"
	NotificationTypeSystem   = "system"
)

const (
	NotificationStatusUnread = "unread"
	NotificationStatusRead   = "read"
	NotificationStatusSent   = "sent"
)
