package models

import "time"

// Offering is the stylist<->service join table. The composite primary key
// guarantees a given pair exists at most once.
type Offering struct {
	StylistID uint `gorm:"primaryKey;autoIncrement:false" json:"stylist_id"`
	ServiceID uint `gorm:"primaryKey;autoIncrement:false" json:"service_id"`

	CreatedAt time.Time `json:"created_at"`
}

func (Offering) TableName() string {
	return "offerings"
}
