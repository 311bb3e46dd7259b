package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Amount float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	Method string  `gorm:"size:50;not null" json:"method"`
	Status string  `gorm:"size:20;default:'pending'" json:"status"`

	// Nullable so cash walk-ins without a gateway reference stay valid.
	TransactionID *string `gorm:"size:120;uniqueIndex" json:"transaction_id"`

	CustomerID uint  `gorm:"not null;index" json:"customer_id"`
	BookingID  *uint `gorm:"uniqueIndex" json:"booking_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	PaymentMethodMpesa  = "mpesa"
	PaymentMethodCard   = "card"
	PaymentMethodPaypal = "paypal"
	PaymentMethodCash   = "cash"
)

const (
	PaymentStatusPending    = "pending"
	PaymentStatusSuccessful = "successful"
	PaymentStatusFailed     = "failed"
	PaymentStatusRefunded   = "refunded"
)
