package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/beautyparlour/parlour-api/internal/dto"
	"github.com/beautyparlour/parlour-api/internal/httperr"
	"github.com/beautyparlour/parlour-api/internal/httpresp"
	"github.com/beautyparlour/parlour-api/internal/middleware"
	"github.com/beautyparlour/parlour-api/internal/models"
)

type PaymentHandler struct {
	db *gorm.DB
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{db: db}
}

type CreatePaymentRequest struct {
	Amount        *float64 `json:"amount" binding:"required"`
	Method        string   `json:"method" binding:"required"`
	TransactionID *string  `json:"transaction_id"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func validPaymentMethod(method string) bool {
	switch method {
	case models.PaymentMethodMpesa, models.PaymentMethodCard,
		models.PaymentMethodPaypal, models.PaymentMethodCash:
		return true
	}
	return false
}

// CreateForBooking records a payment against a booking owned by the caller.
// A booking can carry at most one payment; the unique index on booking_id
// backs this up under concurrent requests.
func (h *PaymentHandler) CreateForBooking(c *gin.Context) {
	bookingID, ok := parseIDParam(c, "Invalid booking ID")
	if !ok {
		return
	}

	callerID := c.MustGet(middleware.ContextCustomerID).(uint)

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	if *req.Amount <= 0 {
		httperr.BadRequest(c, "Amount must be positive")
		return
	}
	method := strings.ToLower(req.Method)
	if !validPaymentMethod(method) {
		httperr.BadRequest(c, "Unsupported payment method")
		return
	}

	var booking models.Booking
	if err := h.db.First(&booking, bookingID).Error; err != nil {
		httperr.NotFound(c, "Booking not found")
		return
	}

	var caller models.Customer
	if err := h.db.First(&caller, callerID).Error; err != nil {
		httperr.Unauthorized(c, "Customer not found")
		return
	}
	if booking.CustomerID != caller.ID && !caller.IsAdmin {
		httperr.Forbidden(c, "You can only pay for your own bookings")
		return
	}

	var count int64
	h.db.Model(&models.Payment{}).Where("booking_id = ?", booking.ID).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "Booking already has a payment")
		return
	}

	txid := req.TransactionID
	if txid == nil {
		generated := uuid.NewString()
		txid = &generated
	}

	payment := models.Payment{
		Amount:        *req.Amount,
		Method:        method,
		Status:        models.PaymentStatusPending,
		TransactionID: txid,
		CustomerID:    booking.CustomerID,
		BookingID:     &booking.ID,
	}

	if err := h.db.Create(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "Transaction ID already recorded")
			return
		}
		httperr.Internal(c, "Failed to record payment")
		return
	}

	c.JSON(201, dto.ToPaymentView(&payment))
}

func (h *PaymentHandler) ListOwn(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextCustomerID).(uint)

	var payments []models.Payment
	if err := h.db.Where("customer_id = ?", callerID).Order("id ASC").Find(&payments).Error; err != nil {
		httperr.Internal(c, "Failed to list payments")
		return
	}

	views := make([]dto.PaymentView, 0, len(payments))
	for i := range payments {
		views = append(views, dto.ToPaymentView(&payments[i]))
	}
	httpresp.List(c, views)
}

// UpdateStatus moves a payment through its settlement states. Only
// pending payments can settle or fail, and only successful ones refund.
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid payment ID")
	if !ok {
		return
	}

	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	var payment models.Payment
	if err := h.db.First(&payment, id).Error; err != nil {
		httperr.NotFound(c, "Payment not found")
		return
	}

	next := strings.ToLower(req.Status)
	allowed := false
	switch payment.Status {
	case models.PaymentStatusPending:
		allowed = next == models.PaymentStatusSuccessful || next == models.PaymentStatusFailed
	case models.PaymentStatusSuccessful:
		allowed = next == models.PaymentStatusRefunded
	}
	if !allowed {
		httperr.BadRequest(c, "Cannot move a "+payment.Status+" payment to "+next)
		return
	}

	payment.Status = next
	if err := h.db.Omit(clause.Associations).Save(&payment).Error; err != nil {
		httperr.Internal(c, "Failed to update payment")
		return
	}

	c.JSON(200, dto.ToPaymentView(&payment))
}
