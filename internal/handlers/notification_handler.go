package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/beautyparlour/parlour-api/internal/dto"
	"github.com/beautyparlour/parlour-api/internal/httperr"
	"github.com/beautyparlour/parlour-api/internal/httpresp"
	"github.com/beautyparlour/parlour-api/internal/middleware"
	"github.com/beautyparlour/parlour-api/internal/models"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

type CreateNotificationRequest struct {
	CustomerID uint   `json:"customer_id" binding:"required"`
	Message    string `json:"message" binding:"required"`
	Type       string `json:"type" binding:"required"`
	BookingID  *uint  `json:"booking_id"`
}

func (h *NotificationHandler) ListOwn(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextCustomerID).(uint)

	var notifications []models.Notification
	if err := h.db.Where("customer_id = ?", callerID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		httperr.Internal(c, "Failed to list notifications")
		return
	}

	views := make([]dto.NotificationView, 0, len(notifications))
	for i := range notifications {
		views = append(views, dto.ToNotificationView(&notifications[i]))
	}
	httpresp.List(c, views)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid notification ID")
	if !ok {
		return
	}

	callerID := c.MustGet(middleware.ContextCustomerID).(uint)

	var notification models.Notification
	if err := h.db.First(&notification, id).Error; err != nil {
		httperr.NotFound(c, "Notification not found")
		return
	}
	if notification.CustomerID != callerID {
		httperr.Forbidden(c, "You can only read your own notifications")
		return
	}

	notification.Status = models.NotificationStatusRead
	if err := h.db.Omit(clause.Associations).Save(&notification).Error; err != nil {
		httperr.Internal(c, "Failed to update notification")
		return
	}

	c.JSON(200, dto.ToNotificationView(&notification))
}

// Create lets an admin push an offer or system notice to a customer.
// Reminder notifications are produced by the scheduler, not this endpoint.
func (h *NotificationHandler) Create(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	if req.Type != models.NotificationTypeOffer && req.Type != models.NotificationTypeSystem {
		httperr.BadRequest(c, "Unsupported notification type")
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, req.CustomerID).Error; err != nil {
		httperr.NotFound(c, "Customer not found")
		return
	}

	notification := models.Notification{
		Message:    req.Message,
		Type:       req.Type,
		Status:     models.NotificationStatusUnread,
		CustomerID: customer.ID,
		BookingID:  req.BookingID,
	}

	if err := h.db.Create(&notification).Error; err != nil {
		httperr.Internal(c, "Failed to create notification")
		return
	}

	c.JSON(201, dto.ToNotificationView(&notification))
}
