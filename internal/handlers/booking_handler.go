package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/beautyparlour/parlour-api/internal/dto"
	"github.com/beautyparlour/parlour-api/internal/httperr"
	"github.com/beautyparlour/parlour-api/internal/httpresp"
	"github.com/beautyparlour/parlour-api/internal/middleware"
	"github.com/beautyparlour/parlour-api/internal/models"
	ucbooking "github.com/beautyparlour/parlour-api/internal/usecase/booking"
)

type BookingHandler struct {
	svc     ucbooking.Service
	resolve func(c *gin.Context) (ucbooking.Caller, error)
}

func NewBookingHandler(svc ucbooking.Service, db *gorm.DB) *BookingHandler {
	return &BookingHandler{svc: svc, resolve: dbCallerResolver(db)}
}

// dbCallerResolver re-reads the admin flag from the database on every
// request, so a revoked admin cannot keep acting on an old token.
func dbCallerResolver(db *gorm.DB) func(c *gin.Context) (ucbooking.Caller, error) {
	return func(c *gin.Context) (ucbooking.Caller, error) {
		customerID := c.MustGet(middleware.ContextCustomerID).(uint)

		var customer models.Customer
		if err := db.First(&customer, customerID).Error; err != nil {
			return ucbooking.Caller{}, err
		}

		return ucbooking.Caller{CustomerID: customer.ID, IsAdmin: customer.IsAdmin}, nil
	}
}

func (h *BookingHandler) callerFrom(c *gin.Context) (ucbooking.Caller, bool) {
	caller, err := h.resolve(c)
	if err != nil {
		httperr.Unauthorized(c, "Customer not found")
		return ucbooking.Caller{}, false
	}
	return caller, true
}

type CreateBookingRequest struct {
	StylistID       uint   `json:"stylist_id" binding:"required"`
	ServiceID       uint   `json:"service_id" binding:"required"`
	AppointmentTime string `json:"appointment_time" binding:"required"`
}

type UpdateBookingRequest struct {
	StylistID       *uint   `json:"stylist_id"`
	ServiceID       *uint   `json:"service_id"`
	AppointmentTime *string `json:"appointment_time"`
}

func (h *BookingHandler) List(c *gin.Context) {
	caller, ok := h.callerFrom(c)
	if !ok {
		return
	}

	bookings, err := h.svc.ListForCustomer(c.Request.Context(), caller.CustomerID)
	if err != nil {
		httperr.Internal(c, "Failed to list bookings")
		return
	}

	views := make([]dto.BookingView, 0, len(bookings))
	for i := range bookings {
		views = append(views, dto.ToBookingView(&bookings[i]))
	}
	httpresp.List(c, views)
}

func (h *BookingHandler) Create(c *gin.Context) {
	caller, ok := h.callerFrom(c)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	booking, err := h.svc.Create(c.Request.Context(), ucbooking.CreateInput{
		CustomerID:      caller.CustomerID,
		StylistID:       req.StylistID,
		ServiceID:       req.ServiceID,
		AppointmentTime: req.AppointmentTime,
	})
	if err != nil {
		respondError(c, err, "Stylist or service not found")
		return
	}

	c.JSON(201, dto.ToBookingView(booking))
}

func (h *BookingHandler) Get(c *gin.Context) {
	caller, ok := h.callerFrom(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "Invalid booking ID")
	if !ok {
		return
	}

	booking, err := h.svc.Get(c.Request.Context(), id, caller)
	if err != nil {
		respondError(c, err, "Booking not found")
		return
	}

	c.JSON(200, dto.ToBookingView(booking))
}

func (h *BookingHandler) Update(c *gin.Context) {
	caller, ok := h.callerFrom(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "Invalid booking ID")
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	booking, err := h.svc.Update(c.Request.Context(), id, caller, ucbooking.UpdateInput{
		StylistID:       req.StylistID,
		ServiceID:       req.ServiceID,
		AppointmentTime: req.AppointmentTime,
	})
	if err != nil {
		respondError(c, err, "Booking not found")
		return
	}

	c.JSON(200, dto.ToBookingView(booking))
}

func (h *BookingHandler) Delete(c *gin.Context) {
	caller, ok := h.callerFrom(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "Invalid booking ID")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, caller); err != nil {
		respondError(c, err, "Booking not found")
		return
	}

	httpresp.Message(c, "Booking deleted")
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.svc.Confirm)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, h.svc.Complete)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.svc.Cancel)
}

type transitionFunc func(ctx context.Context, id uint, caller ucbooking.Caller) (*models.Booking, error)

func (h *BookingHandler) transition(c *gin.Context, fn transitionFunc) {
	caller, ok := h.callerFrom(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "Invalid booking ID")
	if !ok {
		return
	}

	booking, err := fn(c.Request.Context(), id, caller)
	if err != nil {
		respondError(c, err, "Booking not found")
		return
	}

	c.JSON(200, dto.ToBookingView(booking))
}
