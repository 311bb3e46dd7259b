package handlers

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/beautyparlour/parlour-api/internal/dto"
	"github.com/beautyparlour/parlour-api/internal/httperr"
	"github.com/beautyparlour/parlour-api/internal/httpresp"
	"github.com/beautyparlour/parlour-api/internal/middleware"
	"github.com/beautyparlour/parlour-api/internal/models"
	"github.com/beautyparlour/parlour-api/internal/validators"
)

type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

type UpdateCustomerProfileRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}

func (h *ProfileHandler) GetCustomerProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid customer ID")
	if !ok {
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, id).Error; err != nil {
		httperr.NotFound(c, "Customer not found")
		return
	}

	var bookings []models.Booking
	if err := h.db.Preload("Stylist").Preload("Service").
		Where("customer_id = ?", customer.ID).
		Order("appointment_time ASC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "Failed to load appointments")
		return
	}

	c.JSON(200, dto.CustomerProfileView{
		CustomerView: dto.ToCustomerView(&customer),
		Appointments: dto.ToBookingSummaries(bookings),
	})
}

func (h *ProfileHandler) UpdateCustomerProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid customer ID")
	if !ok {
		return
	}

	// Strictly self-only; the admin flag grants no exception here.
	callerID := c.MustGet(middleware.ContextCustomerID).(uint)
	if callerID != id {
		httperr.Forbidden(c, "You can only update your own profile")
		return
	}

	var req UpdateCustomerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, id).Error; err != nil {
		httperr.NotFound(c, "Customer not found")
		return
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		if !validators.IsPhoneValid(*req.Phone) {
			httperr.BadRequest(c, "Invalid phone number format")
			return
		}
		var count int64
		h.db.Model(&models.Customer{}).
			Where("phone = ? AND id <> ?", *req.Phone, customer.ID).
			Count(&count)
		if count > 0 {
			httperr.BadRequest(c, "Phone already registered")
			return
		}
		customer.Phone = *req.Phone
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "Failed to hash password")
			return
		}
		customer.PasswordHash = string(hashed)
	}

	if err := h.db.Omit(clause.Associations).Save(&customer).Error; err != nil {
		httperr.Internal(c, "Failed to update profile")
		return
	}

	c.JSON(200, dto.ToCustomerView(&customer))
}

// DeleteCustomerProfile removes a customer and everything the customer owns.
// Notifications and payments go before bookings because both reference the
// booking rows.
func (h *ProfileHandler) DeleteCustomerProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid customer ID")
	if !ok {
		return
	}

	callerID := c.MustGet(middleware.ContextCustomerID).(uint)
	if callerID != id {
		var caller models.Customer
		if err := h.db.First(&caller, callerID).Error; err != nil || !caller.IsAdmin {
			httperr.Forbidden(c, "You can only delete your own profile")
			return
		}
	}

	var customer models.Customer
	if err := h.db.First(&customer, id).Error; err != nil {
		httperr.NotFound(c, "Customer not found")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", customer.ID).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", customer.ID).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", customer.ID).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", customer.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&customer).Error
	})
	if err != nil {
		httperr.Internal(c, "Failed to delete customer")
		return
	}

	httpresp.Message(c, "Customer deleted")
}

func (h *ProfileHandler) GetStylistProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid stylist ID")
	if !ok {
		return
	}

	var stylist models.Stylist
	if err := h.db.Preload("Services").First(&stylist, id).Error; err != nil {
		httperr.NotFound(c, "Stylist not found")
		return
	}

	var bookings []models.Booking
	if err := h.db.Preload("Stylist").Preload("Service").
		Where("stylist_id = ?", stylist.ID).
		Order("appointment_time ASC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "Failed to load appointments")
		return
	}

	c.JSON(200, dto.StylistProfileView{
		StylistView:  dto.ToStylistView(&stylist),
		Appointments: dto.ToBookingSummaries(bookings),
	})
}
