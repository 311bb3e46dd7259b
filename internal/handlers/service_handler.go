package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/beautyparlour/parlour-api/internal/dto"
	"github.com/beautyparlour/parlour-api/internal/httperr"
	"github.com/beautyparlour/parlour-api/internal/httpresp"
	"github.com/beautyparlour/parlour-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type CreateServiceRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
}

type UpdateServiceRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "Failed to list services")
		return
	}

	views := make([]dto.ServiceView, 0, len(services))
	for i := range services {
		views = append(views, dto.ToServiceView(&services[i]))
	}
	httpresp.List(c, views)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid service ID")
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.Preload("Stylists").First(&service, id).Error; err != nil {
		httperr.NotFound(c, "Service not found")
		return
	}

	view := dto.ToServiceView(&service)
	stylists := make([]dto.StylistSummary, 0, len(service.Stylists))
	for i := range service.Stylists {
		stylists = append(stylists, dto.ToStylistSummary(&service.Stylists[i]))
	}

	c.JSON(200, gin.H{
		"id":          view.ID,
		"title":       view.Title,
		"description": view.Description,
		"price":       view.Price,
		"stylists":    stylists,
	})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	if *req.Price < 0 {
		httperr.BadRequest(c, "Price must be non-negative")
		return
	}

	service := models.Service{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "Failed to create service")
		return
	}

	c.JSON(201, dto.ToServiceView(&service))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid service ID")
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		httperr.NotFound(c, "Service not found")
		return
	}

	if req.Title != nil {
		service.Title = *req.Title
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "Price must be non-negative")
			return
		}
		service.Price = *req.Price
	}

	if err := h.db.Omit(clause.Associations).Save(&service).Error; err != nil {
		httperr.Internal(c, "Failed to update service")
		return
	}

	c.JSON(200, dto.ToServiceView(&service))
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid service ID")
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		httperr.NotFound(c, "Service not found")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", service.ID).Delete(&models.Offering{}).Error; err != nil {
			return err
		}
		return tx.Delete(&service).Error
	})
	if err != nil {
		httperr.Internal(c, "Failed to delete service")
		return
	}

	httpresp.Message(c, "Service deleted")
}

func (h *ServiceHandler) ListStylists(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid service ID")
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.Preload("Stylists").First(&service, id).Error; err != nil {
		httperr.NotFound(c, "Service not found")
		return
	}

	views := make([]dto.StylistSummary, 0, len(service.Stylists))
	for i := range service.Stylists {
		views = append(views, dto.ToStylistSummary(&service.Stylists[i]))
	}
	httpresp.List(c, views)
}

// AssignStylist links a stylist to this service. Assigning an already
// linked pair is a no-op and still returns 200.
func (h *ServiceHandler) AssignStylist(c *gin.Context) {
	serviceID, ok := parseIDParam(c, "Invalid service ID")
	if !ok {
		return
	}

	stylistID, ok := parseNamedIDParam(c, "stylist_id", "Invalid stylist ID")
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, serviceID).Error; err != nil {
		httperr.NotFound(c, "Service not found")
		return
	}
	var stylist models.Stylist
	if err := h.db.First(&stylist, stylistID).Error; err != nil {
		httperr.NotFound(c, "Stylist not found")
		return
	}

	offering := models.Offering{StylistID: stylist.ID, ServiceID: service.ID}
	if err := h.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&offering).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Internal(c, "Failed to assign stylist")
			return
		}
	}

	httpresp.Message(c, "Stylist assigned to service")
}

func (h *ServiceHandler) UnassignStylist(c *gin.Context) {
	serviceID, ok := parseIDParam(c, "Invalid service ID")
	if !ok {
		return
	}

	stylistID, ok := parseNamedIDParam(c, "stylist_id", "Invalid stylist ID")
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, serviceID).Error; err != nil {
		httperr.NotFound(c, "Service not found")
		return
	}
	var stylist models.Stylist
	if err := h.db.First(&stylist, stylistID).Error; err != nil {
		httperr.NotFound(c, "Stylist not found")
		return
	}

	res := h.db.Where("stylist_id = ? AND service_id = ?", stylist.ID, service.ID).Delete(&models.Offering{})
	if res.Error != nil {
		httperr.Internal(c, "Failed to unassign stylist")
		return
	}
	if res.RowsAffected == 0 {
		httperr.BadRequest(c, "Stylist not assigned to this service")
		return
	}

	httpresp.Message(c, "Stylist unassigned from service")
}
