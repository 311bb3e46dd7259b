package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/beautyparlour/parlour-api/internal/dto"
	"github.com/beautyparlour/parlour-api/internal/httperr"
	"github.com/beautyparlour/parlour-api/internal/httpresp"
	"github.com/beautyparlour/parlour-api/internal/models"
)

type StylistHandler struct {
	db *gorm.DB
}

func NewStylistHandler(db *gorm.DB) *StylistHandler {
	return &StylistHandler{db: db}
}

type CreateStylistRequest struct {
	Name       string `json:"name" binding:"required"`
	Bio        string `json:"bio"`
	ServiceIDs []uint `json:"service_ids"`
}

type UpdateStylistRequest struct {
	Name       *string `json:"name"`
	Bio        *string `json:"bio"`
	ServiceIDs *[]uint `json:"service_ids"`
}

func (h *StylistHandler) List(c *gin.Context) {
	var stylists []models.Stylist
	if err := h.db.Preload("Services").Order("id ASC").Find(&stylists).Error; err != nil {
		httperr.Internal(c, "Failed to list stylists")
		return
	}

	views := make([]dto.StylistView, 0, len(stylists))
	for i := range stylists {
		views = append(views, dto.ToStylistView(&stylists[i]))
	}
	httpresp.List(c, views)
}

func (h *StylistHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid stylist ID")
	if !ok {
		return
	}

	var stylist models.Stylist
	if err := h.db.Preload("Services").First(&stylist, id).Error; err != nil {
		httperr.NotFound(c, "Stylist not found")
		return
	}

	c.JSON(200, dto.ToStylistView(&stylist))
}

func (h *StylistHandler) Create(c *gin.Context) {
	var req CreateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	stylist := models.Stylist{Name: req.Name, Bio: req.Bio}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&stylist).Error; err != nil {
			return err
		}
		for _, serviceID := range req.ServiceIDs {
			var service models.Service
			if err := tx.First(&service, serviceID).Error; err != nil {
				return err
			}
			offering := models.Offering{StylistID: stylist.ID, ServiceID: service.ID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&offering).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		respondError(c, err, "Service not found")
		return
	}

	if err := h.db.Preload("Services").First(&stylist, stylist.ID).Error; err != nil {
		httperr.Internal(c, "Failed to load stylist")
		return
	}

	c.JSON(201, dto.ToStylistView(&stylist))
}

func (h *StylistHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid stylist ID")
	if !ok {
		return
	}

	var req UpdateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	var stylist models.Stylist
	if err := h.db.First(&stylist, id).Error; err != nil {
		httperr.NotFound(c, "Stylist not found")
		return
	}

	if req.Name != nil {
		stylist.Name = *req.Name
	}
	if req.Bio != nil {
		stylist.Bio = *req.Bio
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(&stylist).Error; err != nil {
			return err
		}
		if req.ServiceIDs == nil {
			return nil
		}

		// Replacing the offered set drops pairs not in the new list.
		services := make([]models.Service, 0, len(*req.ServiceIDs))
		for _, serviceID := range *req.ServiceIDs {
			var service models.Service
			if err := tx.First(&service, serviceID).Error; err != nil {
				return err
			}
			services = append(services, service)
		}
		return tx.Model(&stylist).Association("Services").Replace(services)
	})
	if err != nil {
		respondError(c, err, "Service not found")
		return
	}

	if err := h.db.Preload("Services").First(&stylist, stylist.ID).Error; err != nil {
		httperr.Internal(c, "Failed to load stylist")
		return
	}

	c.JSON(200, dto.ToStylistView(&stylist))
}

func (h *StylistHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid stylist ID")
	if !ok {
		return
	}

	var stylist models.Stylist
	if err := h.db.First(&stylist, id).Error; err != nil {
		httperr.NotFound(c, "Stylist not found")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("stylist_id = ?", stylist.ID).Delete(&models.Offering{}).Error; err != nil {
			return err
		}
		return tx.Delete(&stylist).Error
	})
	if err != nil {
		httperr.Internal(c, "Failed to delete stylist")
		return
	}

	httpresp.Message(c, "Stylist deleted")
}

func (h *StylistHandler) ListServices(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid stylist ID")
	if !ok {
		return
	}

	var stylist models.Stylist
	if err := h.db.Preload("Services").First(&stylist, id).Error; err != nil {
		httperr.NotFound(c, "Stylist not found")
		return
	}

	views := make([]dto.ServiceView, 0, len(stylist.Services))
	for i := range stylist.Services {
		views = append(views, dto.ToServiceView(&stylist.Services[i]))
	}
	httpresp.List(c, views)
}

// AssignService is the mirror of ServiceHandler.AssignStylist; both write
// the same offerings row, so either route can establish the pair.
func (h *StylistHandler) AssignService(c *gin.Context) {
	stylistID, ok := parseIDParam(c, "Invalid stylist ID")
	if !ok {
		return
	}

	serviceID, ok := parseNamedIDParam(c, "service_id", "Invalid service ID")
	if !ok {
		return
	}

	var stylist models.Stylist
	if err := h.db.First(&stylist, stylistID).Error; err != nil {
		httperr.NotFound(c, "Stylist not found")
		return
	}
	var service models.Service
	if err := h.db.First(&service, serviceID).Error; err != nil {
		httperr.NotFound(c, "Service not found")
		return
	}

	offering := models.Offering{StylistID: stylist.ID, ServiceID: service.ID}
	if err := h.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&offering).Error; err != nil {
		httperr.Internal(c, "Failed to assign service")
		return
	}

	httpresp.Message(c, "Service assigned to stylist")
}

func (h *StylistHandler) UnassignService(c *gin.Context) {
	stylistID, ok := parseIDParam(c, "Invalid stylist ID")
	if !ok {
		return
	}

	serviceID, ok := parseNamedIDParam(c, "service_id", "Invalid service ID")
	if !ok {
		return
	}

	var stylist models.Stylist
	if err := h.db.First(&stylist, stylistID).Error; err != nil {
		httperr.NotFound(c, "Stylist not found")
		return
	}
	var service models.Service
	if err := h.db.First(&service, serviceID).Error; err != nil {
		httperr.NotFound(c, "Service not found")
		return
	}

	res := h.db.Where("stylist_id = ? AND service_id = ?", stylist.ID, service.ID).Delete(&models.Offering{})
	if res.Error != nil {
		httperr.Internal(c, "Failed to unassign service")
		return
	}
	if res.RowsAffected == 0 {
		httperr.BadRequest(c, "Service not assigned to this stylist")
		return
	}

	httpresp.Message(c, "Service unassigned from stylist")
}
