package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/beautyparlour/parlour-api/internal/dto"
	"github.com/beautyparlour/parlour-api/internal/httperr"
	"github.com/beautyparlour/parlour-api/internal/httpresp"
	"github.com/beautyparlour/parlour-api/internal/models"
)

type PortfolioHandler struct {
	db *gorm.DB
}

func NewPortfolioHandler(db *gorm.DB) *PortfolioHandler {
	return &PortfolioHandler{db: db}
}

type CreatePortfolioRequest struct {
	ImageURL    string `json:"image_url" binding:"required,url"`
	Description string `json:"description"`
}

func (h *PortfolioHandler) ListForStylist(c *gin.Context) {
	stylistID, ok := parseIDParam(c, "Invalid stylist ID")
	if !ok {
		return
	}

	var stylist models.Stylist
	if err := h.db.First(&stylist, stylistID).Error; err != nil {
		httperr.NotFound(c, "Stylist not found")
		return
	}

	var items []models.Portfolio
	if err := h.db.Where("stylist_id = ?", stylist.ID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		httperr.Internal(c, "Failed to list portfolio")
		return
	}

	views := make([]dto.PortfolioView, 0, len(items))
	for i := range items {
		views = append(views, dto.ToPortfolioView(&items[i]))
	}
	httpresp.List(c, views)
}

func (h *PortfolioHandler) Create(c *gin.Context) {
	stylistID, ok := parseIDParam(c, "Invalid stylist ID")
	if !ok {
		return
	}

	var req CreatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	var stylist models.Stylist
	if err := h.db.First(&stylist, stylistID).Error; err != nil {
		httperr.NotFound(c, "Stylist not found")
		return
	}

	item := models.Portfolio{
		ImageURL:    req.ImageURL,
		Description: req.Description,
		StylistID:   stylist.ID,
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "Failed to create portfolio item")
		return
	}

	c.JSON(201, dto.ToPortfolioView(&item))
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid portfolio item ID")
	if !ok {
		return
	}

	var item models.Portfolio
	if err := h.db.First(&item, id).Error; err != nil {
		httperr.NotFound(c, "Portfolio item not found")
		return
	}

	if err := h.db.Delete(&item).Error; err != nil {
		httperr.Internal(c, "Failed to delete portfolio item")
		return
	}

	httpresp.Message(c, "Portfolio item deleted")
}
