package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/beautyparlour/parlour-api/internal/dto"
	"github.com/beautyparlour/parlour-api/internal/httperr"
	"github.com/beautyparlour/parlour-api/internal/httpresp"
	"github.com/beautyparlour/parlour-api/internal/middleware"
	"github.com/beautyparlour/parlour-api/internal/models"
)

type ReviewHandler struct {
	db *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) ListForStylist(c *gin.Context) {
	stylistID, ok := parseIDParam(c, "Invalid stylist ID")
	if !ok {
		return
	}

	var stylist models.Stylist
	if err := h.db.First(&stylist, stylistID).Error; err != nil {
		httperr.NotFound(c, "Stylist not found")
		return
	}

	var reviews []models.Review
	if err := h.db.Where("stylist_id = ?", stylist.ID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		httperr.Internal(c, "Failed to list reviews")
		return
	}

	views := make([]dto.ReviewView, 0, len(reviews))
	for i := range reviews {
		views = append(views, dto.ToReviewView(&reviews[i]))
	}
	httpresp.List(c, views)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	stylistID, ok := parseIDParam(c, "Invalid stylist ID")
	if !ok {
		return
	}

	callerID := c.MustGet(middleware.ContextCustomerID).(uint)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	var stylist models.Stylist
	if err := h.db.First(&stylist, stylistID).Error; err != nil {
		httperr.NotFound(c, "Stylist not found")
		return
	}

	review := models.Review{
		Rating:     req.Rating,
		Comment:    req.Comment,
		StylistID:  stylist.ID,
		CustomerID: callerID,
	}

	if err := h.db.Create(&review).Error; err != nil {
		httperr.Internal(c, "Failed to create review")
		return
	}

	c.JSON(201, dto.ToReviewView(&review))
}
