package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/beautyparlour/parlour-api/internal/config"
	"github.com/beautyparlour/parlour-api/internal/dto"
	"github.com/beautyparlour/parlour-api/internal/httperr"
	"github.com/beautyparlour/parlour-api/internal/middleware"
	"github.com/beautyparlour/parlour-api/internal/models"
	"github.com/beautyparlour/parlour-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=4"`
	IsAdmin  bool   `json:"is_admin"`
}

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	if !validators.IsPhoneValid(req.Phone) {
		httperr.BadRequest(c, "Invalid phone number format")
		return
	}

	var count int64
	h.db.Model(&models.Customer{}).Where("phone = ?", req.Phone).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "Phone already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "Failed to hash password")
		return
	}

	customer := models.Customer{
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: string(hashed),
		IsAdmin:      req.IsAdmin,
	}

	if err := h.db.Create(&customer).Error; err != nil {
		// A racing registration can still hit the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.BadRequest(c, "Phone already registered")
			return
		}
		httperr.Internal(c, "Failed to create customer")
		return
	}

	token, err := h.generateToken(&customer)
	if err != nil {
		httperr.Internal(c, "Failed to generate token")
		return
	}

	c.JSON(201, gin.H{
		"customer":     dto.ToCustomerView(&customer),
		"access_token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := h.db.Where("phone = ?", req.Phone).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same body as a digest mismatch so the response does not
			// reveal whether the phone exists.
			httperr.Unauthorized(c, "Invalid credentials")
			return
		}
		httperr.Internal(c, "Internal server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := h.generateToken(&customer)
	if err != nil {
		httperr.Internal(c, "Failed to generate token")
		return
	}

	c.JSON(200, gin.H{
		"customer":     dto.ToCustomerView(&customer),
		"access_token": token,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextCustomerID).(uint)

	var customer models.Customer
	if err := h.db.First(&customer, customerID).Error; err != nil {
		httperr.NotFound(c, "Customer not found")
		return
	}

	c.JSON(200, dto.ToCustomerView(&customer))
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(customer *models.Customer) (string, error) {
	claims := jwt.MapClaims{
		"sub": customer.ID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
