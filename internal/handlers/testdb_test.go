package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/beautyparlour/parlour-api/internal/middleware"
	"github.com/beautyparlour/parlour-api/internal/models"
)

// newTestDB opens an in-memory store with the production schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	assert.NoError(t, db.SetupJoinTable(&models.Stylist{}, "Services", &models.Offering{}))
	assert.NoError(t, db.SetupJoinTable(&models.Service{}, "Stylists", &models.Offering{}))

	assert.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Service{},
		&models.Stylist{},
		&models.Offering{},
		&models.Booking{},
		&models.Payment{},
		&models.Notification{},
		&models.Portfolio{},
		&models.Review{},
		&models.AuditLog{},
	))

	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, name, phone string, isAdmin bool) *models.Customer {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	assert.NoError(t, err)

	customer := models.Customer{
		Name:         name,
		Phone:        phone,
		PasswordHash: string(hashed),
		IsAdmin:      isAdmin,
	}
	assert.NoError(t, db.Create(&customer).Error)
	return &customer
}

// asCustomer injects the authenticated customer id the way AuthMiddleware
// would after verifying a token.
func asCustomer(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextCustomerID, id)
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
