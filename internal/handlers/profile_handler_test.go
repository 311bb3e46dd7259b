package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/beautyparlour/parlour-api/internal/middleware"
	"github.com/beautyparlour/parlour-api/internal/models"
)

// asCallerParam reads the caller id from the route so one router can act
// as any seeded customer.
func asCallerParam(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("caller"), 10, 64)
	c.Set(middleware.ContextCustomerID, uint(id))
}

func newProfileRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	db := newTestDB(t)
	profileHandler := NewProfileHandler(db)

	r := newTestRouter()
	r.PUT("/profiles/customers/:id/as/:caller", func(c *gin.Context) {
		asCallerParam(c)
		profileHandler.UpdateCustomerProfile(c)
	})
	r.DELETE("/profiles/customers/:id/as/:caller", func(c *gin.Context) {
		asCallerParam(c)
		profileHandler.DeleteCustomerProfile(c)
	})
	return r, db
}

func seedCustomerWorld(t *testing.T, db *gorm.DB, customerID uint) {
	t.Helper()

	stylist := models.Stylist{Name: "Zuri"}
	assert.NoError(t, db.Create(&stylist).Error)
	service := models.Service{Title: "Braiding", Price: 1500}
	assert.NoError(t, db.Create(&service).Error)

	booking := models.Booking{
		AppointmentTime: time.Now().Add(48 * time.Hour),
		Status:          "confirmed",
		CustomerID:      customerID,
		StylistID:       stylist.ID,
		ServiceID:       service.ID,
	}
	assert.NoError(t, db.Create(&booking).Error)
	assert.NoError(t, db.Create(&models.Payment{
		Amount:     1500,
		Method:     models.PaymentMethodMpesa,
		CustomerID: customerID,
		BookingID:  &booking.ID,
	}).Error)
	assert.NoError(t, db.Create(&models.Notification{
		Message:    "Your appointment is confirmed",
		Type:       models.NotificationTypeSystem,
		CustomerID: customerID,
		BookingID:  &booking.ID,
	}).Error)
	assert.NoError(t, db.Create(&models.Review{
		Rating:     5,
		Comment:    "Great braids",
		StylistID:  stylist.ID,
		CustomerID: customerID,
	}).Error)
}

func ownedRows(t *testing.T, db *gorm.DB, customerID uint) (bookings, payments, notifications, reviews int64) {
	t.Helper()

	assert.NoError(t, db.Model(&models.Booking{}).Where("customer_id = ?", customerID).Count(&bookings).Error)
	assert.NoError(t, db.Model(&models.Payment{}).Where("customer_id = ?", customerID).Count(&payments).Error)
	assert.NoError(t, db.Model(&models.Notification{}).Where("customer_id = ?", customerID).Count(&notifications).Error)
	assert.NoError(t, db.Model(&models.Review{}).Where("customer_id = ?", customerID).Count(&reviews).Error)
	return
}

func TestUpdateCustomerProfile_SelfOnly(t *testing.T) {
	r, db := newProfileRouter(t)
	seedCustomer(t, db, "Amina", "+254711000001", false)
	admin := seedCustomer(t, db, "Root", "+254711000002", true)

	// The admin flag does not open other customers' profiles.
	w := putJSON(r, "/profiles/customers/1/as/2", `{"name": "Hijacked"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error": "You can only update your own profile"}`, w.Body.String())
	assert.True(t, admin.IsAdmin)

	var untouched models.Customer
	assert.NoError(t, db.First(&untouched, 1).Error)
	assert.Equal(t, "Amina", untouched.Name)
}

func TestUpdateCustomerProfile_Self(t *testing.T) {
	r, db := newProfileRouter(t)
	seedCustomer(t, db, "Amina", "+254711000001", false)

	w := putJSON(r, "/profiles/customers/1/as/1", `{"name": "Amina W."}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var updated models.Customer
	assert.NoError(t, db.First(&updated, 1).Error)
	assert.Equal(t, "Amina W.", updated.Name)
}

func TestDeleteCustomerProfile_CascadesOwnedRows(t *testing.T) {
	r, db := newProfileRouter(t)
	customer := seedCustomer(t, db, "Amina", "+254711000001", false)
	seedCustomerWorld(t, db, customer.ID)

	w := do(r, http.MethodDelete, "/profiles/customers/1/as/1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Customer deleted"}`, w.Body.String())

	var count int64
	assert.NoError(t, db.Model(&models.Customer{}).Where("id = ?", customer.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	bookings, payments, notifications, reviews := ownedRows(t, db, customer.ID)
	assert.Equal(t, int64(0), bookings)
	assert.Equal(t, int64(0), payments)
	assert.Equal(t, int64(0), notifications)
	assert.Equal(t, int64(0), reviews)

	// Unrelated rows survive the cascade.
	var stylists int64
	assert.NoError(t, db.Model(&models.Stylist{}).Count(&stylists).Error)
	assert.Equal(t, int64(1), stylists)
}

func TestDeleteCustomerProfile_AdminMayDeleteOthers(t *testing.T) {
	r, db := newProfileRouter(t)
	seedCustomer(t, db, "Amina", "+254711000001", false)
	seedCustomer(t, db, "Root", "+254711000002", true)

	w := do(r, http.MethodDelete, "/profiles/customers/1/as/2")

	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	assert.NoError(t, db.Model(&models.Customer{}).Where("id = ?", uint(1)).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDeleteCustomerProfile_StrangerForbidden(t *testing.T) {
	r, db := newProfileRouter(t)
	seedCustomer(t, db, "Amina", "+254711000001", false)
	seedCustomer(t, db, "Wanja", "+254711000003", false)

	w := do(r, http.MethodDelete, "/profiles/customers/1/as/2")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error": "You can only delete your own profile"}`, w.Body.String())
}

func TestDeleteCustomerProfile_Missing(t *testing.T) {
	r, db := newProfileRouter(t)
	seedCustomer(t, db, "Root", "+254711000002", true)

	w := do(r, http.MethodDelete, "/profiles/customers/99/as/1")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Customer not found"}`, w.Body.String())
}

func putJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
