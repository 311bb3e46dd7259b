package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/beautyparlour/parlour-api/internal/httperr"
	"github.com/beautyparlour/parlour-api/internal/middleware"
	"github.com/beautyparlour/parlour-api/internal/models"
	ucbooking "github.com/beautyparlour/parlour-api/internal/usecase/booking"
)

// --- Mock booking service ---

type mockBookingService struct {
	createFn   func(ctx context.Context, in ucbooking.CreateInput) (*models.Booking, error)
	updateFn   func(ctx context.Context, id uint, caller ucbooking.Caller, in ucbooking.UpdateInput) (*models.Booking, error)
	deleteFn   func(ctx context.Context, id uint, caller ucbooking.Caller) error
	confirmFn  func(ctx context.Context, id uint, caller ucbooking.Caller) (*models.Booking, error)
	completeFn func(ctx context.Context, id uint, caller ucbooking.Caller) (*models.Booking, error)
	cancelFn   func(ctx context.Context, id uint, caller ucbooking.Caller) (*models.Booking, error)
	getFn      func(ctx context.Context, id uint, caller ucbooking.Caller) (*models.Booking, error)
	listFn     func(ctx context.Context, customerID uint) ([]models.Booking, error)
}

func (m *mockBookingService) Create(ctx context.Context, in ucbooking.CreateInput) (*models.Booking, error) {
	return m.createFn(ctx, in)
}
func (m *mockBookingService) Update(ctx context.Context, id uint, caller ucbooking.Caller, in ucbooking.UpdateInput) (*models.Booking, error) {
	return m.updateFn(ctx, id, caller, in)
}
func (m *mockBookingService) Delete(ctx context.Context, id uint, caller ucbooking.Caller) error {
	return m.deleteFn(ctx, id, caller)
}
func (m *mockBookingService) Confirm(ctx context.Context, id uint, caller ucbooking.Caller) (*models.Booking, error) {
	return m.confirmFn(ctx, id, caller)
}
func (m *mockBookingService) Complete(ctx context.Context, id uint, caller ucbooking.Caller) (*models.Booking, error) {
	return m.completeFn(ctx, id, caller)
}
func (m *mockBookingService) Cancel(ctx context.Context, id uint, caller ucbooking.Caller) (*models.Booking, error) {
	return m.cancelFn(ctx, id, caller)
}
func (m *mockBookingService) Get(ctx context.Context, id uint, caller ucbooking.Caller) (*models.Booking, error) {
	return m.getFn(ctx, id, caller)
}
func (m *mockBookingService) ListForCustomer(ctx context.Context, customerID uint) ([]models.Booking, error) {
	return m.listFn(ctx, customerID)
}

// --- Setup ---

func newBookingRouter(svc ucbooking.Service, caller ucbooking.Caller) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := &BookingHandler{
		svc: svc,
		resolve: func(c *gin.Context) (ucbooking.Caller, error) {
			return caller, nil
		},
	}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextCustomerID, caller.CustomerID)
	})

	r.GET("/bookings", h.List)
	r.POST("/bookings", h.Create)
	r.GET("/bookings/:id", h.Get)
	r.PUT("/bookings/:id", h.Update)
	r.DELETE("/bookings/:id", h.Delete)
	r.PATCH("/bookings/:id/confirm", h.Confirm)
	r.PATCH("/bookings/:id/complete", h.Complete)
	r.PATCH("/bookings/:id/cancel", h.Cancel)

	return r
}

func sampleBooking() *models.Booking {
	return &models.Booking{
		ID:              10,
		AppointmentTime: time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC),
		Status:          "pending",
		CustomerID:      1,
		StylistID:       2,
		ServiceID:       3,
		Customer:        models.Customer{ID: 1, Name: "Alice", Phone: "0700000001"},
		Stylist:         models.Stylist{ID: 2, Name: "Bella"},
		Service:         models.Service{ID: 3, Title: "Braiding", Price: 45},
	}
}

// --- Tests ---

func TestBookingCreate_Success(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, in ucbooking.CreateInput) (*models.Booking, error) {
			assert.Equal(t, uint(1), in.CustomerID)
			assert.Equal(t, uint(2), in.StylistID)
			return sampleBooking(), nil
		},
	}

	r := newBookingRouter(svc, ucbooking.Caller{CustomerID: 1})

	body := `{"stylist_id": 2, "service_id": 3, "appointment_time": "2026-09-15T14:30:00"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(10), resp["id"])
	assert.Equal(t, "pending", resp["status"])

	stylist := resp["stylist"].(map[string]any)
	assert.Equal(t, "Bella", stylist["name"])
}

func TestBookingCreate_NotOffered(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, in ucbooking.CreateInput) (*models.Booking, error) {
			return nil, httperr.ErrBusinessf("not_offered", "Stylist 'Bella' does not offer 'Manicure'")
		},
	}

	r := newBookingRouter(svc, ucbooking.Caller{CustomerID: 1})

	body := `{"stylist_id": 2, "service_id": 3, "appointment_time": "2026-09-15T14:30:00"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Stylist 'Bella' does not offer 'Manicure'"}`, w.Body.String())
}

func TestBookingCreate_MissingFields(t *testing.T) {
	r := newBookingRouter(&mockBookingService{}, ucbooking.Caller{CustomerID: 1})

	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{"stylist_id": 2}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingGet_NotFound(t *testing.T) {
	svc := &mockBookingService{
		getFn: func(ctx context.Context, id uint, caller ucbooking.Caller) (*models.Booking, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	r := newBookingRouter(svc, ucbooking.Caller{CustomerID: 1})

	req := httptest.NewRequest(http.MethodGet, "/bookings/999", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Booking not found"}`, w.Body.String())
}

func TestBookingGet_NotOwner(t *testing.T) {
	svc := &mockBookingService{
		getFn: func(ctx context.Context, id uint, caller ucbooking.Caller) (*models.Booking, error) {
			return nil, httperr.ErrBusinessf("not_owner", "You can only view your own bookings")
		},
	}

	r := newBookingRouter(svc, ucbooking.Caller{CustomerID: 42})

	req := httptest.NewRequest(http.MethodGet, "/bookings/10", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error": "You can only view your own bookings"}`, w.Body.String())
}

func TestBookingGet_InvalidID(t *testing.T) {
	r := newBookingRouter(&mockBookingService{}, ucbooking.Caller{CustomerID: 1})

	req := httptest.NewRequest(http.MethodGet, "/bookings/abc", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Invalid booking ID"}`, w.Body.String())
}

func TestBookingList(t *testing.T) {
	svc := &mockBookingService{
		listFn: func(ctx context.Context, customerID uint) ([]models.Booking, error) {
			return []models.Booking{*sampleBooking()}, nil
		},
	}

	r := newBookingRouter(svc, ucbooking.Caller{CustomerID: 1})

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data  []map[string]any `json:"data"`
		Total int              `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, 1, resp.Total)
}

func TestBookingCancel_InvalidState(t *testing.T) {
	svc := &mockBookingService{
		cancelFn: func(ctx context.Context, id uint, caller ucbooking.Caller) (*models.Booking, error) {
			return nil, httperr.ErrBusinessf("invalid_state", "Cannot cancel a completed booking")
		},
	}

	r := newBookingRouter(svc, ucbooking.Caller{CustomerID: 1})

	req := httptest.NewRequest(http.MethodPatch, "/bookings/10/cancel", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Cannot cancel a completed booking"}`, w.Body.String())
}

func TestBookingConfirm_Success(t *testing.T) {
	svc := &mockBookingService{
		confirmFn: func(ctx context.Context, id uint, caller ucbooking.Caller) (*models.Booking, error) {
			b := sampleBooking()
			b.Status = "confirmed"
			return b, nil
		},
	}

	r := newBookingRouter(svc, ucbooking.Caller{CustomerID: 99, IsAdmin: true})

	req := httptest.NewRequest(http.MethodPatch, "/bookings/10/confirm", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp["status"])
}

func TestBookingDelete_Success(t *testing.T) {
	svc := &mockBookingService{
		deleteFn: func(ctx context.Context, id uint, caller ucbooking.Caller) error {
			assert.Equal(t, uint(10), id)
			return nil
		},
	}

	r := newBookingRouter(svc, ucbooking.Caller{CustomerID: 1})

	req := httptest.NewRequest(http.MethodDelete, "/bookings/10", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Booking deleted"}`, w.Body.String())
}
