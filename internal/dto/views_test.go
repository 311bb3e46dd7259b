package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/beautyparlour/parlour-api/internal/models"
)

func TestToBookingView(t *testing.T) {
	b := &models.Booking{
		ID:              10,
		AppointmentTime: time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC),
		Status:          "pending",
		Customer:        models.Customer{ID: 1, Name: "Alice", Phone: "0700000001", PasswordHash: "secret-digest"},
		Stylist:         models.Stylist{ID: 2, Name: "Bella", Bio: "Braids"},
		Service:         models.Service{ID: 3, Title: "Braiding", Price: 45},
	}

	view := ToBookingView(b)

	assert.Equal(t, uint(10), view.ID)
	assert.Equal(t, "Alice", view.Customer.Name)
	assert.Equal(t, "Bella", view.Stylist.Name)
	assert.Equal(t, "Braiding", view.Service.Title)
}

func TestCustomerViewOmitsPasswordDigest(t *testing.T) {
	c := &models.Customer{ID: 1, Name: "Alice", Phone: "0700000001", PasswordHash: "secret-digest"}

	body, err := json.Marshal(ToCustomerView(c))

	assert.NoError(t, err)
	assert.NotContains(t, string(body), "secret-digest")
	assert.NotContains(t, string(body), "password")
}

func TestToStylistView_EmptyServicesMarshalsAsArray(t *testing.T) {
	view := ToStylistView(&models.Stylist{ID: 2, Name: "Bella"})

	body, err := json.Marshal(view)

	assert.NoError(t, err)
	assert.Contains(t, string(body), `"services":[]`)
}
