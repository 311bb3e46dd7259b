package dto

import (
	"time"

	"github.com/beautyparlour/parlour-api/internal/models"
)

// Hand-written projections. Each view carries exactly the fields the API
// promises, which keeps relationship cycles and password digests out of
// responses.

type CustomerView struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	IsAdmin bool   `json:"is_admin"`
}

type ServiceView struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type StylistSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

type StylistView struct {
	ID       uint          `json:"id"`
	Name     string        `json:"name"`
	Bio      string        `json:"bio"`
	Services []ServiceView `json:"services"`
}

type BookingView struct {
	ID              uint           `json:"id"`
	AppointmentTime time.Time      `json:"appointment_time"`
	Status          string         `json:"status"`
	Customer        CustomerView   `json:"customer"`
	Stylist         StylistSummary `json:"stylist"`
	Service         ServiceView    `json:"service"`
}

// BookingSummary omits the owning customer; it is used when the bookings are
// nested under a profile that already names the owner.
type BookingSummary struct {
	ID              uint           `json:"id"`
	AppointmentTime time.Time      `json:"appointment_time"`
	Status          string         `json:"status"`
	Stylist         StylistSummary `json:"stylist"`
	Service         ServiceView    `json:"service"`
}

type PaymentView struct {
	ID            uint      `json:"id"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	TransactionID *string   `json:"transaction_id"`
	CustomerID    uint      `json:"customer_id"`
	BookingID     *uint     `json:"booking_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type NotificationView struct {
	ID        uint      `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	BookingID *uint     `json:"booking_id"`
	CreatedAt time.Time `json:"created_at"`
}

type PortfolioView struct {
	ID          uint      `json:"id"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description"`
	StylistID   uint      `json:"stylist_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReviewView struct {
	ID         uint      `json:"id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	StylistID  uint      `json:"stylist_id"`
	CustomerID uint      `json:"customer_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type CustomerProfileView struct {
	CustomerView
	Appointments []BookingSummary `json:"appointments"`
}

type StylistProfileView struct {
	StylistView
	Appointments []BookingSummary `json:"appointments"`
}

// --------------------------------------------------
// Converters
// --------------------------------------------------

func ToCustomerView(c *models.Customer) CustomerView {
	return CustomerView{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		IsAdmin: c.IsAdmin,
	}
}

func ToServiceView(s *models.Service) ServiceView {
	return ServiceView{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Price:       s.Price,
	}
}

func ToStylistSummary(s *models.Stylist) StylistSummary {
	return StylistSummary{
		ID:   s.ID,
		Name: s.Name,
		Bio:  s.Bio,
	}
}

func ToStylistView(s *models.Stylist) StylistView {
	services := make([]ServiceView, 0, len(s.Services))
	for i := range s.Services {
		services = append(services, ToServiceView(&s.Services[i]))
	}

	return StylistView{
		ID:       s.ID,
		Name:     s.Name,
		Bio:      s.Bio,
		Services: services,
	}
}

func ToBookingView(b *models.Booking) BookingView {
	return BookingView{
		ID:              b.ID,
		AppointmentTime: b.AppointmentTime,
		Status:          b.Status,
		Customer:        ToCustomerView(&b.Customer),
		Stylist:         ToStylistSummary(&b.Stylist),
		Service:         ToServiceView(&b.Service),
	}
}

func ToBookingSummary(b *models.Booking) BookingSummary {
	return BookingSummary{
		ID:              b.ID,
		AppointmentTime: b.AppointmentTime,
		Status:          b.Status,
		Stylist:         ToStylistSummary(&b.Stylist),
		Service:         ToServiceView(&b.Service),
	}
}

func ToBookingSummaries(bookings []models.Booking) []BookingSummary {
	out := make([]BookingSummary, 0, len(bookings))
	for i := range bookings {
		out = append(out, ToBookingSummary(&bookings[i]))
	}
	return out
}

func ToPaymentView(p *models.Payment) PaymentView {
	return PaymentView{
		ID:            p.ID,
		Amount:        p.Amount,
		Method:        p.Method,
		Status:        p.Status,
		TransactionID: p.TransactionID,
		CustomerID:    p.CustomerID,
		BookingID:     p.BookingID,
		CreatedAt:     p.CreatedAt,
	}
}

func ToNotificationView(n *models.Notification) NotificationView {
	return NotificationView{
		ID:        n.ID,
		Message:   n.Message,
		Type:      n.Type,
		Status:    n.Status,
		BookingID: n.BookingID,
		CreatedAt: n.CreatedAt,
	}
}

func ToPortfolioView(p *models.Portfolio) PortfolioView {
	return PortfolioView{
		ID:          p.ID,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		StylistID:   p.StylistID,
		CreatedAt:   p.CreatedAt,
	}
}

func ToReviewView(r *models.Review) ReviewView {
	return ReviewView{
		ID:         r.ID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		StylistID:  r.StylistID,
		CustomerID: r.CustomerID,
		CreatedAt:  r.CreatedAt,
	}
}
