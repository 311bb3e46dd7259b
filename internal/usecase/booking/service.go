package booking

import (
	"context"

	"github.com/beautyparlour/parlour-api/internal/audit"
	domain "github.com/beautyparlour/parlour-api/internal/domain/booking"
	"github.com/beautyparlour/parlour-api/internal/models"
)

// Caller identifies the authenticated customer a request runs as.
type Caller struct {
	CustomerID uint
	IsAdmin    bool
}

type CreateInput struct {
	CustomerID      uint
	StylistID       uint
	ServiceID       uint
	AppointmentTime string
}

type UpdateInput struct {
	StylistID       *uint
	ServiceID       *uint
	AppointmentTime *string
}

type Service interface {
	Create(ctx context.Context, in CreateInput) (*models.Booking, error)
	Update(ctx context.Context, id uint, caller Caller, in UpdateInput) (*models.Booking, error)
	Delete(ctx context.Context, id uint, caller Caller) error
	Confirm(ctx context.Context, id uint, caller Caller) (*models.Booking, error)
	Complete(ctx context.Context, id uint, caller Caller) (*models.Booking, error)
	Cancel(ctx context.Context, id uint, caller Caller) (*models.Booking, error)
	Get(ctx context.Context, id uint, caller Caller) (*models.Booking, error)
	ListForCustomer(ctx context.Context, customerID uint) ([]models.Booking, error)
}

type service struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewService(repo domain.Repository, auditDispatcher *audit.Dispatcher) Service {
	return &service{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (s *service) dispatch(customerID uint, action string, bookingID uint) {
	if s.audit == nil {
		return
	}
	s.audit.Dispatch(audit.Event{
		CustomerID: &customerID,
		Action:     action,
		Entity:     "booking",
		EntityID:   &bookingID,
	})
}
