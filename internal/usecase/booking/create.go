package booking

import (
	"context"

	domain "github.com/beautyparlour/parlour-api/internal/domain/booking"
	"github.com/beautyparlour/parlour-api/internal/httperr"
	"github.com/beautyparlour/parlour-api/internal/models"
)

func (s *service) Create(ctx context.Context, in CreateInput) (*models.Booking, error) {

	var created *models.Booking

	err := s.repo.InTransaction(ctx, func(tx domain.Repository) error {

		// The customer comes from the session token, so a dangling id is a
		// bad request rather than a missing resource.
		customer, err := tx.GetCustomer(ctx, in.CustomerID)
		if err != nil {
			return httperr.ErrBusinessf("invalid_booking", "Invalid booking data")
		}

		stylist, err := tx.GetStylist(ctx, in.StylistID)
		if err != nil {
			return err
		}

		svc, err := tx.GetService(ctx, in.ServiceID)
		if err != nil {
			return err
		}

		// Parsed only after the referenced rows resolve, so a request that
		// is wrong on both counts reports the missing entity.
		when, err := domain.ParseAppointmentTime(in.AppointmentTime)
		if err != nil {
			return err
		}

		// Offering membership is checked inside the same transaction as the
		// insert, so a concurrent unassign cannot slip a stale pair through.
		offered, err := tx.OfferingExists(ctx, stylist.ID, svc.ID)
		if err != nil {
			return err
		}
		if !offered {
			return httperr.ErrBusinessf(
				"not_offered",
				"Stylist '%s' does not offer '%s'",
				stylist.Name, svc.Title,
			)
		}

		b := &models.Booking{
			AppointmentTime: when,
			Status:          string(domain.InitialStatus()),
			CustomerID:      customer.ID,
			StylistID:       stylist.ID,
			ServiceID:       svc.ID,
		}

		if err := tx.CreateBooking(ctx, b); err != nil {
			return err
		}

		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatch(in.CustomerID, "booking_created", created.ID)

	// Reload so the response carries the referenced entities.
	return s.repo.GetBooking(ctx, created.ID)
}
