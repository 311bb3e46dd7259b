package booking

import (
	"context"

	domain "github.com/beautyparlour/parlour-api/internal/domain/booking"
	"github.com/beautyparlour/parlour-api/internal/httperr"
	"github.com/beautyparlour/parlour-api/internal/models"
)

func (s *service) Get(ctx context.Context, id uint, caller Caller) (*models.Booking, error) {

	b, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !caller.IsAdmin && b.CustomerID != caller.CustomerID {
		return nil, httperr.ErrBusinessf("not_owner", "You can only view your own bookings")
	}

	return b, nil
}

func (s *service) ListForCustomer(ctx context.Context, customerID uint) ([]models.Booking, error) {
	return s.repo.ListBookingsForCustomer(ctx, customerID)
}

func (s *service) Delete(ctx context.Context, id uint, caller Caller) error {

	err := s.repo.InTransaction(ctx, func(tx domain.Repository) error {
		b, err := tx.GetBooking(ctx, id)
		if err != nil {
			return err
		}

		if !caller.IsAdmin && b.CustomerID != caller.CustomerID {
			return httperr.ErrBusinessf("not_owner", "You can only delete your own bookings")
		}

		// Notifications referencing the booking go with it via the FK
		// cascade.
		return tx.DeleteBooking(ctx, b)
	})
	if err != nil {
		return err
	}

	s.dispatch(caller.CustomerID, "booking_deleted", id)
	return nil
}
