package booking

import (
	"context"

	domain "github.com/beautyparlour/parlour-api/internal/domain/booking"
	"github.com/beautyparlour/parlour-api/internal/httperr"
	"github.com/beautyparlour/parlour-api/internal/models"
)

// Status transitions run inside a transaction so two racing transitions on
// the same booking cannot both observe the pre-transition status.

func (s *service) Confirm(ctx context.Context, id uint, caller Caller) (*models.Booking, error) {
	return s.transition(ctx, id, caller, "booking_confirmed", domain.Confirm)
}

func (s *service) Complete(ctx context.Context, id uint, caller Caller) (*models.Booking, error) {
	return s.transition(ctx, id, caller, "booking_completed", domain.Complete)
}

func (s *service) Cancel(ctx context.Context, id uint, caller Caller) (*models.Booking, error) {

	var out *models.Booking

	err := s.repo.InTransaction(ctx, func(tx domain.Repository) error {
		b, err := tx.GetBooking(ctx, id)
		if err != nil {
			return err
		}

		if !caller.IsAdmin && b.CustomerID != caller.CustomerID {
			return httperr.ErrBusinessf("not_owner", "You can only cancel your own bookings")
		}

		if err := domain.Cancel(b); err != nil {
			return err
		}

		if err := tx.SaveBooking(ctx, b); err != nil {
			return err
		}

		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatch(caller.CustomerID, "booking_cancelled", id)
	return out, nil
}

func (s *service) transition(
	ctx context.Context,
	id uint,
	caller Caller,
	action string,
	apply func(*models.Booking) error,
) (*models.Booking, error) {

	var out *models.Booking

	err := s.repo.InTransaction(ctx, func(tx domain.Repository) error {
		b, err := tx.GetBooking(ctx, id)
		if err != nil {
			return err
		}

		if err := apply(b); err != nil {
			return err
		}

		if err := tx.SaveBooking(ctx, b); err != nil {
			return err
		}

		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatch(caller.CustomerID, action, id)
	return out, nil
}
