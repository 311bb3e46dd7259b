package booking

import (
	"context"

	domain "github.com/beautyparlour/parlour-api/internal/domain/booking"
	"github.com/beautyparlour/parlour-api/internal/httperr"
	"github.com/beautyparlour/parlour-api/internal/models"
)

func (s *service) Update(
	ctx context.Context,
	id uint,
	caller Caller,
	in UpdateInput,
) (*models.Booking, error) {

	err := s.repo.InTransaction(ctx, func(tx domain.Repository) error {

		b, err := tx.GetBooking(ctx, id)
		if err != nil {
			return err
		}

		if !caller.IsAdmin && b.CustomerID != caller.CustomerID {
			return httperr.ErrBusinessf("not_owner", "You can only modify your own bookings")
		}

		// Resolve the pair the booking would end up with. A patch that
		// changes only one side is validated against the unchanged other
		// side.
		stylistID := b.StylistID
		serviceID := b.ServiceID
		stylistName := b.Stylist.Name
		serviceTitle := b.Service.Title

		if in.StylistID != nil {
			stylist, err := tx.GetStylist(ctx, *in.StylistID)
			if err != nil {
				return err
			}
			stylistID = stylist.ID
			stylistName = stylist.Name
		}

		if in.ServiceID != nil {
			svc, err := tx.GetService(ctx, *in.ServiceID)
			if err != nil {
				return err
			}
			serviceID = svc.ID
			serviceTitle = svc.Title
		}

		if in.StylistID != nil || in.ServiceID != nil {
			offered, err := tx.OfferingExists(ctx, stylistID, serviceID)
			if err != nil {
				return err
			}
			if !offered {
				return httperr.ErrBusinessf(
					"not_offered",
					"Stylist '%s' does not offer '%s'",
					stylistName, serviceTitle,
				)
			}
			b.StylistID = stylistID
			b.ServiceID = serviceID
		}

		if in.AppointmentTime != nil {
			when, err := domain.ParseAppointmentTime(*in.AppointmentTime)
			if err != nil {
				return err
			}
			b.AppointmentTime = when
		}

		return tx.SaveBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	s.dispatch(caller.CustomerID, "booking_updated", id)

	return s.repo.GetBooking(ctx, id)
}
