package booking

import (
	"context"

	"github.com/beautyparlour/parlour-api/internal/models"
)

type Repository interface {
	// InTransaction runs fn against a transaction-bound repository. All
	// writes inside fn commit or roll back together.
	InTransaction(ctx context.Context, fn func(Repository) error) error

	// -------- Referenced entities --------
	GetCustomer(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	GetStylist(
		ctx context.Context,
		id uint,
	) (*models.Stylist, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Offering --------
	OfferingExists(
		ctx context.Context,
		stylistID uint,
		serviceID uint,
	) (bool, error)

	// -------- Booking --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	SaveBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Booking, error)
}
