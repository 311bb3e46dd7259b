package booking

import "github.com/beautyparlour/parlour-api/internal/httperr"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

// CanConfirm: only a pending booking can be confirmed.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusinessf("invalid_state", "Cannot confirm a %s booking", current)
	}
	return nil
}

// CanComplete: only a confirmed booking can be completed.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusinessf("invalid_state", "Cannot complete a %s booking", current)
	}
	return nil
}

// CanCancel: cancellation is allowed while the appointment has not happened.
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusinessf("invalid_state", "Cannot cancel a %s booking", current)
	}
	return nil
}
