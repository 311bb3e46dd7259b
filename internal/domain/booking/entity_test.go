package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beautyparlour/parlour-api/internal/models"
)

func TestConfirm(t *testing.T) {
	b := &models.Booking{Status: string(StatusPending)}

	assert.NoError(t, Confirm(b))
	assert.Equal(t, string(StatusConfirmed), b.Status)

	// A second confirm fails and leaves the status alone.
	assert.Error(t, Confirm(b))
	assert.Equal(t, string(StatusConfirmed), b.Status)
}

func TestComplete(t *testing.T) {
	b := &models.Booking{Status: string(StatusConfirmed)}

	assert.NoError(t, Complete(b))
	assert.Equal(t, string(StatusCompleted), b.Status)
}

func TestComplete_RequiresConfirmed(t *testing.T) {
	b := &models.Booking{Status: string(StatusPending)}

	assert.Error(t, Complete(b))
	assert.Equal(t, string(StatusPending), b.Status)
}

func TestCancel(t *testing.T) {
	pending := &models.Booking{Status: string(StatusPending)}
	assert.NoError(t, Cancel(pending))
	assert.Equal(t, string(StatusCancelled), pending.Status)

	confirmed := &models.Booking{Status: string(StatusConfirmed)}
	assert.NoError(t, Cancel(confirmed))
	assert.Equal(t, string(StatusCancelled), confirmed.Status)

	completed := &models.Booking{Status: string(StatusCompleted)}
	assert.Error(t, Cancel(completed))
	assert.Equal(t, string(StatusCompleted), completed.Status)
}
