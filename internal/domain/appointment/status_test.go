package appointment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/udayanalone/BarberConnect/internal/domain/appointment"
	"github.com/udayanalone/BarberConnect/internal/httperr"
	"github.com/udayanalone/BarberConnect/internal/models"
)

func Test_CanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.Status
		to      domain.Status
		allowed bool
	}{
		{"pending_to_approved", domain.StatusPending, domain.StatusApproved, true},
		{"pending_to_rejected", domain.StatusPending, domain.StatusRejected, true},
		{"pending_to_cancelled", domain.StatusPending, domain.StatusCancelled, true},
		{"pending_to_completed", domain.StatusPending, domain.StatusCompleted, false},
		{"approved_to_completed", domain.StatusApproved, domain.StatusCompleted, true},
		{"approved_to_cancelled", domain.StatusApproved, domain.StatusCancelled, true},
		{"approved_to_rejected", domain.StatusApproved, domain.StatusRejected, false},
		{"approved_to_pending", domain.StatusApproved, domain.StatusPending, false},
		{"completed_is_frozen", domain.StatusCompleted, domain.StatusCancelled, false},
		{"rejected_is_frozen", domain.StatusRejected, domain.StatusApproved, false},
		{"cancelled_is_frozen", domain.StatusCancelled, domain.StatusApproved, false},
		{"self_transition_rejected", domain.StatusPending, domain.StatusPending, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := domain.CanTransition(tc.from, tc.to)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
			}
		})
	}
}

func Test_StatusPredicates(t *testing.T) {
	assert.Equal(t, domain.StatusPending, domain.InitialStatus())

	assert.True(t, domain.StatusPending.IsActive())
	assert.True(t, domain.StatusApproved.IsActive())
	assert.False(t, domain.StatusCompleted.IsActive())
	assert.False(t, domain.StatusCancelled.IsActive())

	assert.True(t, domain.StatusCompleted.IsTerminal())
	assert.True(t, domain.StatusRejected.IsTerminal())
	assert.True(t, domain.StatusCancelled.IsTerminal())
	assert.False(t, domain.StatusPending.IsTerminal())
	assert.False(t, domain.StatusApproved.IsTerminal())

	assert.True(t, domain.IsValidStatus("approved"))
	assert.False(t, domain.IsValidStatus("paid"))
	assert.False(t, domain.IsValidStatus(""))
}

func Test_Transition_RecordsReason(t *testing.T) {
	ap := &models.Appointment{Status: string(domain.StatusPending)}

	require.NoError(t, domain.Transition(ap, domain.StatusRejected, "fully booked"))
	assert.Equal(t, "rejected", ap.Status)
	assert.Equal(t, "fully booked", ap.CancellationReason)
}

func Test_Transition_DoesNotTouchPaymentSide(t *testing.T) {
	ap := &models.Appointment{
		Status:        string(domain.StatusApproved),
		PaymentStatus: string(domain.PaymentPaid),
		TotalAmount:   450,
	}

	require.NoError(t, domain.Transition(ap, domain.StatusCompleted, ""))
	assert.Equal(t, "completed", ap.Status)
	assert.Equal(t, "paid", ap.PaymentStatus)
	assert.Equal(t, 450.0, ap.TotalAmount)
}

func Test_CancelByCustomer(t *testing.T) {
	ap := &models.Appointment{Status: string(domain.StatusApproved)}

	require.NoError(t, domain.CancelByCustomer(ap, "plans changed"))
	assert.Equal(t, "cancelled", ap.Status)
	assert.Equal(t, domain.CancelledByCustomer, ap.CancelledBy)
	assert.Equal(t, "plans changed", ap.CancellationReason)
}

func Test_CancelByCustomer_TerminalIsFrozen(t *testing.T) {
	for _, status := range []domain.Status{
		domain.StatusCompleted,
		domain.StatusRejected,
		domain.StatusCancelled,
	} {
		ap := &models.Appointment{Status: string(status)}
		err := domain.CancelByCustomer(ap, "")
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition), "status %s", status)
		assert.Equal(t, string(status), ap.Status)
	}
}
