package appointment

import (
	"github.com/udayanalone/BarberConnect/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves an appointment to a new status after checking the
// transition table. The optional reason is stored verbatim. TotalAmount and
// the service snapshots are never touched here.
func Transition(ap *models.Appointment, to Status, reason string) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	if reason != "" {
		ap.CancellationReason = reason
	}
	return nil
}

// CancelByCustomer cancels on behalf of the owning customer and records the
// cancellation attribution.
func CancelByCustomer(ap *models.Appointment, reason string) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledBy = CancelledByCustomer
	if reason != "" {
		ap.CancellationReason = reason
	}
	return nil
}
