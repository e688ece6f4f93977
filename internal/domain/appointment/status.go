package appointment

import "github.com/udayanalone/BarberConnect/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Payment status is an independent side channel; status transitions never
// touch it.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

const (
	CancelledByCustomer = "customer"
	CancelledByBarber   = "barber"
	CancelledBySystem   = "system"
)

func InitialStatus() Status {
	return StatusPending
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected || s == StatusCancelled
}

// IsActive reports whether the appointment still holds its slot.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusApproved
}

// ===============================
// Transition rules
// ===============================

// transitions lists every legal status change. Everything absent is
// rejected, which freezes the terminal states.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusCompleted, StatusCancelled},
}

func CanTransition(from, to Status) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeInvalidTransition)
}

func CanCancel(current Status) error {
	return CanTransition(current, StatusCancelled)
}

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
