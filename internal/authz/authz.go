// Package authz is the single capability check consulted by every
// state-machine transition and payment operation, instead of re-checking
// role and ownership ad hoc in each handler.
package authz

import (
	"github.com/udayanalone/BarberConnect/internal/httperr"
	"github.com/udayanalone/BarberConnect/internal/models"
)

type Principal struct {
	UserID uint
	Role   string
}

type Action string

const (
	ActionView     Action = "view"
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
	ActionPay      Action = "pay"
	ActionReview   Action = "review"
)

// CanAppointment reports whether the principal may perform the action on
// the appointment. Barber-side transitions belong to the owning barber,
// customer-side actions to the owning customer; viewing is allowed to
// either owner and to admins.
func CanAppointment(p Principal, ap *models.Appointment, action Action) error {
	switch action {
	case ActionApprove, ActionReject, ActionComplete:
		if p.Role == models.RoleBarber && p.UserID == ap.BarberID {
			return nil
		}

	case ActionCancel, ActionPay, ActionReview:
		if p.Role == models.RoleCustomer && p.UserID == ap.CustomerID {
			return nil
		}

	case ActionView:
		if p.Role == models.RoleAdmin {
			return nil
		}
		if p.UserID == ap.CustomerID || p.UserID == ap.BarberID {
			return nil
		}
	}

	return httperr.ErrBusiness(httperr.CodeForbidden)
}

// CanProfile checks ownership of a barber profile for mutating operations.
func CanProfile(p Principal, profile *models.BarberProfile) error {
	if p.Role == models.RoleBarber && p.UserID == profile.UserID {
		return nil
	}
	return httperr.ErrBusiness(httperr.CodeForbidden)
}

// ActionForStatus maps a requested target status to the capability that
// authorizes it.
func ActionForStatus(to string) (Action, bool) {
	switch to {
	case "approved":
		return ActionApprove, true
	case "rejected":
		return ActionReject, true
	case "completed":
		return ActionComplete, true
	case "cancelled":
		return ActionCancel, true
	}
	return "", false
}
