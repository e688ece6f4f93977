package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/udayanalone/BarberConnect/internal/audit"
	"github.com/udayanalone/BarberConnect/internal/authz"
	domain "github.com/udayanalone/BarberConnect/internal/domain/appointment"
	"github.com/udayanalone/BarberConnect/internal/httperr"
	"github.com/udayanalone/BarberConnect/internal/models"
)

type UpdateStatusInput struct {
	AppointmentID      uint
	Actor              authz.Principal
	NewStatus          string
	CancellationReason string
}

// UpdateStatus drives the barber-side transitions: pending→approved,
// pending→rejected and approved→completed. Authority comes from the
// capability check, legality from the transition table, in that order so a
// wrong caller always sees forbidden rather than learning the state.
type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewUpdateStatus(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	log *zap.Logger,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: auditor,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	if !domain.IsValidStatus(in.NewStatus) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	action, ok := authz.ActionForStatus(in.NewStatus)
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	ap, err := uc.repo.GetByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if err := authz.CanAppointment(in.Actor, ap, action); err != nil {
		return nil, err
	}

	if action == authz.ActionCancel {
		if err := domain.CancelByCustomer(ap, in.CancellationReason); err != nil {
			return nil, err
		}
	} else {
		if err := domain.Transition(ap, domain.Status(in.NewStatus), in.CancellationReason); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.log.Info("appointment status updated",
		zap.Uint("appointment_id", ap.ID),
		zap.String("status", ap.Status),
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Actor.UserID,
		Action:   audit.ActionAppointmentStatus,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": ap.Status},
	})

	return ap, nil
}
