package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/udayanalone/BarberConnect/internal/audit"
	"github.com/udayanalone/BarberConnect/internal/authz"
	domain "github.com/udayanalone/BarberConnect/internal/domain/appointment"
	"github.com/udayanalone/BarberConnect/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewCancelAppointment(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	log *zap.Logger,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: auditor,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor authz.Principal,
	appointmentID uint,
	reason string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := authz.CanAppointment(actor, ap, authz.ActionCancel); err != nil {
		return nil, err
	}

	if err := domain.CancelByCustomer(ap, reason); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.log.Info("appointment cancelled",
		zap.Uint("appointment_id", ap.ID),
		zap.Uint("customer_id", actor.UserID),
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   audit.ActionAppointmentCancelled,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
