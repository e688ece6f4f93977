package booking

import (
	"context"

	"github.com/udayanalone/BarberConnect/internal/authz"
	domain "github.com/udayanalone/BarberConnect/internal/domain/appointment"
	"github.com/udayanalone/BarberConnect/internal/models"
)

type ListAppointmentsInput struct {
	Actor  authz.Principal
	Status string
	Page   int
	Limit  int
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute lists appointments scoped to the caller: customers see their own
// bookings, barbers the ones booked with them, admins everything.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]models.Appointment, int64, error) {

	q := domain.ListQuery{
		Status: in.Status,
		Page:   in.Page,
		Limit:  in.Limit,
	}

	switch in.Actor.Role {
	case models.RoleCustomer:
		q.CustomerID = in.Actor.UserID
	case models.RoleBarber:
		q.BarberID = in.Actor.UserID
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 10
	}

	return uc.repo.List(ctx, q)
}

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	actor authz.Principal,
	id uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.CanAppointment(actor, ap, authz.ActionView); err != nil {
		return nil, err
	}

	return ap, nil
}
