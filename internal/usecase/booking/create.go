package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/udayanalone/BarberConnect/internal/audit"
	"github.com/udayanalone/BarberConnect/internal/catalog"
	domain "github.com/udayanalone/BarberConnect/internal/domain/appointment"
	"github.com/udayanalone/BarberConnect/internal/httperr"
	"github.com/udayanalone/BarberConnect/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerID      uint
	BarberProfileID uint

	ServiceNames []string

	Date  string // YYYY-MM-DD
	Time  string // HH:MM (24h)
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	catalog *catalog.Lookup
	repo    domain.Repository
	audit   *audit.Dispatcher
	log     *zap.Logger
	loc     *time.Location
	now     func() time.Time
}

func NewCreateAppointment(
	cat *catalog.Lookup,
	repo domain.Repository,
	auditor *audit.Dispatcher,
	log *zap.Logger,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		catalog: cat,
		repo:    repo,
		audit:   auditor,
		log:     log.With(zap.String("service", "booking")),
		loc:     loc,
		now:     time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	profile, err := uc.catalog.Profile(ctx, in.BarberProfileID)
	if err != nil {
		return nil, err
	}

	snapshots, total, err := validateAndPrice(profile, in.ServiceNames)
	if err != nil {
		return nil, err
	}

	date, slot, err := uc.composeSlot(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	if !slot.After(uc.now().In(uc.loc)) {
		return nil, httperr.ErrBusiness(httperr.CodePastDate)
	}

	// Friendly pre-check only; the unique index on the active slot key is
	// what actually protects against a concurrent double booking.
	count, err := uc.repo.CountActiveAtSlot(ctx, profile.UserID, date, in.Time)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, httperr.ErrBusiness(httperr.CodeSlotConflict)
	}

	ap := &models.Appointment{
		CustomerID:      in.CustomerID,
		BarberID:        profile.UserID,
		BarberProfileID: profile.ID,
		Services:        snapshots,
		AppointmentDate: date,
		AppointmentTime: in.Time,
		TotalAmount:     total,
		Status:          string(domain.InitialStatus()),
		PaymentStatus:   string(domain.PaymentPending),
		Notes:           in.Notes,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.log.Info("appointment created",
		zap.Uint("appointment_id", ap.ID),
		zap.Uint("customer_id", in.CustomerID),
		zap.Uint("barber_id", profile.UserID),
		zap.Float64("total_amount", total),
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CustomerID,
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"date": in.Date,
			"time": in.Time,
		},
	})

	return ap, nil
}

// validateAndPrice resolves the requested service names against the
// barber's catalog. Matching is exact and case-sensitive; output follows
// request order and snapshots the authoritative price and duration.
func validateAndPrice(
	profile *models.BarberProfile,
	names []string,
) ([]models.ServiceSnapshot, float64, error) {

	if len(names) == 0 {
		return nil, 0, httperr.ErrBusinessf(httperr.CodeServiceNotFound, "At least one service is required")
	}

	snapshots := make([]models.ServiceSnapshot, 0, len(names))
	var total float64

	for _, name := range names {
		var match *models.Service
		for i := range profile.Services {
			if profile.Services[i].Name == name {
				match = &profile.Services[i]
				break
			}
		}

		if match == nil {
			return nil, 0, httperr.ErrBusinessf(
				httperr.CodeServiceNotFound,
				"Service "+name+" not found for this barber",
			)
		}

		snapshots = append(snapshots, models.ServiceSnapshot{
			Name:        match.Name,
			Price:       match.Price,
			DurationMin: match.DurationMin,
		})
		total += match.Price
	}

	return snapshots, total, nil
}

// composeSlot parses the calendar date and the date+time pair in the
// configured location.
func (uc *CreateAppointment) composeSlot(dateStr, timeStr string) (time.Time, time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", dateStr, uc.loc)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	slot, err := time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, uc.loc)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	return date, slot, nil
}
