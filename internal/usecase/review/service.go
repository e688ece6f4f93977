package review

import (
	"context"

	"go.uber.org/zap"

	"github.com/udayanalone/BarberConnect/internal/audit"
	"github.com/udayanalone/BarberConnect/internal/authz"
	domain "github.com/udayanalone/BarberConnect/internal/domain/appointment"
	"github.com/udayanalone/BarberConnect/internal/httperr"
	"github.com/udayanalone/BarberConnect/internal/models"
)

type CreateReviewInput struct {
	AppointmentID uint
	Rating        int
	Comment       string
	IsAnonymous   bool
}

type UpdateReviewInput struct {
	ReviewID uint
	Rating   *int
	Comment  *string
}

// Service owns the review write path. Every mutation ends with an explicit
// aggregator call so the profile aggregate dependency stays visible in the
// contract instead of hiding in persistence hooks.
type Service struct {
	repo         Repository
	appointments domain.Repository
	aggregator   *Aggregator
	audit        *audit.Dispatcher
	log          *zap.Logger
}

func NewService(
	repo Repository,
	appointments domain.Repository,
	aggregator *Aggregator,
	auditor *audit.Dispatcher,
	log *zap.Logger,
) *Service {
	return &Service{
		repo:         repo,
		appointments: appointments,
		aggregator:   aggregator,
		audit:        auditor,
		log:          log.With(zap.String("service", "review")),
	}
}

func (s *Service) Create(
	ctx context.Context,
	actor authz.Principal,
	in CreateReviewInput,
) (*models.Review, error) {

	ap, err := s.appointments.GetByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if err := authz.CanAppointment(actor, ap, authz.ActionReview); err != nil {
		return nil, err
	}

	if ap.Status != string(domain.StatusCompleted) {
		return nil, httperr.ErrBusiness(httperr.CodeNotRateable)
	}

	if existing, err := s.repo.GetByAppointment(ctx, in.AppointmentID); err == nil && existing != nil {
		return nil, httperr.ErrBusiness(httperr.CodeDuplicateReview)
	}

	rv := &models.Review{
		CustomerID:    actor.UserID,
		BarberID:      ap.BarberID,
		AppointmentID: ap.ID,
		Rating:        in.Rating,
		Comment:       in.Comment,
		IsAnonymous:   in.IsAnonymous,
	}

	// The unique index on appointment_id backstops the pre-check above.
	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}

	ap.IsRated = true
	if err := s.appointments.Update(ctx, ap); err != nil {
		s.log.Warn("failed to flag appointment as rated",
			zap.Uint("appointment_id", ap.ID), zap.Error(err))
	}

	s.recompute(ctx, rv.BarberID)

	s.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   audit.ActionReviewCreated,
		Entity:   "review",
		EntityID: &rv.ID,
		Metadata: map[string]any{"rating": rv.Rating},
	})

	return rv, nil
}

func (s *Service) Update(
	ctx context.Context,
	actor authz.Principal,
	in UpdateReviewInput,
) (*models.Review, error) {

	rv, err := s.repo.GetByID(ctx, in.ReviewID)
	if err != nil {
		return nil, err
	}

	if rv.CustomerID != actor.UserID {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	if in.Rating != nil {
		rv.Rating = *in.Rating
	}
	if in.Comment != nil {
		rv.Comment = *in.Comment
	}

	if err := s.repo.Update(ctx, rv); err != nil {
		return nil, err
	}

	s.recompute(ctx, rv.BarberID)

	s.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   audit.ActionReviewUpdated,
		Entity:   "review",
		EntityID: &rv.ID,
	})

	return rv, nil
}

func (s *Service) Delete(
	ctx context.Context,
	actor authz.Principal,
	reviewID uint,
) error {

	rv, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}

	if rv.CustomerID != actor.UserID && actor.Role != models.RoleAdmin {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}

	if err := s.repo.Delete(ctx, reviewID); err != nil {
		return err
	}

	s.recompute(ctx, rv.BarberID)

	s.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   audit.ActionReviewDeleted,
		Entity:   "review",
		EntityID: &rv.ID,
	})

	return nil
}

func (s *Service) ListByBarber(
	ctx context.Context,
	barberID uint,
	page, limit int,
) ([]models.Review, int64, error) {

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	return s.repo.ListByBarber(ctx, barberID, page, limit)
}

// recompute refreshes the barber aggregate. A failed recomputation is
// logged but does not fail the review write; the next mutation recomputes
// from the full set anyway.
func (s *Service) recompute(ctx context.Context, barberID uint) {
	if err := s.aggregator.Recompute(ctx, barberID); err != nil {
		s.log.Warn("rating recomputation failed",
			zap.Uint("barber_id", barberID), zap.Error(err))
	}
}
