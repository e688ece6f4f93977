package review

import (
	"context"

	"github.com/udayanalone/BarberConnect/internal/models"
)

type Repository interface {
	Create(ctx context.Context, rv *models.Review) error
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	GetByAppointment(ctx context.Context, appointmentID uint) (*models.Review, error)
	Update(ctx context.Context, rv *models.Review) error
	Delete(ctx context.Context, id uint) error
	ListByBarber(ctx context.Context, barberID uint, page, limit int) ([]models.Review, int64, error)

	// RatingStats returns the mean rating and review count across all
	// reviews for the barber user.
	RatingStats(ctx context.Context, barberID uint) (avg float64, count int64, err error)

	// WriteAggregate stores the recomputed rating and count on the barber's
	// profile and returns the profile id for cache invalidation.
	WriteAggregate(ctx context.Context, barberID uint, rating float64, total int64) (profileID uint, err error)
}
