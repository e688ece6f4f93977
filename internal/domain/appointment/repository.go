package appointment

import (
	"context"
	"time"

	"github.com/udayanalone/BarberConnect/internal/models"
)

type ListQuery struct {
	CustomerID uint
	BarberID   uint
	Status     string
	Page       int
	Limit      int
}

type Repository interface {
	// Create persists a new appointment. Implementations must surface the
	// slot-uniqueness constraint violation as a slot_conflict business
	// error, which is the atomic conflict signal.
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// CountActiveAtSlot counts pending/approved appointments holding the
	// (barber, date, time) slot.
	CountActiveAtSlot(
		ctx context.Context,
		barberID uint,
		date time.Time,
		timeOfDay string,
	) (int64, error)

	List(
		ctx context.Context,
		q ListQuery,
	) ([]models.Appointment, int64, error)
}
