package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/udayanalone/BarberConnect/internal/domain/appointment"
	"github.com/udayanalone/BarberConnect/internal/httperr"
	"github.com/udayanalone/BarberConnect/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		// The partial unique index on (barber_id, date, time) for active
		// statuses fires here when two requests race past the pre-check.
		if isUniqueViolation(err) {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
		return err
	}
	return nil
}

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) CountActiveAtSlot(
	ctx context.Context,
	barberID uint,
	date time.Time,
	timeOfDay string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barber_id = ? AND appointment_date = ? AND appointment_time = ? AND status IN ?",
			barberID,
			date.Format("2006-01-02"),
			timeOfDay,
			[]string{string(domain.StatusPending), string(domain.StatusApproved)},
		).
		Count(&count).Error

	return count, err
}

func (r *AppointmentGormRepository) List(
	ctx context.Context,
	q domain.ListQuery,
) ([]models.Appointment, int64, error) {

	query := r.db.WithContext(ctx).Model(&models.Appointment{})

	if q.CustomerID != 0 {
		query = query.Where("customer_id = ?", q.CustomerID)
	}
	if q.BarberID != 0 {
		query = query.Where("barber_id = ?", q.BarberID)
	}
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var aps []models.Appointment
	err := query.
		Preload("Customer").
		Preload("Barber").
		Preload("BarberProfile").
		Order("appointment_date DESC, appointment_time DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&aps).Error

	if err != nil {
		return nil, 0, err
	}

	return aps, total, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
