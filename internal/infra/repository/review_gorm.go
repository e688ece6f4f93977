package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/udayanalone/BarberConnect/internal/httperr"
	"github.com/udayanalone/BarberConnect/internal/models"
	"github.com/udayanalone/BarberConnect/internal/usecase/review"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) Create(ctx context.Context, rv *models.Review) error {
	if err := r.db.WithContext(ctx).Create(rv).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness(httperr.CodeDuplicateReview)
		}
		return err
	}
	return nil
}

func (r *ReviewGormRepository) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	var rv models.Review
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeReviewNotFound)
		}
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewGormRepository) GetByAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Review, error) {

	var rv models.Review
	err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		First(&rv).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeReviewNotFound)
		}
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewGormRepository) Update(ctx context.Context, rv *models.Review) error {
	return r.db.WithContext(ctx).Save(rv).Error
}

func (r *ReviewGormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Review{}, id).Error
}

func (r *ReviewGormRepository) ListByBarber(
	ctx context.Context,
	barberID uint,
	page, limit int,
) ([]models.Review, int64, error) {

	query := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("barber_id = ?", barberID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := query.
		Preload("Customer").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&reviews).Error

	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *ReviewGormRepository) RatingStats(
	ctx context.Context,
	barberID uint,
) (float64, int64, error) {

	var stats struct {
		Avg   float64
		Count int64
	}

	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("barber_id = ?", barberID).
		Scan(&stats).Error

	if err != nil {
		return 0, 0, err
	}
	return stats.Avg, stats.Count, nil
}

func (r *ReviewGormRepository) WriteAggregate(
	ctx context.Context,
	barberID uint,
	rating float64,
	total int64,
) (uint, error) {

	var profile models.BarberProfile
	if err := r.db.WithContext(ctx).
		Select("id").
		Where("user_id = ?", barberID).
		First(&profile).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, httperr.ErrBusiness(httperr.CodeBarberNotFound)
		}
		return 0, err
	}

	err := r.db.WithContext(ctx).
		Model(&models.BarberProfile{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"rating":        rating,
			"total_reviews": total,
		}).Error

	return profile.ID, err
}

// Compile-time check
var _ review.Repository = (*ReviewGormRepository)(nil)
