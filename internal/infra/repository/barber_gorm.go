package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/udayanalone/BarberConnect/internal/catalog"
	"github.com/udayanalone/BarberConnect/internal/httperr"
	"github.com/udayanalone/BarberConnect/internal/models"
)

type BarberGormRepository struct {
	db *gorm.DB
}

func NewBarberGormRepository(db *gorm.DB) *BarberGormRepository {
	return &BarberGormRepository{db: db}
}

func (r *BarberGormRepository) ProfileByID(
	ctx context.Context,
	id uint,
) (*models.BarberProfile, error) {

	var profile models.BarberProfile
	err := r.db.WithContext(ctx).
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		}).
		Preload("User").
		First(&profile, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeBarberNotFound)
		}
		return nil, err
	}

	return &profile, nil
}

// Compile-time check
var _ catalog.Store = (*BarberGormRepository)(nil)
