package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/udayanalone/BarberConnect/internal/config"
	"github.com/udayanalone/BarberConnect/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.BarberProfile{},
		&models.Service{},
		&models.Appointment{},
		&models.Review{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Slot-uniqueness: at most one active appointment per
	// (barber, date, time). GORM cannot express a partial index over a
	// status set, so it is created directly. A violation on insert is the
	// slot-conflict signal.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
        ON appointments (barber_id, appointment_date, appointment_time)
        WHERE status IN ('pending', 'approved')
    `)

	return db
}
