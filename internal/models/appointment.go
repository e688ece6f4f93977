package models

import "time"

// ServiceSnapshot is a value copy of a catalog service taken at booking
// time. Later catalog edits never touch it, which keeps TotalAmount
// historically accurate.
type ServiceSnapshot struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
}

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `gorm:"index:idx_appointments_customer_date" json:"customer_id"`
	Customer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	BarberID uint `gorm:"index:idx_appointments_barber_date" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	BarberProfileID uint          `json:"barber_profile_id"`
	BarberProfile   BarberProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber_profile"`

	Services []ServiceSnapshot `gorm:"serializer:json" json:"services"`

	AppointmentDate time.Time `gorm:"type:date;index:idx_appointments_customer_date;index:idx_appointments_barber_date" json:"appointment_date"`
	AppointmentTime string    `gorm:"size:5" json:"appointment_time"`

	TotalAmount float64 `gorm:"not null" json:"total_amount"`

	Status        string `gorm:"size:20;default:'pending'" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`
	PaymentID     string `gorm:"size:100" json:"payment_id,omitempty"`

	Notes              string `gorm:"size:500" json:"notes,omitempty"`
	CancellationReason string `gorm:"size:500" json:"cancellation_reason,omitempty"`
	CancelledBy        string `gorm:"size:10" json:"cancelled_by,omitempty"`

	IsRated bool `gorm:"default:false" json:"is_rated"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
