package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `gorm:"not null" json:"customer_id"`
	Customer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customer"`

	BarberID uint `gorm:"index;not null" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber"`

	// One review per appointment.
	AppointmentID uint        `gorm:"uniqueIndex;not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Rating      int    `gorm:"not null" json:"rating"`
	Comment     string `gorm:"size:500" json:"comment"`
	IsAnonymous bool   `gorm:"default:false" json:"is_anonymous"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
