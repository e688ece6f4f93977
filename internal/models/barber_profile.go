package models

import "time"

// Service is a catalog entry published by a barber. Names are unique within
// a profile and are the key customers book by.
type Service struct {
	ID              uint `gorm:"primaryKey" json:"id"`
	BarberProfileID uint `gorm:"uniqueIndex:idx_profile_service_name" json:"barber_profile_id"`

	Name        string  `gorm:"size:100;not null;uniqueIndex:idx_profile_service_name" json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `gorm:"default:30" json:"duration_min"`
	Description string  `gorm:"size:255" json:"description"`

	// Position preserves the order the barber published the catalog in.
	Position int `json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	IsOpen bool   `json:"is_open"`
}

type WeeklyHours struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
}

type BarberProfile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	ShopName string `gorm:"size:100;not null" json:"shop_name"`

	Address string  `gorm:"size:255;not null" json:"address"`
	City    string  `gorm:"size:100;not null" json:"city"`
	State   string  `gorm:"size:100;not null" json:"state"`
	ZipCode string  `gorm:"size:20;not null" json:"zip_code"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`

	Services []Service `gorm:"foreignKey:BarberProfileID;constraint:OnDelete:CASCADE;" json:"services"`

	// Rating and TotalReviews are derived state, written only by the rating
	// aggregator. Rating carries one decimal of precision.
	Rating       float64 `gorm:"default:0" json:"rating"`
	TotalReviews int     `gorm:"default:0" json:"total_reviews"`

	ExperienceYears int         `gorm:"default:0" json:"experience_years"`
	Specialties     []string    `gorm:"serializer:json" json:"specialties"`
	WorkingHours    WeeklyHours `gorm:"serializer:json" json:"working_hours"`
	Images          []string    `gorm:"serializer:json" json:"images"`
	Description     string      `gorm:"size:500" json:"description"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
