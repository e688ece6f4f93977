package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/udayanalone/BarberConnect/internal/authz"
	"github.com/udayanalone/BarberConnect/internal/catalog"
	"github.com/udayanalone/BarberConnect/internal/httperr"
	"github.com/udayanalone/BarberConnect/internal/httpresp"
	"github.com/udayanalone/BarberConnect/internal/middleware"
	"github.com/udayanalone/BarberConnect/internal/models"
	"github.com/udayanalone/BarberConnect/internal/storage"
)

type BarberHandler struct {
	db      *gorm.DB
	catalog *catalog.Lookup
	images  *storage.ImageStore
}

func NewBarberHandler(db *gorm.DB, cat *catalog.Lookup, images *storage.ImageStore) *BarberHandler {
	return &BarberHandler{db: db, catalog: cat, images: images}
}

// ======================================================
// REQUESTS
// ======================================================

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"min=0"`
	DurationMin int     `json:"duration_min" binding:"omitempty,min=15"`
	Description string  `json:"description"`
}

type LocationRequest struct {
	Address string  `json:"address" binding:"required"`
	City    string  `json:"city" binding:"required"`
	State   string  `json:"state" binding:"required"`
	ZipCode string  `json:"zip_code" binding:"required"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type CreateProfileRequest struct {
	ShopName        string             `json:"shop_name" binding:"required,min=2"`
	Location        LocationRequest    `json:"location" binding:"required"`
	Services        []ServiceRequest   `json:"services" binding:"required,min=1,dive"`
	ExperienceYears int                `json:"experience_years"`
	Specialties     []string           `json:"specialties"`
	WorkingHours    models.WeeklyHours `json:"working_hours"`
	Description     string             `json:"description"`
}

type UpdateProfileRequest struct {
	ShopName        *string             `json:"shop_name" binding:"omitempty,min=2"`
	Location        *LocationRequest    `json:"location"`
	ExperienceYears *int                `json:"experience_years"`
	Specialties     *[]string           `json:"specialties"`
	WorkingHours    *models.WeeklyHours `json:"working_hours"`
	Description     *string             `json:"description"`
	IsActive        *bool               `json:"is_active"`
}

type ReplaceServicesRequest struct {
	Services []ServiceRequest `json:"services" binding:"required,min=1,dive"`
}

// ======================================================
// PUBLIC DIRECTORY
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	q := h.db.Model(&models.BarberProfile{}).Where("is_active = true")

	if city := c.Query("city"); city != "" {
		q = q.Where("city ILIKE ?", "%"+city+"%")
	}

	if ratingStr := c.Query("rating"); ratingStr != "" {
		if rating, err := strconv.ParseFloat(ratingStr, 64); err == nil {
			q = q.Where("rating >= ?", rating)
		}
	}

	if service := c.Query("service"); service != "" {
		q = q.Where(
			"id IN (?)",
			h.db.Model(&models.Service{}).
				Select("barber_profile_id").
				Where("name ILIKE ?", "%"+service+"%"),
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Server error")
		return
	}

	var profiles []models.BarberProfile
	err := q.
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		}).
		Preload("User").
		Order("rating DESC, total_reviews DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&profiles).Error

	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Server error")
		return
	}

	httpresp.Page(c, profiles, page, limit, total)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid barber id")
		return
	}

	profile, err := h.catalog.Profile(c.Request.Context(), uint(id))
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, profile)
}

// ======================================================
// PROFILE CRUD (barber-owned)
// ======================================================

func (h *BarberHandler) Create(c *gin.Context) {
	p := middleware.Principal(c)

	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var count int64
	h.db.Model(&models.BarberProfile{}).Where("user_id = ?", p.UserID).Count(&count)
	if count > 0 {
		httperr.WriteBusiness(c, httperr.ErrBusiness(httperr.CodeProfileAlreadyExists))
		return
	}

	profile := models.BarberProfile{
		UserID:          p.UserID,
		ShopName:        req.ShopName,
		Address:         req.Location.Address,
		City:            req.Location.City,
		State:           req.Location.State,
		ZipCode:         req.Location.ZipCode,
		Lat:             req.Location.Lat,
		Lng:             req.Location.Lng,
		Services:        toServices(req.Services),
		ExperienceYears: req.ExperienceYears,
		Specialties:     req.Specialties,
		WorkingHours:    req.WorkingHours,
		Description:     req.Description,
		IsActive:        true,
	}

	if err := h.db.Create(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_create_profile", "Server error")
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func (h *BarberHandler) Update(c *gin.Context) {
	profile, ok := h.ownedProfile(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.ShopName != nil {
		profile.ShopName = *req.ShopName
	}
	if req.Location != nil {
		profile.Address = req.Location.Address
		profile.City = req.Location.City
		profile.State = req.Location.State
		profile.ZipCode = req.Location.ZipCode
		profile.Lat = req.Location.Lat
		profile.Lng = req.Location.Lng
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}
	if req.Specialties != nil {
		profile.Specialties = *req.Specialties
	}
	if req.WorkingHours != nil {
		profile.WorkingHours = *req.WorkingHours
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}
	if req.IsActive != nil {
		profile.IsActive = *req.IsActive
	}

	if err := h.db.Save(profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Server error")
		return
	}

	h.catalog.Invalidate(c.Request.Context(), profile.ID)

	httpresp.OK(c, profile)
}

// ReplaceServices swaps the whole catalog, the same way the profile owner
// edits it in one screen. Appointment snapshots are unaffected.
func (h *BarberHandler) ReplaceServices(c *gin.Context) {
	profile, ok := h.ownedProfile(c)
	if !ok {
		return
	}

	var req ReplaceServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	services := toServices(req.Services)
	for i := range services {
		services[i].BarberProfileID = profile.ID
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barber_profile_id = ?", profile.ID).
			Delete(&models.Service{}).Error; err != nil {
			return err
		}
		return tx.Create(&services).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_update_services", "Server error")
		return
	}

	h.catalog.Invalidate(c.Request.Context(), profile.ID)

	profile.Services = services
	httpresp.OK(c, profile)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	profile, ok := h.ownedProfile(c)
	if !ok {
		return
	}

	if err := h.db.Delete(profile).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_profile", "Server error")
		return
	}

	h.catalog.Invalidate(c.Request.Context(), profile.ID)

	httpresp.OK(c, gin.H{"message": "Barber profile deleted"})
}

func (h *BarberHandler) Me(c *gin.Context) {
	p := middleware.Principal(c)

	var profile models.BarberProfile
	err := h.db.
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		}).
		Preload("User").
		Where("user_id = ?", p.UserID).
		First(&profile).Error

	if err != nil {
		httperr.NotFound(c, httperr.CodeBarberNotFound, "Barber profile not found")
		return
	}

	httpresp.OK(c, &profile)
}

// ======================================================
// IMAGES
// ======================================================

func (h *BarberHandler) UploadImage(c *gin.Context) {
	if h.images == nil {
		httperr.Internal(c, "image_store_unavailable", "Image uploads are not configured")
		return
	}

	profile, ok := h.ownedProfile(c)
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Image file is required")
		return
	}
	defer file.Close()

	url, err := h.images.Upload(c.Request.Context(), profile.ID, file)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Server error")
		return
	}

	profile.Images = append(profile.Images, url)
	if err := h.db.Save(profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Server error")
		return
	}

	h.catalog.Invalidate(c.Request.Context(), profile.ID)

	httpresp.OK(c, gin.H{"url": url, "images": profile.Images})
}

// ======================================================
// HELPERS
// ======================================================

// ownedProfile loads the profile addressed by :id and verifies ownership.
// Writes the error response itself when the check fails.
func (h *BarberHandler) ownedProfile(c *gin.Context) (*models.BarberProfile, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid barber id")
		return nil, false
	}

	var profile models.BarberProfile
	if err := h.db.First(&profile, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeBarberNotFound, "Barber profile not found")
		return nil, false
	}

	if err := authz.CanProfile(middleware.Principal(c), &profile); err != nil {
		httperr.WriteBusiness(c, err)
		return nil, false
	}

	return &profile, true
}

func toServices(reqs []ServiceRequest) []models.Service {
	services := make([]models.Service, 0, len(reqs))
	for i, s := range reqs {
		duration := s.DurationMin
		if duration == 0 {
			duration = 30
		}
		services = append(services, models.Service{
			Name:        s.Name,
			Price:       s.Price,
			DurationMin: duration,
			Description: s.Description,
			Position:    i,
		})
	}
	return services
}
