package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/udayanalone/BarberConnect/internal/httperr"
	"github.com/udayanalone/BarberConnect/internal/httpresp"
	"github.com/udayanalone/BarberConnect/internal/middleware"
	"github.com/udayanalone/BarberConnect/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *booking.CreateAppointment
	statusUC *booking.UpdateStatus
	cancelUC *booking.CancelAppointment
	listUC   *booking.ListAppointments
	getUC    *booking.GetAppointment
}

func NewAppointmentHandler(
	createUC *booking.CreateAppointment,
	statusUC *booking.UpdateStatus,
	cancelUC *booking.CancelAppointment,
	listUC *booking.ListAppointments,
	getUC *booking.GetAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		statusUC: statusUC,
		cancelUC: cancelUC,
		listUC:   listUC,
		getUC:    getUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberProfileID uint     `json:"barber_profile_id" binding:"required"`
	Services        []string `json:"services" binding:"required,min=1"`
	Date            string   `json:"date" binding:"required"` // YYYY-MM-DD
	Time            string   `json:"time" binding:"required"` // HH:MM
	Notes           string   `json:"notes"`
}

type UpdateStatusRequest struct {
	Status             string `json:"status" binding:"required,oneof=approved rejected completed"`
	CancellationReason string `json:"cancellation_reason"`
}

type CancelRequest struct {
	CancellationReason string `json:"cancellation_reason"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	p := middleware.Principal(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), booking.CreateAppointmentInput{
		CustomerID:      p.UserID,
		BarberProfileID: req.BarberProfileID,
		ServiceNames:    req.Services,
		Date:            req.Date,
		Time:            req.Time,
		Notes:           req.Notes,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	p := middleware.Principal(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	aps, total, err := h.listUC.Execute(c.Request.Context(), booking.ListAppointmentsInput{
		Actor:  p,
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.Page(c, aps, page, limit, total)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id")
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), middleware.Principal(c), uint(id))
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATUS (barber)
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.statusUC.Execute(c.Request.Context(), booking.UpdateStatusInput{
		AppointmentID:      uint(id),
		Actor:              middleware.Principal(c),
		NewStatus:          req.Status,
		CancellationReason: req.CancellationReason,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CANCEL (customer)
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id")
		return
	}

	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.cancelUC.Execute(
		c.Request.Context(),
		middleware.Principal(c),
		uint(id),
		req.CancellationReason,
	)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}
