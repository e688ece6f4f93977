package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/udayanalone/BarberConnect/internal/httperr"
	"github.com/udayanalone/BarberConnect/internal/httpresp"
	"github.com/udayanalone/BarberConnect/internal/middleware"
	"github.com/udayanalone/BarberConnect/internal/usecase/payment"
)

type PaymentHandler struct {
	coordinator *payment.Coordinator
}

func NewPaymentHandler(coordinator *payment.Coordinator) *PaymentHandler {
	return &PaymentHandler{coordinator: coordinator}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateOrderRequest struct {
	AppointmentID uint `json:"appointment_id" binding:"required"`
}

type VerifyPaymentRequest struct {
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	OrderID       string `json:"order_id" binding:"required"`
	PaymentID     string `json:"payment_id" binding:"required"`
	Signature     string `json:"signature" binding:"required"`
}

type SimulatePaymentRequest struct {
	AppointmentID uint `json:"appointment_id" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	order, err := h.coordinator.CreateOrder(
		c.Request.Context(),
		middleware.Principal(c),
		req.AppointmentID,
	)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, order)
}

func (h *PaymentHandler) Verify(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.coordinator.Verify(
		c.Request.Context(),
		middleware.Principal(c),
		payment.VerifyInput{
			AppointmentID: req.AppointmentID,
			OrderID:       req.OrderID,
			PaymentID:     req.PaymentID,
			Signature:     req.Signature,
		},
	)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":     "Payment verified successfully",
		"appointment": ap,
	})
}

func (h *PaymentHandler) Simulate(c *gin.Context) {
	var req SimulatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.coordinator.Simulate(
		c.Request.Context(),
		middleware.Principal(c),
		req.AppointmentID,
	)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":     "Payment simulated successfully",
		"appointment": ap,
	})
}

func (h *PaymentHandler) Status(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("appointmentId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id")
		return
	}

	status, err := h.coordinator.Status(
		c.Request.Context(),
		middleware.Principal(c),
		uint(id),
	)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, status)
}
