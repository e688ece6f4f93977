package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/udayanalone/BarberConnect/internal/httperr"
	"github.com/udayanalone/BarberConnect/internal/httpresp"
	"github.com/udayanalone/BarberConnect/internal/middleware"
	"github.com/udayanalone/BarberConnect/internal/models"
	"github.com/udayanalone/BarberConnect/internal/usecase/review"
)

type ReviewHandler struct {
	service *review.Service
}

func NewReviewHandler(service *review.Service) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReviewRequest struct {
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Comment       string `json:"comment" binding:"max=500"`
	IsAnonymous   bool   `json:"is_anonymous"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=500"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	rv, err := h.service.Create(c.Request.Context(), middleware.Principal(c), review.CreateReviewInput{
		AppointmentID: req.AppointmentID,
		Rating:        req.Rating,
		Comment:       req.Comment,
		IsAnonymous:   req.IsAnonymous,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, rv)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid review id")
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	rv, err := h.service.Update(c.Request.Context(), middleware.Principal(c), review.UpdateReviewInput{
		ReviewID: uint(id),
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, rv)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid review id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.Principal(c), uint(id)); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Review deleted"})
}

// ListByBarber is public: the reviews backing a barber's aggregate rating.
func (h *ReviewHandler) ListByBarber(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid barber id")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	reviews, total, err := h.service.ListByBarber(c.Request.Context(), uint(barberID), page, limit)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	// Anonymous reviews hide the reviewer.
	for i := range reviews {
		if reviews[i].IsAnonymous {
			reviews[i].CustomerID = 0
			reviews[i].Customer = models.User{}
		}
	}

	httpresp.Page(c, reviews, page, limit, total)
}
