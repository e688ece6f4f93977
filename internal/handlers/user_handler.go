package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/udayanalone/BarberConnect/internal/httperr"
	"github.com/udayanalone/BarberConnect/internal/middleware"
	"github.com/udayanalone/BarberConnect/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Server error")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid user id")
		return
	}

	p := middleware.Principal(c)
	if p.Role != models.RoleAdmin && p.UserID != uint(id) {
		httperr.Forbidden(c, httperr.CodeForbidden, "Not authorized to view this profile")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found")
		return
	}

	c.JSON(http.StatusOK, user)
}
