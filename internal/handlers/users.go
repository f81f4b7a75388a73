package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soulverse/profile-server/internal/apierror"
	"github.com/soulverse/profile-server/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// CreateUser creates a new user account
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.Error(apierror.NewValidation("Name is required and must be a non-empty string"))
		return
	}

	user := models.User{Name: name}
	if err := h.db.Create(&user).Error; err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
}

// GetUser returns a user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.Error(apierror.NewNotFound("User not found"))
		return
	}

	var user models.User
	findErr := h.db.First(&user, id).Error
	if errors.Is(findErr, gorm.ErrRecordNotFound) {
		c.Error(apierror.NewNotFound("User not found"))
		return
	}
	if findErr != nil {
		c.Error(findErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// GetUsers lists all users, paginated
func (h *UserHandler) GetUsers(c *gin.Context) {
	page := 1
	limit := 50
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}

	var total int64
	if err := h.db.Model(&models.User{}).Count(&total).Error; err != nil {
		c.Error(err)
		return
	}

	users := make([]models.User, 0)
	err := h.db.Offset((page - 1) * limit).Limit(limit).Find(&users).Error
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
		"pagination": models.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}
