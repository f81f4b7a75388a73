package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soulverse/profile-server/internal/apierror"
	"github.com/soulverse/profile-server/internal/models"
)

type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// ShowProfile renders the profile page for the default profile
func (h *ProfileHandler) ShowProfile(c *gin.Context) {
	var profile models.Profile
	if err := h.db.First(&profile, 1).Error; err != nil {
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "profile", gin.H{
		"profile": profile,
	})
}

// CreateProfile creates a new profile
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req models.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if req.Name == "" {
		c.Error(apierror.NewValidation("Name is required"))
		return
	}

	profile := models.Profile{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		MBTI:        req.MBTI,
		Enneagram:   req.Enneagram,
		Variant:     req.Variant,
		Tritype:     req.Tritype,
		Socionics:   req.Socionics,
		Sloan:       req.Sloan,
		Psyche:      req.Psyche,
		Image:       req.Image,
	}

	if err := h.db.Create(&profile).Error; err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "profile": profile})
}

// GetProfile returns a profile as JSON
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("profileId"))
	if err != nil {
		c.Error(apierror.NewNotFound("Profile not found"))
		return
	}

	var profile models.Profile
	findErr := h.db.First(&profile, id).Error
	if errors.Is(findErr, gorm.ErrRecordNotFound) {
		c.Error(apierror.NewNotFound("Profile not found"))
		return
	}
	if findErr != nil {
		c.Error(findErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}
