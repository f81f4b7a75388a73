package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soulverse/profile-server/internal/apierror"
)

// Handler combines all handler types
type Handler struct {
	Comment *CommentHandler
	Vote    *VoteHandler
	Profile *ProfileHandler
	User    *UserHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Comment: NewCommentHandler(db),
		Vote:    NewVoteHandler(db),
		Profile: NewProfileHandler(db),
		User:    NewUserHandler(db),
	}
}

func profileIDParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("profileId"))
	if err != nil {
		return 0, apierror.NewValidation("Invalid profile id")
	}
	return id, nil
}

func commentIDParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("commentId"))
	if err != nil {
		return 0, apierror.NewNotFound("Comment not found")
	}
	return id, nil
}
