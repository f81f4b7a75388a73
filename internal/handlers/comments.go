package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soulverse/profile-server/internal/models"
	"github.com/soulverse/profile-server/internal/services"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{comments: services.NewCommentService(db)}
}

// CreateComment creates a new comment or reply on a profile
func (h *CommentHandler) CreateComment(c *gin.Context) {
	profileID, err := profileIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	comment, err := h.comments.Create(profileID, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "comment": comment})
}

// GetComments lists comments for a profile with sorting and pagination
func (h *CommentHandler) GetComments(c *gin.Context) {
	profileID, err := profileIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	opts := parseListOptions(c)

	comments, pagination, err := h.comments.List(profileID, opts)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"comments":   comments,
		"pagination": pagination,
	})
}

// GetComment returns a single comment with its full reply set
func (h *CommentHandler) GetComment(c *gin.Context) {
	profileID, err := profileIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}
	commentID, err := commentIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	comment, replies, err := h.comments.GetWithReplies(profileID, commentID, c.Query("userId"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"comment": comment,
		"replies": replies,
	})
}

// UpdateComment edits a comment (author only)
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	profileID, err := profileIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}
	commentID, err := commentIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req models.EditCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	comment, err := h.comments.Edit(profileID, commentID, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "comment": comment})
}

// DeleteComment soft-deletes a comment (author only)
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	profileID, err := profileIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}
	commentID, err := commentIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req models.DeleteCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.comments.Delete(profileID, commentID, req); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Comment deleted successfully",
	})
}

// parseListOptions reads the listing query parameters, falling back to the
// documented defaults for anything absent or unparseable.
func parseListOptions(c *gin.Context) models.ListOptions {
	opts := models.DefaultListOptions()

	switch models.SortKind(c.Query("sortBy")) {
	case models.SortOldest:
		opts.SortBy = models.SortOldest
	case models.SortTopRated:
		opts.SortBy = models.SortTopRated
	case models.SortMostReplies:
		opts.SortBy = models.SortMostReplies
	}

	if raw := c.Query("parentCommentId"); raw != "" && raw != "null" {
		if id, err := strconv.Atoi(raw); err == nil {
			opts.ParentCommentID = &id
		}
	}

	opts.UserID = c.Query("userId")

	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		opts.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		opts.Limit = limit
	}

	return opts
}
