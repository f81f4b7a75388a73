package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soulverse/profile-server/internal/models"
	"github.com/soulverse/profile-server/internal/services"
)

type VoteHandler struct {
	votes *services.VoteService
}

func NewVoteHandler(db *gorm.DB) *VoteHandler {
	return &VoteHandler{votes: services.NewVoteService(db)}
}

// CastVote casts, toggles off or switches the caller's vote on a comment
func (h *VoteHandler) CastVote(c *gin.Context) {
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

	var req models.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	votes, err := h.votes.Cast(profileID, commentID, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "comment": votes})
}

// GetVotes returns the vote summary for a comment
func (h *VoteHandler) GetVotes(c *gin.Context) {
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

	summary, err := h.votes.Summary(profileID, commentID, c.Query("userId"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "votes": summary})
}

// RemoveVote deletes the caller's vote on a comment
func (h *VoteHandler) RemoveVote(c *gin.Context) {
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

	var req models.RemoveVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	votes, err := h.votes.Remove(profileID, commentID, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "comment": votes})
}
