package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/soulverse/profile-server/internal/apierror"
	"github.com/soulverse/profile-server/internal/models"
)

// VoteService runs the cast/toggle/switch/remove protocol against the vote
// ledger and propagates counter deltas to the comment's cached counters.
// Every counter mutation is a relative update applied at the storage layer,
// in the same transaction as the vote row mutation.
type VoteService struct {
	db *gorm.DB
}

func NewVoteService(db *gorm.DB) *VoteService {
	return &VoteService{db: db}
}

func counterColumn(voteType int) string {
	if voteType == models.Upvote {
		return "upvote_count"
	}
	return "downvote_count"
}

func incrementCounter(tx *gorm.DB, commentID, voteType int) error {
	col := counterColumn(voteType)
	return tx.Model(&models.Comment{}).
		Where("id = ?", commentID).
		UpdateColumn(col, gorm.Expr(col+" + ?", 1)).Error
}

// decrementCounter floors the counter at 0 on every removal path.
func decrementCounter(tx *gorm.DB, commentID, voteType int) error {
	col := counterColumn(voteType)
	return tx.Model(&models.Comment{}).
		Where("id = ? AND "+col+" > 0", commentID).
		UpdateColumn(col, gorm.Expr(col+" - ?", 1)).Error
}

// Cast applies one step of the vote state machine: voting from no prior vote
// records it, repeating the same direction removes it, and voting the
// opposite direction switches it.
func (s *VoteService) Cast(profileID, commentID int, req models.CastVoteRequest) (*models.CommentVotes, error) {
	if req.UserID == "" || (req.VoteType != models.Upvote && req.VoteType != models.Downvote) {
		return nil, apierror.NewValidation("Missing or invalid required fields: userId, voteType (1 or -1)")
	}

	var commentCount int64
	err := s.db.Model(&models.Comment{}).
		Where("id = ? AND profile_id = ? AND is_deleted = ?", commentID, profileID, false).
		Count(&commentCount).Error
	if err != nil {
		return nil, err
	}
	if commentCount == 0 {
		return nil, apierror.NewNotFound("Comment not found")
	}

	userVote := 0

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Vote
		findErr := tx.
			Where("comment_id = ? AND user_id = ?", commentID, req.UserID).
			First(&existing).Error

		switch {
		case findErr == nil && existing.VoteType == req.VoteType:
			// Toggle off: same direction removes the vote.
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			userVote = 0
			return decrementCounter(tx, commentID, req.VoteType)

		case findErr == nil:
			// Switch direction.
			previous := existing.VoteType
			existing.VoteType = req.VoteType
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			if err := decrementCounter(tx, commentID, previous); err != nil {
				return err
			}
			userVote = req.VoteType
			return incrementCounter(tx, commentID, req.VoteType)

		case errors.Is(findErr, gorm.ErrRecordNotFound):
			vote := models.Vote{
				CommentID: commentID,
				UserID:    req.UserID,
				VoteType:  req.VoteType,
			}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			userVote = req.VoteType
			return incrementCounter(tx, commentID, req.VoteType)

		default:
			return findErr
		}
	})
	if err != nil {
		return nil, err
	}

	return s.commentVotes(commentID, userVote)
}

// Summary returns the aggregate counters plus the caller's own vote.
func (s *VoteService) Summary(profileID, commentID int, userID string) (*models.VoteSummary, error) {
	var comment models.Comment
	err := s.db.
		Where("id = ? AND profile_id = ? AND is_deleted = ?", commentID, profileID, false).
		First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NewNotFound("Comment not found")
	}
	if err != nil {
		return nil, err
	}

	userVote := 0
	if userID != "" {
		var vote models.Vote
		err := s.db.
			Where("comment_id = ? AND user_id = ?", commentID, userID).
			First(&vote).Error
		if err == nil {
			userVote = vote.VoteType
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return &models.VoteSummary{
		UpvoteCount:   comment.UpvoteCount,
		DownvoteCount: comment.DownvoteCount,
		NetScore:      comment.UpvoteCount - comment.DownvoteCount,
		UserVote:      userVote,
	}, nil
}

// Remove deletes the caller's vote outright, regardless of direction.
func (s *VoteService) Remove(profileID, commentID int, req models.RemoveVoteRequest) (*models.CommentVotes, error) {
	if req.UserID == "" {
		return nil, apierror.NewValidation("userId is required")
	}

	var commentCount int64
	err := s.db.Model(&models.Comment{}).
		Where("id = ? AND profile_id = ? AND is_deleted = ?", commentID, profileID, false).
		Count(&commentCount).Error
	if err != nil {
		return nil, err
	}
	if commentCount == 0 {
		return nil, apierror.NewNotFound("Comment not found")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var vote models.Vote
		findErr := tx.
			Where("comment_id = ? AND user_id = ?", commentID, req.UserID).
			First(&vote).Error
		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound("No vote found for this user on this comment")
		}
		if findErr != nil {
			return findErr
		}

		if err := tx.Delete(&vote).Error; err != nil {
			return err
		}
		return decrementCounter(tx, commentID, vote.VoteType)
	})
	if err != nil {
		return nil, err
	}

	return s.commentVotes(commentID, 0)
}

func (s *VoteService) commentVotes(commentID, userVote int) (*models.CommentVotes, error) {
	var comment models.Comment
	if err := s.db.First(&comment, commentID).Error; err != nil {
		return nil, err
	}
	return &models.CommentVotes{
		ID:            comment.ID,
		UpvoteCount:   comment.UpvoteCount,
		DownvoteCount: comment.DownvoteCount,
		UserVote:      userVote,
	}, nil
}
