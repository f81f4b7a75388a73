package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/soulverse/profile-server/internal/apierror"
	"github.com/soulverse/profile-server/internal/models"
)

// CommentService owns the comment lifecycle: creation with threaded replies,
// listing, fetch-with-replies, edits and soft deletion. Reply counters are
// maintained incrementally with atomic relative updates.
type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// findLive loads a non-deleted comment scoped to a profile. Soft-deleted
// comments are invisible to every operation, including edit and delete.
func (s *CommentService) findLive(profileID, commentID int) (*models.Comment, error) {
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
	return &comment, nil
}

func (s *CommentService) Create(profileID int, req models.CreateCommentRequest) (*models.CommentView, error) {
	content := strings.TrimSpace(req.Content)
	if req.AuthorID == "" || req.AuthorName == "" || content == "" {
		return nil, apierror.NewValidation("Missing required fields: authorId, authorName, content")
	}

	avatar := req.AuthorAvatar
	if avatar == "" {
		avatar = models.DefaultAvatar
	}

	if req.ParentCommentID != nil {
		var parentCount int64
		err := s.db.Model(&models.Comment{}).
			Where("id = ? AND is_deleted = ?", *req.ParentCommentID, false).
			Count(&parentCount).Error
		if err != nil {
			return nil, err
		}
		if parentCount == 0 {
			return nil, apierror.NewNotFound("Parent comment not found")
		}
	}

	comment := models.Comment{
		ProfileID:       profileID,
		AuthorID:        req.AuthorID,
		AuthorName:      req.AuthorName,
		AuthorAvatar:    avatar,
		Content:         content,
		ParentCommentID: req.ParentCommentID,
	}

	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	if comment.ParentCommentID != nil {
		err := s.db.Model(&models.Comment{}).
			Where("id = ?", *comment.ParentCommentID).
			UpdateColumn("reply_count", gorm.Expr("reply_count + ?", 1)).Error
		if err != nil {
			return nil, err
		}
	}

	// The caller's own vote is unknown at creation time, always reported as 0.
	return &models.CommentView{Comment: comment}, nil
}

func (s *CommentService) List(profileID int, opts models.ListOptions) ([]models.CommentView, models.Pagination, error) {
	// Fresh statement per query; reusing a chain after Count is unsafe in gorm.
	filtered := func() *gorm.DB {
		query := s.db.Model(&models.Comment{}).
			Where("profile_id = ? AND is_deleted = ?", profileID, false)
		if opts.ParentCommentID != nil {
			return query.Where("parent_comment_id = ?", *opts.ParentCommentID)
		}
		return query.Where("parent_comment_id IS NULL")
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, models.Pagination{}, err
	}

	var order string
	switch opts.SortBy {
	case models.SortOldest:
		order = "created_at ASC"
	case models.SortTopRated:
		order = "upvote_count DESC, downvote_count ASC"
	case models.SortMostReplies:
		order = "reply_count DESC"
	default:
		order = "created_at DESC"
	}

	offset := (opts.Page - 1) * opts.Limit

	var comments []models.Comment
	err := filtered().Order(order).Offset(offset).Limit(opts.Limit).Find(&comments).Error
	if err != nil {
		return nil, models.Pagination{}, err
	}

	views, err := s.annotateUserVotes(comments, opts.UserID)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	pagination := models.Pagination{
		Page:  opts.Page,
		Limit: opts.Limit,
		Total: total,
		Pages: int(math.Ceil(float64(total) / float64(opts.Limit))),
	}

	return views, pagination, nil
}

// GetWithReplies returns a comment and all of its non-deleted replies,
// unpaginated and unsorted.
func (s *CommentService) GetWithReplies(profileID, commentID int, userID string) (*models.CommentView, []models.CommentView, error) {
	comment, err := s.findLive(profileID, commentID)
	if err != nil {
		return nil, nil, err
	}

	var replies []models.Comment
	err = s.db.
		Where("parent_comment_id = ? AND is_deleted = ?", comment.ID, false).
		Find(&replies).Error
	if err != nil {
		return nil, nil, err
	}

	annotated, err := s.annotateUserVotes(append([]models.Comment{*comment}, replies...), userID)
	if err != nil {
		return nil, nil, err
	}

	return &annotated[0], annotated[1:], nil
}

func (s *CommentService) Edit(profileID, commentID int, req models.EditCommentRequest) (*models.CommentView, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apierror.NewValidation("Content is required")
	}

	comment, err := s.findLive(profileID, commentID)
	if err != nil {
		return nil, err
	}

	if comment.AuthorID != req.AuthorID {
		return nil, apierror.NewForbidden("You can only edit your own comments")
	}

	now := time.Now().UTC()
	comment.Content = content
	comment.IsEdited = true
	comment.EditedAt = &now

	if err := s.db.Save(comment).Error; err != nil {
		return nil, err
	}

	return &models.CommentView{Comment: *comment}, nil
}

// Delete soft-deletes a comment. The row and its counters stay in storage,
// but the comment disappears from every read path.
func (s *CommentService) Delete(profileID, commentID int, req models.DeleteCommentRequest) error {
	comment, err := s.findLive(profileID, commentID)
	if err != nil {
		return err
	}

	if comment.AuthorID != req.AuthorID {
		return apierror.NewForbidden("You can only delete your own comments")
	}

	err = s.db.Model(&models.Comment{}).
		Where("id = ?", comment.ID).
		UpdateColumn("is_deleted", true).Error
	if err != nil {
		return err
	}

	if comment.ParentCommentID != nil {
		// Conditional decrement keeps reply_count from going negative.
		err = s.db.Model(&models.Comment{}).
			Where("id = ? AND reply_count > 0", *comment.ParentCommentID).
			UpdateColumn("reply_count", gorm.Expr("reply_count - ?", 1)).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// annotateUserVotes attaches the caller's own vote to each comment with a
// single batched lookup. With no userID every comment reports 0.
func (s *CommentService) annotateUserVotes(comments []models.Comment, userID string) ([]models.CommentView, error) {
	views := make([]models.CommentView, 0, len(comments))

	if userID == "" || len(comments) == 0 {
		for _, c := range comments {
			views = append(views, models.CommentView{Comment: c})
		}
		return views, nil
	}

	ids := make([]int, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}

	var votes []models.Vote
	err := s.db.
		Where("user_id = ? AND comment_id IN ?", userID, ids).
		Find(&votes).Error
	if err != nil {
		return nil, err
	}

	byComment := make(map[int]int, len(votes))
	for _, v := range votes {
		byComment[v.CommentID] = v.VoteType
	}

	for _, c := range comments {
		views = append(views, models.CommentView{Comment: c, UserVote: byComment[c.ID]})
	}
	return views, nil
}
