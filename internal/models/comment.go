package models

import "time"

// DefaultAvatar is used when a comment is created without an authorAvatar.
const DefaultAvatar = "https://soulverse.boo.world/images/1.png"

type Comment struct {
	ID              int        `gorm:"primaryKey" json:"id"`
	ProfileID       int        `gorm:"not null;index:idx_comments_profile_parent" json:"profileId"`
	AuthorID        string     `gorm:"not null" json:"authorId"`
	AuthorName      string     `gorm:"not null" json:"authorName"`
	AuthorAvatar    string     `json:"authorAvatar"`
	Content         string     `gorm:"type:text;not null" json:"content"`
	ParentCommentID *int       `gorm:"index:idx_comments_profile_parent" json:"parentCommentId"`
	UpvoteCount     int        `gorm:"not null;default:0" json:"upvoteCount"`
	DownvoteCount   int        `gorm:"not null;default:0" json:"downvoteCount"`
	ReplyCount      int        `gorm:"not null;default:0" json:"replyCount"`
	IsEdited        bool       `gorm:"not null;default:false" json:"isEdited"`
	IsDeleted       bool       `gorm:"not null;default:false;index" json:"isDeleted"`
	EditedAt        *time.Time `json:"editedAt"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// CommentView is a comment as returned to clients, annotated with the
// requesting user's own vote (+1, -1 or 0).
type CommentView struct {
	Comment
	UserVote int `json:"userVote"`
}

type CreateCommentRequest struct {
	AuthorID        string `json:"authorId"`
	AuthorName      string `json:"authorName"`
	AuthorAvatar    string `json:"authorAvatar"`
	Content         string `json:"content"`
	ParentCommentID *int   `json:"parentCommentId"`
}

type EditCommentRequest struct {
	AuthorID string `json:"authorId"`
	Content  string `json:"content"`
}

type DeleteCommentRequest struct {
	AuthorID string `json:"authorId"`
}

// SortKind selects the ordering of a comment listing.
type SortKind string

const (
	SortNewest      SortKind = "newest"
	SortOldest      SortKind = "oldest"
	SortTopRated    SortKind = "toprated"
	SortMostReplies SortKind = "mostreplies"
)

// ListOptions carries every recognized listing option with its default.
// A nil ParentCommentID means "top-level comments only".
type ListOptions struct {
	SortBy          SortKind
	ParentCommentID *int
	UserID          string
	Page            int
	Limit           int
}

// DefaultListOptions returns the options applied when a query parameter is absent.
func DefaultListOptions() ListOptions {
	return ListOptions{
		SortBy: SortNewest,
		Page:   1,
		Limit:  20,
	}
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}
