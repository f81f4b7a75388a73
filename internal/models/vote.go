package models

import "time"

// Vote tracks a single user's judgment on one comment. The composite unique
// index enforces at most one vote per (comment, user) pair.
type Vote struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	CommentID int       `gorm:"not null;uniqueIndex:idx_votes_comment_user" json:"commentId"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_votes_comment_user" json:"userId"`
	VoteType  int       `gorm:"not null" json:"voteType"` // +1 or -1
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const (
	Upvote   = 1
	Downvote = -1
)

type CastVoteRequest struct {
	UserID   string `json:"userId"`
	VoteType int    `json:"voteType"`
}

type RemoveVoteRequest struct {
	UserID string `json:"userId"`
}

// CommentVotes is the counter snapshot returned after a vote mutation.
type CommentVotes struct {
	ID            int `json:"id"`
	UpvoteCount   int `json:"upvoteCount"`
	DownvoteCount int `json:"downvoteCount"`
	UserVote      int `json:"userVote"`
}

// VoteSummary is the aggregate returned by the vote summary endpoint.
type VoteSummary struct {
	UpvoteCount   int `json:"upvoteCount"`
	DownvoteCount int `json:"downvoteCount"`
	NetScore      int `json:"netScore"`
	UserVote      int `json:"userVote"`
}
