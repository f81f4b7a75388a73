package models

import "time"

// Profile is the personality profile a comment thread hangs off of.
type Profile struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	MBTI        string    `gorm:"column:mbti" json:"mbti"`
	Enneagram   string    `json:"enneagram"`
	Variant     string    `json:"variant"`
	Tritype     int       `json:"tritype"`
	Socionics   string    `json:"socionics"`
	Sloan       string    `json:"sloan"`
	Psyche      string    `json:"psyche"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateProfileRequest struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MBTI        string `json:"mbti"`
	Enneagram   string `json:"enneagram"`
	Variant     string `json:"variant"`
	Tritype     int    `json:"tritype"`
	Socionics   string `json:"socionics"`
	Sloan       string `json:"sloan"`
	Psyche      string `json:"psyche"`
	Image       string `json:"image"`
}
