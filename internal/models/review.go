package models

import (
	"time"
)

type Review struct {
	ID             int       `json:"id"`
	BusinessUserID int       `json:"business_user"`
	ReviewerID     int       `json:"reviewer"`
	Rating         int       `json:"rating"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ReviewPatch struct {
	Rating      *int    `json:"rating"`
	Description *string `json:"description"`
}

type ReviewFilterRequest struct {
	BusinessUserID int
	ReviewerID     int
	Ordering       string
}
