package models

import "time"

// Story is the formatted view of an ephemeral story for one requester
type Story struct {
	ID        string      `json:"id"`
	Author    *PublicUser `json:"author"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"createdAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
	Viewed    bool        `json:"viewed"`
}

// CreateStoryRequest defines the request body for creating a story
type CreateStoryRequest struct {
	Content string `json:"content" validate:"max=500"`
}
