package models

import "time"

// Post is the formatted view of a post for one requester
type Post struct {
	ID        string      `json:"id"`
	Author    *PublicUser `json:"author"`
	Content   string      `json:"content"`
	Images    []string    `json:"images"`
	Videos    []string    `json:"videos"`
	Likes     int         `json:"likes"`
	Comments  []Comment   `json:"comments"`
	Shares    int         `json:"shares"`
	IsLiked   bool        `json:"isLiked"`
	IsShared  bool        `json:"isShared"`
	CreatedAt time.Time   `json:"createdAt"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Content string   `json:"content" validate:"max=2000"`
	Images  []string `json:"images,omitempty" validate:"omitempty,max=10,dive,url"`
	Videos  []string `json:"videos,omitempty" validate:"omitempty,max=4,dive,url"`
}
