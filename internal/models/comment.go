package models

import "time"

// Comment is the formatted view of a comment on a post
type Comment struct {
	ID        string      `json:"id"`
	Author    *PublicUser `json:"author"`
	PostID    string      `json:"postId"`
	Content   string      `json:"content"`
	Likes     int         `json:"likes"`
	IsLiked   bool        `json:"isLiked"`
	CreatedAt time.Time   `json:"createdAt"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content string `json:"content" validate:"max=500"`
}
