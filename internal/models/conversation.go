package models

import "time"

// Message is a single direct message. Only the last message of a conversation is kept.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Conversation is a direct-message preview
type Conversation struct {
	ID          string      `json:"id"`
	Participant *PublicUser `json:"participant"`
	LastMessage Message     `json:"lastMessage"`
	UnreadCount int         `json:"unreadCount"`
}
