package models

import "time"

// NotificationType tags what triggered a notification
type NotificationType string

const (
	NotificationLike        NotificationType = "like"
	NotificationComment     NotificationType = "comment"
	NotificationFollow      NotificationType = "follow"
	NotificationShare       NotificationType = "share"
	NotificationAchievement NotificationType = "achievement"
	NotificationMessage     NotificationType = "message"
)

// Notification is the formatted view of a notification for its recipient
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	FromUser  *PublicUser      `json:"fromUser"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	PostID    string           `json:"postId,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

// UnreadCount is returned by the unread-count endpoint
type UnreadCount struct {
	Count int `json:"count"`
}
