package repositories

import (
	"context"
	"errors"

	"github.com/anonto42/bluo/backend/internal/models"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrSessionNotFound      = errors.New("session not found")
	ErrPostNotFound         = errors.New("post not found")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrStoryNotFound        = errors.New("story not found")
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, req models.UpdateProfileRequest) (*models.User, error)
	SetSubscriptionTier(ctx context.Context, id string, tier models.SubscriptionTier) (*models.User, error)
}

// SessionRepository maps opaque bearer tokens to user ids
type SessionRepository interface {
	CreateSession(ctx context.Context, userID string) (string, error)
	GetUserIDByToken(ctx context.Context, token string) (string, error)
	DeleteSession(ctx context.Context, token string) error
}

// PostRepository defines the interface for post, comment, like and share operations.
// Every read is formatted for the requesting user.
type PostRepository interface {
	GetPosts(ctx context.Context, requesterID string) ([]models.Post, error)
	GetPost(ctx context.Context, postID, requesterID string) (*models.Post, error)
	CreatePost(ctx context.Context, authorID string, req models.CreatePostRequest) (*models.Post, error)
	ToggleLike(ctx context.Context, postID, userID string) (*models.LikeResult, error)
	ToggleShare(ctx context.Context, postID, userID string) (*models.ShareResult, error)
	AddComment(ctx context.Context, postID, authorID, content string) (*models.Comment, error)
	ToggleCommentLike(ctx context.Context, postID, commentID, userID string) (*models.LikeResult, error)
}

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	AddNotification(ctx context.Context, userID string, params NotificationParams) (*models.Notification, error)
	GetNotifications(ctx context.Context, userID string) ([]models.Notification, error)
	GetUnreadCount(ctx context.Context, userID string) (int, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID string) error
	MarkAllNotificationsRead(ctx context.Context, userID string) error
}

// ConversationRepository defines the interface for direct-message previews
type ConversationRepository interface {
	GetConversations(ctx context.Context, userID string) ([]models.Conversation, error)
}

// GamificationRepository defines the interface for achievements, points and the leaderboard
type GamificationRepository interface {
	GetAchievements(ctx context.Context) ([]models.Achievement, error)
	GetLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
	AddPoints(ctx context.Context, userID string, amount int) (int, error)
}

// StoryRepository defines the interface for story operations
type StoryRepository interface {
	GetStories(ctx context.Context, requesterID string) ([]models.Story, error)
	CreateStory(ctx context.Context, authorID, content string) (*models.Story, error)
	MarkStoryViewed(ctx context.Context, storyID, userID string) error
}
