package repositories

import (
	"context"
	"slices"
	"time"

	"github.com/anonto42/bluo/backend/internal/models"
)

type notificationRecord struct {
	id         string
	kind       models.NotificationType
	fromUserID string
	message    string
	read       bool
	postID     string
	createdAt  time.Time
}

// NotificationParams describes a notification to deliver to a user.
type NotificationParams struct {
	ID         string
	Type       models.NotificationType
	FromUserID string
	Message    string
	Read       bool
	PostID     string
	CreatedAt  time.Time
}

func (s *MemoryStore) AddNotification(_ context.Context, userID string, params NotificationParams) (*models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := &notificationRecord{
		id:         orNewID(params.ID),
		kind:       params.Type,
		fromUserID: params.FromUserID,
		message:    params.Message,
		read:       params.Read,
		postID:     params.PostID,
		createdAt:  orNow(params.CreatedAt, s.now()),
	}
	s.notifications[userID] = append(s.notifications[userID], n)

	out := s.formatNotificationLocked(n)
	return &out, nil
}

// GetNotifications returns the user's notifications, newest first.
func (s *MemoryStore) GetNotifications(_ context.Context, userID string) ([]models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := slices.Clone(s.notifications[userID])
	slices.SortStableFunc(list, func(a, b *notificationRecord) int {
		return b.createdAt.Compare(a.createdAt)
	})

	out := make([]models.Notification, 0, len(list))
	for _, n := range list {
		out = append(out, s.formatNotificationLocked(n))
	}
	return out, nil
}

func (s *MemoryStore) GetUnreadCount(_ context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.notifications[userID] {
		if !n.read {
			count++
		}
	}
	return count, nil
}

// MarkNotificationRead marks one of the user's notifications read. A
// notification belonging to another user is reported as not found.
func (s *MemoryStore) MarkNotificationRead(_ context.Context, userID, notificationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.notifications[userID] {
		if n.id == notificationID {
			n.read = true
			return nil
		}
	}
	return ErrNotificationNotFound
}

func (s *MemoryStore) MarkAllNotificationsRead(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.notifications[userID] {
		n.read = true
	}
	return nil
}

func (s *MemoryStore) formatNotificationLocked(n *notificationRecord) models.Notification {
	return models.Notification{
		ID:        n.id,
		Type:      n.kind,
		FromUser:  s.publicUserLocked(n.fromUserID),
		Message:   n.message,
		Read:      n.read,
		PostID:    n.postID,
		CreatedAt: n.createdAt,
	}
}
