package repositories

import (
	"context"

	"github.com/anonto42/bluo/backend/internal/models"
)

type conversationRecord struct {
	id            string
	participantID string
	lastMessage   models.Message
	unreadCount   int
}

// ConversationParams seeds a conversation preview for one user.
type ConversationParams struct {
	ID            string
	ParticipantID string
	LastMessage   models.Message
	UnreadCount   int
}

func (s *MemoryStore) AddConversation(userID string, params ConversationParams) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversations[userID] = append(s.conversations[userID], &conversationRecord{
		id:            orNewID(params.ID),
		participantID: params.ParticipantID,
		lastMessage:   params.LastMessage,
		unreadCount:   params.UnreadCount,
	})
}

// GetConversations returns the user's conversations in the order they were added.
func (s *MemoryStore) GetConversations(_ context.Context, userID string) ([]models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.conversations[userID]
	out := make([]models.Conversation, 0, len(list))
	for _, c := range list {
		out = append(out, models.Conversation{
			ID:          c.id,
			Participant: s.publicUserLocked(c.participantID),
			LastMessage: c.lastMessage,
			UnreadCount: c.unreadCount,
		})
	}
	return out, nil
}
