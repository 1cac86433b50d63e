package repositories

import (
	"sync"
	"time"

	"github.com/anonto42/bluo/backend/internal/clock"
	"github.com/anonto42/bluo/backend/internal/models"
	"github.com/google/uuid"
)

// StoryTTL is how long a story stays visible when no expiry is given.
const StoryTTL = 24 * time.Hour

// MemoryStore is the single in-process aggregate holding every entity of the
// application. Nothing is persisted; a restart discards all state. It is safe
// for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	clock clock.Clock

	users          map[string]*models.User
	userIDsByEmail map[string]string
	sessions       map[string]string
	posts          []*postRecord
	postsByID      map[string]*postRecord
	notifications  map[string][]*notificationRecord
	conversations  map[string][]*conversationRecord
	achievements   []models.Achievement
	leaderboard    []*leaderboardRecord
	stories        []*storyRecord
}

var _ UserRepository = (*MemoryStore)(nil)
var _ SessionRepository = (*MemoryStore)(nil)
var _ PostRepository = (*MemoryStore)(nil)
var _ NotificationRepository = (*MemoryStore)(nil)
var _ ConversationRepository = (*MemoryStore)(nil)
var _ GamificationRepository = (*MemoryStore)(nil)
var _ StoryRepository = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store. A nil clock means wall-clock UTC.
func NewMemoryStore(clk clock.Clock) *MemoryStore {
	if clk == nil {
		clk = clock.NewReal()
	}
	return &MemoryStore{
		clock:          clk,
		users:          make(map[string]*models.User),
		userIDsByEmail: make(map[string]string),
		sessions:       make(map[string]string),
		postsByID:      make(map[string]*postRecord),
		notifications:  make(map[string][]*notificationRecord),
		conversations:  make(map[string][]*conversationRecord),
	}
}

func newID() string {
	return uuid.NewString()
}

// memberSet records which users liked, shared or viewed something.
type memberSet map[string]struct{}

func newMemberSet(ids []string) memberSet {
	s := make(memberSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s memberSet) has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s memberSet) add(id string) {
	s[id] = struct{}{}
}

// toggle flips membership of id and reports whether id is now a member.
func (s memberSet) toggle(id string) bool {
	if s.has(id) {
		delete(s, id)
		return false
	}
	s.add(id)
	return true
}

// toggleCounter flips membership and moves count with it. Counts never drop below zero.
func toggleCounter(set memberSet, count *int, userID string) bool {
	if set.toggle(userID) {
		*count++
		return true
	}
	*count = max(0, *count-1)
	return false
}

// publicUserLocked returns the projection of a user, or nil if the user is
// unknown. Callers hold s.mu.
func (s *MemoryStore) publicUserLocked(id string) *models.PublicUser {
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	pub := u.ToPublic()
	return &pub
}

func (s *MemoryStore) now() time.Time {
	return s.clock.Now()
}

func orNow(t, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}
	return t.UTC()
}

func orNewID(id string) string {
	if id == "" {
		return newID()
	}
	return id
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
