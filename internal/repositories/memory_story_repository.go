package repositories

import (
	"context"
	"slices"
	"time"

	"github.com/anonto42/bluo/backend/internal/models"
)

type storyRecord struct {
	id        string
	authorID  string
	content   string
	createdAt time.Time
	expiresAt time.Time
	viewedBy  memberSet
}

// StoryParams seeds a story. A zero ExpiresAt means CreatedAt plus StoryTTL.
type StoryParams struct {
	ID        string
	AuthorID  string
	Content   string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s *MemoryStore) AddStory(params StoryParams) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addStoryLocked(params).id
}

func (s *MemoryStore) addStoryLocked(params StoryParams) *storyRecord {
	created := orNow(params.CreatedAt, s.now())
	expires := params.ExpiresAt
	if expires.IsZero() {
		expires = created.Add(StoryTTL)
	}
	st := &storyRecord{
		id:        orNewID(params.ID),
		authorID:  params.AuthorID,
		content:   params.Content,
		createdAt: created,
		expiresAt: expires.UTC(),
		viewedBy:  memberSet{},
	}
	s.stories = append(s.stories, st)
	return st
}

// GetStories returns stories that have not expired, newest first.
func (s *MemoryStore) GetStories(_ context.Context, requesterID string) ([]models.Story, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	live := make([]*storyRecord, 0, len(s.stories))
	for _, st := range s.stories {
		if st.expiresAt.After(now) {
			live = append(live, st)
		}
	}
	slices.SortStableFunc(live, func(a, b *storyRecord) int {
		return b.createdAt.Compare(a.createdAt)
	})

	out := make([]models.Story, 0, len(live))
	for _, st := range live {
		out = append(out, s.formatStoryLocked(st, requesterID))
	}
	return out, nil
}

func (s *MemoryStore) CreateStory(_ context.Context, authorID, content string) (*models.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[authorID]; !ok {
		return nil, ErrUserNotFound
	}
	st := s.addStoryLocked(StoryParams{AuthorID: authorID, Content: content})
	story := s.formatStoryLocked(st, authorID)
	return &story, nil
}

// MarkStoryViewed records that userID viewed the story. Viewing is never undone.
func (s *MemoryStore) MarkStoryViewed(_ context.Context, storyID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.stories, func(st *storyRecord) bool { return st.id == storyID })
	if idx < 0 {
		return ErrStoryNotFound
	}
	s.stories[idx].viewedBy.add(userID)
	return nil
}

func (s *MemoryStore) formatStoryLocked(st *storyRecord, requesterID string) models.Story {
	return models.Story{
		ID:        st.id,
		Author:    s.publicUserLocked(st.authorID),
		Content:   st.content,
		CreatedAt: st.createdAt,
		ExpiresAt: st.expiresAt,
		Viewed:    st.viewedBy.has(requesterID),
	}
}
