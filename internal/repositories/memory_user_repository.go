package repositories

import (
	"context"
	"strings"

	"github.com/anonto42/bluo/backend/internal/models"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser stores a new user, filling in id, display name, tier and creation
// time when they are empty. The email must not already be registered.
func (s *MemoryStore) CreateUser(_ context.Context, user models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalizeEmail(user.Email)
	if _, taken := s.userIDsByEmail[key]; taken {
		return nil, ErrEmailTaken
	}

	user.ID = orNewID(user.ID)
	user.Email = strings.TrimSpace(user.Email)
	if user.DisplayName == "" {
		user.DisplayName = user.Username
	}
	if !user.SubscriptionTier.Valid() {
		user.SubscriptionTier = models.TierFree
	}
	if user.Badges == nil {
		user.Badges = []models.Badge{}
	}
	user.CreatedAt = orNow(user.CreatedAt, s.now())

	stored := user.Clone()
	s.users[stored.ID] = stored
	s.userIDsByEmail[key] = stored.ID
	return stored.Clone(), nil
}

func (s *MemoryStore) GetUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u.Clone(), nil
}

func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.userIDsByEmail[normalizeEmail(email)]
	if !ok {
		return nil, ErrUserNotFound
	}
	return s.users[id].Clone(), nil
}

// UpdateProfile applies the non-nil fields of req to the user.
func (s *MemoryStore) UpdateProfile(_ context.Context, id string, req models.UpdateProfileRequest) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	if req.DisplayName != nil {
		u.DisplayName = strings.TrimSpace(*req.DisplayName)
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		u.AvatarURL = *req.AvatarURL
	}
	if req.CoverURL != nil {
		u.CoverURL = *req.CoverURL
	}
	return u.Clone(), nil
}

func (s *MemoryStore) SetSubscriptionTier(_ context.Context, id string, tier models.SubscriptionTier) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	u.SubscriptionTier = tier
	return u.Clone(), nil
}
