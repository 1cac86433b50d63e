package repositories

import "context"

// CreateSession issues a new opaque token for userID. Tokens never expire; they
// are removed only by DeleteSession.
func (s *MemoryStore) CreateSession(_ context.Context, userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return "", ErrUserNotFound
	}
	token := newID()
	s.sessions[token] = userID
	return token, nil
}

func (s *MemoryStore) GetUserIDByToken(_ context.Context, token string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, ok := s.sessions[token]
	if !ok {
		return "", ErrSessionNotFound
	}
	return userID, nil
}

func (s *MemoryStore) DeleteSession(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}
