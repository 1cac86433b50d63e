package repositories

import (
	"cmp"
	"context"
	"slices"

	"github.com/anonto42/bluo/backend/internal/models"
)

type leaderboardRecord struct {
	rank   int
	userID string
	points int
}

// LeaderboardParams seeds one leaderboard row.
type LeaderboardParams struct {
	Rank   int
	UserID string
	Points int
}

// SetAchievements replaces the global achievement catalog.
func (s *MemoryStore) SetAchievements(achievements []models.Achievement) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.achievements = slices.Clone(achievements)
}

func (s *MemoryStore) GetAchievements(_ context.Context) ([]models.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := slices.Clone(s.achievements)
	if out == nil {
		out = []models.Achievement{}
	}
	return out, nil
}

func (s *MemoryStore) AddLeaderboardEntry(params LeaderboardParams) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leaderboard = append(s.leaderboard, &leaderboardRecord{
		rank:   params.Rank,
		userID: params.UserID,
		points: params.Points,
	})
}

// GetLeaderboard returns the entries sorted by rank ascending.
func (s *MemoryStore) GetLeaderboard(_ context.Context) ([]models.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := slices.Clone(s.leaderboard)
	slices.SortStableFunc(entries, func(a, b *leaderboardRecord) int {
		return cmp.Compare(a.rank, b.rank)
	})

	out := make([]models.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.LeaderboardEntry{
			Rank:   e.rank,
			User:   s.publicUserLocked(e.userID),
			Points: e.points,
		})
	}
	return out, nil
}

// AddPoints credits amount to the user's balance and returns the new balance.
// If the user is on the leaderboard the entry follows the balance and all
// entries are re-ranked by points.
func (s *MemoryStore) AddPoints(_ context.Context, userID string, amount int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return 0, ErrUserNotFound
	}
	u.Points += amount

	idx := slices.IndexFunc(s.leaderboard, func(e *leaderboardRecord) bool { return e.userID == userID })
	if idx >= 0 {
		s.leaderboard[idx].points = u.Points
		s.rerankLocked()
	}
	return u.Points, nil
}

// rerankLocked orders entries by points descending, ties keep their previous
// rank order, and assigns ranks 1..n.
func (s *MemoryStore) rerankLocked() {
	slices.SortStableFunc(s.leaderboard, func(a, b *leaderboardRecord) int {
		if c := cmp.Compare(b.points, a.points); c != 0 {
			return c
		}
		return cmp.Compare(a.rank, b.rank)
	})
	for i, e := range s.leaderboard {
		e.rank = i + 1
	}
}
