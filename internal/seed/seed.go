// Package seed loads the demo dataset served by a fresh server.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/anonto42/bluo/backend/internal/clock"
	"github.com/anonto42/bluo/backend/internal/models"
	"github.com/anonto42/bluo/backend/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "password"

func at(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(fmt.Sprintf("seed: bad timestamp %q: %v", value, err))
	}
	return t
}

// Load populates store with the demo users, posts, notifications,
// conversations, achievements, leaderboard and stories. Story ages are
// relative to clk.
func Load(ctx context.Context, store *repositories.MemoryStore, clk clock.Clock) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	for _, u := range users(string(hash)) {
		if _, err := store.CreateUser(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Username, err)
		}
	}

	for _, p := range posts() {
		store.SeedPost(p)
	}

	for _, n := range notifications() {
		if _, err := store.AddNotification(ctx, "1", n); err != nil {
			return fmt.Errorf("seed notification %s: %w", n.ID, err)
		}
	}

	for _, c := range conversations() {
		store.AddConversation("1", c)
	}

	store.SetAchievements(achievements())

	store.AddLeaderboardEntry(repositories.LeaderboardParams{Rank: 1, UserID: "3", Points: 9800})
	store.AddLeaderboardEntry(repositories.LeaderboardParams{Rank: 2, UserID: "2", Points: 5200})
	store.AddLeaderboardEntry(repositories.LeaderboardParams{Rank: 3, UserID: "1", Points: 2450})

	now := clk.Now()
	for _, st := range stories(now) {
		store.AddStory(st)
	}
	return nil
}

func users(passwordHash string) []models.User {
	return []models.User{
		{
			ID: "1", Username: "johndoe", Email: "john@example.com", Password: passwordHash,
			DisplayName: "John Doe", Bio: "Creative thinker | Tech enthusiast | Coffee lover ☕",
			FollowersCount: 1240, FollowingCount: 530, PostsCount: 89, Points: 2450,
			Badges: []models.Badge{
				{ID: "b1", Name: "Early Adopter", Description: "Joined in the first month", Icon: "🌟"},
				{ID: "b2", Name: "Social Butterfly", Description: "100+ followers", Icon: "🦋"},
			},
			SubscriptionTier: models.TierFree,
			CreatedAt:        at("2025-01-15T10:00:00Z"),
		},
		{
			ID: "2", Username: "janedoe", Email: "jane@example.com", Password: passwordHash,
			DisplayName: "Jane Doe", Bio: "Designer & artist 🎨",
			FollowersCount: 3500, FollowingCount: 200, PostsCount: 156, Points: 5200,
			Badges: []models.Badge{
				{ID: "b3", Name: "Top Creator", Description: "Top 10 on leaderboard", Icon: "🏆"},
			},
			SubscriptionTier: models.TierPro,
			CreatedAt:        at("2025-02-01T10:00:00Z"),
			IsFollowing:      true,
		},
		{
			ID: "3", Username: "alexsmith", Email: "alex@example.com", Password: passwordHash,
			DisplayName: "Alex Smith", Bio: "Photographer | Traveler 📸",
			FollowersCount: 8200, FollowingCount: 450, PostsCount: 312, Points: 9800,
			Badges: []models.Badge{
				{ID: "b4", Name: "Influencer", Description: "5000+ followers", Icon: "⭐"},
				{ID: "b3", Name: "Top Creator", Description: "Top 10 on leaderboard", Icon: "🏆"},
			},
			SubscriptionTier: models.TierPremium,
			CreatedAt:        at("2025-01-05T10:00:00Z"),
		},
	}
}

func posts() []repositories.PostParams {
	return []repositories.PostParams{
		{
			ID: "p1", AuthorID: "2",
			Content: "Just finished a new design project! What do you think? 🎨✨",
			Likes:   42,
			Comments: []repositories.CommentParams{{
				ID: "c1", AuthorID: "1", Content: "Looks amazing! Great work! 🙌",
				Likes: 5, CreatedAt: at("2026-02-17T12:00:00Z"),
			}},
			Shares:    8,
			CreatedAt: at("2026-02-17T10:00:00Z"),
		},
		{
			ID: "p2", AuthorID: "3",
			Content:   "Captured this beautiful sunset during my trip to the mountains. Nature never ceases to amaze me. 🌄",
			Likes:     128,
			LikedBy:   []string{"1"},
			Shares:    24,
			CreatedAt: at("2026-02-16T18:30:00Z"),
		},
		{
			ID: "p3", AuthorID: "1",
			Content:   "Excited to share my thoughts on the future of AI in creative workflows! 🤖",
			Likes:     15,
			Shares:    3,
			CreatedAt: at("2026-02-16T09:00:00Z"),
		},
	}
}

func notifications() []repositories.NotificationParams {
	return []repositories.NotificationParams{
		{
			ID: "n1", Type: models.NotificationLike, FromUserID: "2", Message: "liked your post",
			PostID: "p3", CreatedAt: at("2026-02-17T14:00:00Z"),
		},
		{
			ID: "n2", Type: models.NotificationFollow, FromUserID: "3", Message: "started following you",
			CreatedAt: at("2026-02-17T12:00:00Z"),
		},
		{
			ID: "n3", Type: models.NotificationComment, FromUserID: "2", Message: "commented on your post",
			Read: true, PostID: "p3", CreatedAt: at("2026-02-16T10:00:00Z"),
		},
		{
			ID: "n4", Type: models.NotificationAchievement, FromUserID: "1",
			Message: `You earned the "Social Butterfly" badge!`,
			Read:    true, CreatedAt: at("2026-02-15T08:00:00Z"),
		},
	}
}

func conversations() []repositories.ConversationParams {
	return []repositories.ConversationParams{
		{
			ID: "conv1", ParticipantID: "2",
			LastMessage: models.Message{
				ID: "m1", SenderID: "2", ReceiverID: "1",
				Content:   "Hey! Did you see my new design?",
				CreatedAt: at("2026-02-17T15:00:00Z"),
			},
			UnreadCount: 2,
		},
		{
			ID: "conv2", ParticipantID: "3",
			LastMessage: models.Message{
				ID: "m2", SenderID: "1", ReceiverID: "3",
				Content:   "Those photos are incredible!",
				Read:      true,
				CreatedAt: at("2026-02-16T20:00:00Z"),
			},
		},
	}
}

func achievements() []models.Achievement {
	return []models.Achievement{
		{
			ID: "a1", Name: "First Post", Description: "Create your first post", Icon: "📝",
			RequiredPoints: 10,
			Badge:          models.Badge{ID: "b5", Name: "First Post", Description: "Created first post", Icon: "📝"},
			Progress:       100, Completed: true,
		},
		{
			ID: "a2", Name: "Social Butterfly", Description: "Get 100 followers", Icon: "🦋",
			RequiredPoints: 500,
			Badge:          models.Badge{ID: "b2", Name: "Social Butterfly", Description: "100+ followers", Icon: "🦋"},
			Progress:       100, Completed: true,
		},
		{
			ID: "a3", Name: "Viral Sensation", Description: "Get 1000 likes on a single post", Icon: "🔥",
			RequiredPoints: 1000,
			Badge:          models.Badge{ID: "b6", Name: "Viral Sensation", Description: "1000 likes on a post", Icon: "🔥"},
			Progress:       42,
		},
		{
			ID: "a4", Name: "Consistent Creator", Description: "Post every day for 30 days", Icon: "📅",
			RequiredPoints: 750,
			Badge:          models.Badge{ID: "b7", Name: "Consistent Creator", Description: "30-day streak", Icon: "📅"},
			Progress:       60,
		},
		{
			ID: "a5", Name: "Community Leader", Description: "Earn 10,000 total points", Icon: "👑",
			RequiredPoints: 2000,
			Badge:          models.Badge{ID: "b8", Name: "Community Leader", Description: "10K points", Icon: "👑"},
			Progress:       25,
		},
	}
}

func stories(now time.Time) []repositories.StoryParams {
	return []repositories.StoryParams{
		{AuthorID: "2", Content: "Working on something exciting! Stay tuned 🎨", CreatedAt: now.Add(-2 * time.Hour)},
		{AuthorID: "3", Content: "Golden hour at the summit 🏔️✨", CreatedAt: now.Add(-5 * time.Hour)},
		{AuthorID: "2", Content: "New palette drop, thoughts? 🎨💜", CreatedAt: now.Add(-8 * time.Hour)},
	}
}
