package seed

import (
	"context"
	"testing"
	"time"

	"github.com/anonto42/bluo/backend/internal/clock"
	"github.com/anonto42/bluo/backend/internal/models"
	"github.com/anonto42/bluo/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func loadSeed(t *testing.T) (*repositories.MemoryStore, *clock.Stub) {
	t.Helper()
	clk := clock.NewStub(time.Date(2026, 2, 17, 16, 0, 0, 0, time.UTC))
	store := repositories.NewMemoryStore(clk)
	require.NoError(t, Load(context.Background(), store, clk))
	return store, clk
}

func TestLoadUsers(t *testing.T) {
	store, _ := loadSeed(t)
	ctx := context.Background()

	john, err := store.GetUserByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, "1", john.ID)
	assert.Equal(t, "johndoe", john.Username)
	assert.Equal(t, models.TierFree, john.SubscriptionTier)
	assert.Len(t, john.Badges, 2)
	assert.NotEqual(t, DemoPassword, john.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(john.Password), []byte(DemoPassword)))

	alex, err := store.GetUserByID(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, models.TierPremium, alex.SubscriptionTier)
	assert.Equal(t, 9800, alex.Points)
}

func TestLoadPostsAndFeedOrder(t *testing.T) {
	store, _ := loadSeed(t)

	posts, err := store.GetPosts(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "p1", posts[0].ID)
	assert.Equal(t, "p2", posts[1].ID)
	assert.Equal(t, "p3", posts[2].ID)

	assert.True(t, posts[1].IsLiked)
	assert.Equal(t, 128, posts[1].Likes)
	require.Len(t, posts[0].Comments, 1)
	assert.Equal(t, "c1", posts[0].Comments[0].ID)
	assert.Equal(t, "johndoe", posts[0].Comments[0].Author.Username)

	john, err := store.GetUserByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 89, john.PostsCount)
}

func TestLoadNotificationsAndConversations(t *testing.T) {
	store, _ := loadSeed(t)
	ctx := context.Background()

	list, err := store.GetNotifications(ctx, "1")
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "n1", list[0].ID)
	assert.Equal(t, "n4", list[3].ID)

	unread, err := store.GetUnreadCount(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 2, unread)

	convs, err := store.GetConversations(ctx, "1")
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, "conv1", convs[0].ID)
	assert.Equal(t, 2, convs[0].UnreadCount)
	assert.Equal(t, "janedoe", convs[0].Participant.Username)
}

func TestLoadGamification(t *testing.T) {
	store, _ := loadSeed(t)
	ctx := context.Background()

	achievements, err := store.GetAchievements(ctx)
	require.NoError(t, err)
	assert.Len(t, achievements, 5)

	board, err := store.GetLeaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, board, 3)
	assert.Equal(t, "3", board[0].User.ID)
	assert.Equal(t, "2", board[1].User.ID)
	assert.Equal(t, "1", board[2].User.ID)
}

func TestLoadStoriesRelativeToClock(t *testing.T) {
	store, clk := loadSeed(t)
	ctx := context.Background()

	stories, err := store.GetStories(ctx, "1")
	require.NoError(t, err)
	require.Len(t, stories, 3)
	assert.Equal(t, clk.Now().Add(-2*time.Hour), stories[0].CreatedAt)
	assert.Equal(t, clk.Now().Add(-8*time.Hour), stories[2].CreatedAt)

	clk.Advance(17 * time.Hour)
	stories, err = store.GetStories(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, stories, 2)
}
