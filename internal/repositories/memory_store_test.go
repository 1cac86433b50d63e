package repositories

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/anonto42/bluo/backend/internal/clock"
	"github.com/anonto42/bluo/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 2, 17, 16, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*MemoryStore, *clock.Stub) {
	t.Helper()
	clk := clock.NewStub(testNow)
	return NewMemoryStore(clk), clk
}

func mustCreateUser(t *testing.T, s *MemoryStore, username, email string) *models.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), models.User{
		Username: username,
		Email:    email,
		Password: "hash",
	})
	require.NoError(t, err)
	return u
}

func TestCreateUserDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	u := mustCreateUser(t, s, "johndoe", "john@example.com")
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "johndoe", u.DisplayName)
	assert.Equal(t, models.TierFree, u.SubscriptionTier)
	assert.Equal(t, testNow, u.CreatedAt)
	assert.NotNil(t, u.Badges)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	mustCreateUser(t, s, "johndoe", "john@example.com")
	_, err := s.CreateUser(ctx, models.User{Username: "other", Email: " John@Example.com "})
	require.ErrorIs(t, err, ErrEmailTaken)

	found, err := s.GetUserByEmail(ctx, "JOHN@example.com")
	require.NoError(t, err)
	assert.Equal(t, "johndoe", found.Username)
	assert.Len(t, s.users, 1)
}

func TestGetUserReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	u := mustCreateUser(t, s, "johndoe", "john@example.com")

	got, err := s.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	got.Points = 999

	again, err := s.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Points)

	_, err = s.GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfileOnlyTouchesProvidedFields(t *testing.T) {
	s, _ := newTestStore(t)
	u := mustCreateUser(t, s, "johndoe", "john@example.com")

	bio := "Coffee lover"
	updated, err := s.UpdateProfile(context.Background(), u.ID, models.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "Coffee lover", updated.Bio)
	assert.Equal(t, "johndoe", updated.DisplayName)
}

func TestSessions(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	u := mustCreateUser(t, s, "johndoe", "john@example.com")

	token, err := s.CreateSession(ctx, u.ID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := s.GetUserIDByToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)

	require.NoError(t, s.DeleteSession(ctx, token))
	_, err = s.GetUserIDByToken(ctx, token)
	require.ErrorIs(t, err, ErrSessionNotFound)

	_, err = s.CreateSession(ctx, "missing")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestToggleLikeTwiceRestoresState(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	author := mustCreateUser(t, s, "janedoe", "jane@example.com")
	reader := mustCreateUser(t, s, "johndoe", "john@example.com")
	s.SeedPost(PostParams{ID: "p1", AuthorID: author.ID, Content: "hello", Likes: 42})

	first, err := s.ToggleLike(ctx, "p1", reader.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LikeResult{IsLiked: true, Likes: 43}, *first)

	post, err := s.GetPost(ctx, "p1", reader.ID)
	require.NoError(t, err)
	assert.True(t, post.IsLiked)

	second, err := s.ToggleLike(ctx, "p1", reader.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LikeResult{IsLiked: false, Likes: 42}, *second)

	post, err = s.GetPost(ctx, "p1", reader.ID)
	require.NoError(t, err)
	assert.False(t, post.IsLiked)
	assert.Equal(t, 42, post.Likes)
}

func TestToggleCountersNeverGoNegative(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	author := mustCreateUser(t, s, "janedoe", "jane@example.com")
	s.SeedPost(PostParams{ID: "p1", AuthorID: author.ID, Content: "x", LikedBy: []string{"ghost"}, SharedBy: []string{"ghost"}})

	like, err := s.ToggleLike(ctx, "p1", "ghost")
	require.NoError(t, err)
	assert.False(t, like.IsLiked)
	assert.Equal(t, 0, like.Likes)

	share, err := s.ToggleShare(ctx, "p1", "ghost")
	require.NoError(t, err)
	assert.False(t, share.IsShared)
	assert.Equal(t, 0, share.Shares)
}

func TestToggleOnMissingPost(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.ToggleLike(ctx, "nope", "u")
	require.ErrorIs(t, err, ErrPostNotFound)
	_, err = s.ToggleShare(ctx, "nope", "u")
	require.ErrorIs(t, err, ErrPostNotFound)
	_, err = s.AddComment(ctx, "nope", "u", "hi")
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestShareToggle(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	author := mustCreateUser(t, s, "janedoe", "jane@example.com")
	s.SeedPost(PostParams{ID: "p1", AuthorID: author.ID, Content: "x", Shares: 8})

	res, err := s.ToggleShare(ctx, "p1", "reader")
	require.NoError(t, err)
	assert.Equal(t, models.ShareResult{IsShared: true, Shares: 9}, *res)

	post, err := s.GetPost(ctx, "p1", "reader")
	require.NoError(t, err)
	assert.True(t, post.IsShared)
	other, err := s.GetPost(ctx, "p1", "someone-else")
	require.NoError(t, err)
	assert.False(t, other.IsShared)
}

func TestGetPostsNewestFirst(t *testing.T) {
	s, clk := newTestStore(t)
	ctx := context.Background()
	author := mustCreateUser(t, s, "janedoe", "jane@example.com")

	s.SeedPost(PostParams{ID: "old", AuthorID: author.ID, Content: "old", CreatedAt: testNow.Add(-48 * time.Hour)})
	s.SeedPost(PostParams{ID: "mid", AuthorID: author.ID, Content: "mid", CreatedAt: testNow.Add(-24 * time.Hour)})
	clk.Advance(time.Minute)
	created, err := s.CreatePost(ctx, author.ID, models.CreatePostRequest{Content: "new"})
	require.NoError(t, err)

	posts, err := s.GetPosts(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, created.ID, posts[0].ID)
	assert.Equal(t, "mid", posts[1].ID)
	assert.Equal(t, "old", posts[2].ID)
}

func TestCreatePostIncrementsAuthorPostCount(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	author := mustCreateUser(t, s, "janedoe", "jane@example.com")

	post, err := s.CreatePost(ctx, author.ID, models.CreatePostRequest{Content: "first"})
	require.NoError(t, err)
	require.NotNil(t, post.Author)
	assert.Equal(t, 1, post.Author.PostsCount)
	assert.Empty(t, post.Comments)
	assert.NotNil(t, post.Images)

	_, err = s.CreatePost(ctx, "missing", models.CreatePostRequest{Content: "x"})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestEmbeddedAuthorNeverCarriesPassword(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	author := mustCreateUser(t, s, "janedoe", "jane@example.com")
	_, err := s.CreatePost(ctx, author.ID, models.CreatePostRequest{Content: "hi"})
	require.NoError(t, err)

	posts, err := s.GetPosts(ctx, author.ID)
	require.NoError(t, err)
	raw, err := json.Marshal(posts)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "hash")
}

func TestCommentsAndCommentLikes(t *testing.T) {
	s, clk := newTestStore(t)
	ctx := context.Background()
	author := mustCreateUser(t, s, "janedoe", "jane@example.com")
	reader := mustCreateUser(t, s, "johndoe", "john@example.com")
	s.SeedPost(PostParams{
		ID: "p1", AuthorID: author.ID, Content: "x",
		Comments: []CommentParams{{ID: "c1", AuthorID: reader.ID, Content: "first", Likes: 5}},
	})

	clk.Advance(time.Second)
	c, err := s.AddComment(ctx, "p1", reader.ID, "second")
	require.NoError(t, err)
	assert.Equal(t, "p1", c.PostID)
	assert.Equal(t, reader.ID, c.Author.ID)

	post, err := s.GetPost(ctx, "p1", reader.ID)
	require.NoError(t, err)
	require.Len(t, post.Comments, 2)
	assert.Equal(t, "c1", post.Comments[0].ID)
	assert.Equal(t, "second", post.Comments[1].Content)

	res, err := s.ToggleCommentLike(ctx, "p1", "c1", author.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LikeResult{IsLiked: true, Likes: 6}, *res)

	post, err = s.GetPost(ctx, "p1", author.ID)
	require.NoError(t, err)
	assert.True(t, post.Comments[0].IsLiked)

	_, err = s.ToggleCommentLike(ctx, "p1", "missing", author.ID)
	require.ErrorIs(t, err, ErrCommentNotFound)
}

func TestNotifications(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	john := mustCreateUser(t, s, "johndoe", "john@example.com")
	jane := mustCreateUser(t, s, "janedoe", "jane@example.com")

	_, err := s.AddNotification(ctx, john.ID, NotificationParams{ID: "n-old", Type: models.NotificationLike, FromUserID: jane.ID, Message: "liked your post", CreatedAt: testNow.Add(-time.Hour)})
	require.NoError(t, err)
	_, err = s.AddNotification(ctx, john.ID, NotificationParams{ID: "n-new", Type: models.NotificationFollow, FromUserID: jane.ID, Message: "started following you"})
	require.NoError(t, err)
	_, err = s.AddNotification(ctx, john.ID, NotificationParams{ID: "n-read", Type: models.NotificationComment, FromUserID: jane.ID, Read: true, CreatedAt: testNow.Add(-2 * time.Hour)})
	require.NoError(t, err)

	list, err := s.GetNotifications(ctx, john.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"n-new", "n-old", "n-read"}, []string{list[0].ID, list[1].ID, list[2].ID})
	require.NotNil(t, list[0].FromUser)
	assert.Equal(t, jane.ID, list[0].FromUser.ID)

	count, err := s.GetUnreadCount(ctx, john.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, s.MarkNotificationRead(ctx, john.ID, "n-old"))
	count, _ = s.GetUnreadCount(ctx, john.ID)
	assert.Equal(t, 1, count)

	err = s.MarkNotificationRead(ctx, jane.ID, "n-new")
	require.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestMarkAllNotificationsRead(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	john := mustCreateUser(t, s, "johndoe", "john@example.com")
	for i := 0; i < 3; i++ {
		_, err := s.AddNotification(ctx, john.ID, NotificationParams{Type: models.NotificationLike, FromUserID: john.ID})
		require.NoError(t, err)
	}

	require.NoError(t, s.MarkAllNotificationsRead(ctx, john.ID))

	list, err := s.GetNotifications(ctx, john.ID)
	require.NoError(t, err)
	for _, n := range list {
		assert.True(t, n.Read)
	}
	count, err := s.GetUnreadCount(ctx, john.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGetNotificationsForUnknownUserIsEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	list, err := s.GetNotifications(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestConversations(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	john := mustCreateUser(t, s, "johndoe", "john@example.com")
	jane := mustCreateUser(t, s, "janedoe", "jane@example.com")

	s.AddConversation(john.ID, ConversationParams{
		ID:            "conv1",
		ParticipantID: jane.ID,
		LastMessage:   models.Message{ID: "m1", SenderID: jane.ID, ReceiverID: john.ID, Content: "Hey!"},
		UnreadCount:   2,
	})

	convs, err := s.GetConversations(ctx, john.ID)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, jane.ID, convs[0].Participant.ID)
	assert.Equal(t, "Hey!", convs[0].LastMessage.Content)
	assert.Equal(t, 2, convs[0].UnreadCount)

	none, err := s.GetConversations(ctx, jane.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLeaderboardSortedByRank(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	a := mustCreateUser(t, s, "alex", "alex@example.com")
	j := mustCreateUser(t, s, "jane", "jane@example.com")

	s.AddLeaderboardEntry(LeaderboardParams{Rank: 2, UserID: j.ID, Points: 5200})
	s.AddLeaderboardEntry(LeaderboardParams{Rank: 1, UserID: a.ID, Points: 9800})

	board, err := s.GetLeaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, a.ID, board[0].User.ID)
	assert.Equal(t, 2, board[1].Rank)
}

func TestAddPointsReranksLeaderboard(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	a, err := s.CreateUser(ctx, models.User{Username: "alex", Email: "alex@example.com", Points: 9800})
	require.NoError(t, err)
	j, err := s.CreateUser(ctx, models.User{Username: "jane", Email: "jane@example.com", Points: 5200})
	require.NoError(t, err)
	s.AddLeaderboardEntry(LeaderboardParams{Rank: 1, UserID: a.ID, Points: 9800})
	s.AddLeaderboardEntry(LeaderboardParams{Rank: 2, UserID: j.ID, Points: 5200})

	balance, err := s.AddPoints(ctx, j.ID, 5000)
	require.NoError(t, err)
	assert.Equal(t, 10200, balance)

	board, err := s.GetLeaderboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, j.ID, board[0].User.ID)
	assert.Equal(t, 10200, board[0].Points)
	assert.Equal(t, 2, board[1].Rank)

	_, err = s.AddPoints(ctx, "missing", 10)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddPointsWithoutLeaderboardEntry(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	u := mustCreateUser(t, s, "johndoe", "john@example.com")

	balance, err := s.AddPoints(ctx, u.ID, 25)
	require.NoError(t, err)
	assert.Equal(t, 25, balance)

	board, err := s.GetLeaderboard(ctx)
	require.NoError(t, err)
	assert.Empty(t, board)
}

func TestAchievementsAreCopied(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	empty, err := s.GetAchievements(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)

	s.SetAchievements([]models.Achievement{{ID: "a1", Name: "First Post", Progress: 100, Completed: true}})
	got, err := s.GetAchievements(ctx)
	require.NoError(t, err)
	got[0].Name = "changed"

	again, _ := s.GetAchievements(ctx)
	assert.Equal(t, "First Post", again[0].Name)
}

func TestStoriesExpire(t *testing.T) {
	s, clk := newTestStore(t)
	ctx := context.Background()
	jane := mustCreateUser(t, s, "janedoe", "jane@example.com")

	s.AddStory(StoryParams{ID: "older", AuthorID: jane.ID, Content: "a", CreatedAt: testNow.Add(-5 * time.Hour)})
	created, err := s.CreateStory(ctx, jane.ID, "fresh")
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt.Add(StoryTTL), created.ExpiresAt)

	stories, err := s.GetStories(ctx, jane.ID)
	require.NoError(t, err)
	require.Len(t, stories, 2)
	assert.Equal(t, created.ID, stories[0].ID)
	assert.Equal(t, "older", stories[1].ID)

	clk.Advance(19 * time.Hour)
	stories, err = s.GetStories(ctx, jane.ID)
	require.NoError(t, err)
	require.Len(t, stories, 1)
	assert.Equal(t, created.ID, stories[0].ID)

	clk.Advance(5 * time.Hour)
	stories, err = s.GetStories(ctx, jane.ID)
	require.NoError(t, err)
	assert.Empty(t, stories)
}

func TestMarkStoryViewedOnlyAdds(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	jane := mustCreateUser(t, s, "janedoe", "jane@example.com")
	id := s.AddStory(StoryParams{AuthorID: jane.ID, Content: "a"})

	require.NoError(t, s.MarkStoryViewed(ctx, id, "viewer"))
	require.NoError(t, s.MarkStoryViewed(ctx, id, "viewer"))

	stories, err := s.GetStories(ctx, "viewer")
	require.NoError(t, err)
	require.Len(t, stories, 1)
	assert.True(t, stories[0].Viewed)

	stories, err = s.GetStories(ctx, jane.ID)
	require.NoError(t, err)
	assert.False(t, stories[0].Viewed)

	require.ErrorIs(t, s.MarkStoryViewed(ctx, "missing", "viewer"), ErrStoryNotFound)
}

func TestCreateStoryForUnknownAuthor(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.CreateStory(context.Background(), "missing", "x")
	require.ErrorIs(t, err, ErrUserNotFound)
}
