package repositories

import (
	"context"
	"slices"
	"time"

	"github.com/anonto42/bluo/backend/internal/models"
)

type postRecord struct {
	id        string
	authorID  string
	content   string
	images    []string
	videos    []string
	likes     int
	likedBy   memberSet
	comments  []*commentRecord
	shares    int
	sharedBy  memberSet
	createdAt time.Time
}

type commentRecord struct {
	id        string
	authorID  string
	postID    string
	content   string
	likes     int
	likedBy   memberSet
	createdAt time.Time
}

// PostParams seeds a post with preset counters and membership.
type PostParams struct {
	ID        string
	AuthorID  string
	Content   string
	Images    []string
	Videos    []string
	Likes     int
	LikedBy   []string
	Comments  []CommentParams
	Shares    int
	SharedBy  []string
	CreatedAt time.Time
}

// CommentParams seeds a comment inside PostParams.
type CommentParams struct {
	ID        string
	AuthorID  string
	Content   string
	Likes     int
	LikedBy   []string
	CreatedAt time.Time
}

// SeedPost inserts a post as given without touching the author's post count.
func (s *MemoryStore) SeedPost(params PostParams) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p := &postRecord{
		id:        orNewID(params.ID),
		authorID:  params.AuthorID,
		content:   params.Content,
		images:    cloneStrings(params.Images),
		videos:    cloneStrings(params.Videos),
		likes:     params.Likes,
		likedBy:   newMemberSet(params.LikedBy),
		shares:    params.Shares,
		sharedBy:  newMemberSet(params.SharedBy),
		createdAt: orNow(params.CreatedAt, now),
	}
	for _, c := range params.Comments {
		p.comments = append(p.comments, &commentRecord{
			id:        orNewID(c.ID),
			authorID:  c.AuthorID,
			postID:    p.id,
			content:   c.Content,
			likes:     c.Likes,
			likedBy:   newMemberSet(c.LikedBy),
			createdAt: orNow(c.CreatedAt, now),
		})
	}
	s.insertPostLocked(p)
	return s.formatPostLocked(p, params.AuthorID)
}

func (s *MemoryStore) insertPostLocked(p *postRecord) {
	s.posts = append(s.posts, p)
	s.postsByID[p.id] = p
}

// GetPosts returns every post, newest first. Posts with equal timestamps are
// ordered most recently inserted first.
func (s *MemoryStore) GetPosts(_ context.Context, requesterID string) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ordered := make([]*postRecord, len(s.posts))
	for i, p := range s.posts {
		ordered[len(s.posts)-1-i] = p
	}
	slices.SortStableFunc(ordered, func(a, b *postRecord) int {
		return b.createdAt.Compare(a.createdAt)
	})

	out := make([]models.Post, 0, len(ordered))
	for _, p := range ordered {
		out = append(out, s.formatPostLocked(p, requesterID))
	}
	return out, nil
}

func (s *MemoryStore) GetPost(_ context.Context, postID, requesterID string) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.postsByID[postID]
	if !ok {
		return nil, ErrPostNotFound
	}
	post := s.formatPostLocked(p, requesterID)
	return &post, nil
}

// CreatePost stores a new post and increments the author's post count.
func (s *MemoryStore) CreatePost(_ context.Context, authorID string, req models.CreatePostRequest) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author, ok := s.users[authorID]
	if !ok {
		return nil, ErrUserNotFound
	}
	p := &postRecord{
		id:        newID(),
		authorID:  authorID,
		content:   req.Content,
		images:    cloneStrings(req.Images),
		videos:    cloneStrings(req.Videos),
		likedBy:   memberSet{},
		sharedBy:  memberSet{},
		createdAt: s.now(),
	}
	s.insertPostLocked(p)
	author.PostsCount++

	post := s.formatPostLocked(p, authorID)
	return &post, nil
}

func (s *MemoryStore) ToggleLike(_ context.Context, postID, userID string) (*models.LikeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.postsByID[postID]
	if !ok {
		return nil, ErrPostNotFound
	}
	liked := toggleCounter(p.likedBy, &p.likes, userID)
	return &models.LikeResult{IsLiked: liked, Likes: p.likes}, nil
}

func (s *MemoryStore) ToggleShare(_ context.Context, postID, userID string) (*models.ShareResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.postsByID[postID]
	if !ok {
		return nil, ErrPostNotFound
	}
	shared := toggleCounter(p.sharedBy, &p.shares, userID)
	return &models.ShareResult{IsShared: shared, Shares: p.shares}, nil
}

// AddComment appends a comment to the post. Comments keep insertion order.
func (s *MemoryStore) AddComment(_ context.Context, postID, authorID, content string) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.postsByID[postID]
	if !ok {
		return nil, ErrPostNotFound
	}
	c := &commentRecord{
		id:        newID(),
		authorID:  authorID,
		postID:    postID,
		content:   content,
		likedBy:   memberSet{},
		createdAt: s.now(),
	}
	p.comments = append(p.comments, c)

	comment := s.formatCommentLocked(c, authorID)
	return &comment, nil
}

func (s *MemoryStore) ToggleCommentLike(_ context.Context, postID, commentID, userID string) (*models.LikeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.postsByID[postID]
	if !ok {
		return nil, ErrPostNotFound
	}
	idx := slices.IndexFunc(p.comments, func(c *commentRecord) bool { return c.id == commentID })
	if idx < 0 {
		return nil, ErrCommentNotFound
	}
	c := p.comments[idx]
	liked := toggleCounter(c.likedBy, &c.likes, userID)
	return &models.LikeResult{IsLiked: liked, Likes: c.likes}, nil
}

func (s *MemoryStore) formatPostLocked(p *postRecord, requesterID string) models.Post {
	comments := make([]models.Comment, 0, len(p.comments))
	for _, c := range p.comments {
		comments = append(comments, s.formatCommentLocked(c, requesterID))
	}
	return models.Post{
		ID:        p.id,
		Author:    s.publicUserLocked(p.authorID),
		Content:   p.content,
		Images:    cloneStrings(p.images),
		Videos:    cloneStrings(p.videos),
		Likes:     p.likes,
		Comments:  comments,
		Shares:    p.shares,
		IsLiked:   p.likedBy.has(requesterID),
		IsShared:  p.sharedBy.has(requesterID),
		CreatedAt: p.createdAt,
	}
}

func (s *MemoryStore) formatCommentLocked(c *commentRecord, requesterID string) models.Comment {
	return models.Comment{
		ID:        c.id,
		Author:    s.publicUserLocked(c.authorID),
		PostID:    c.postID,
		Content:   c.content,
		Likes:     c.likes,
		IsLiked:   c.likedBy.has(requesterID),
		CreatedAt: c.createdAt,
	}
}
