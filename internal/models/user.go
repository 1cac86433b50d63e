package models

import "time"

// SubscriptionTier is the plan a user is on
type SubscriptionTier string

const (
	TierFree    SubscriptionTier = "free"
	TierPro     SubscriptionTier = "pro"
	TierPremium SubscriptionTier = "premium"
)

// Valid reports whether t is one of the known tiers
func (t SubscriptionTier) Valid() bool {
	switch t {
	case TierFree, TierPro, TierPremium:
		return true
	}
	return false
}

// Badge is awarded to users by the gamification catalog
type Badge struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
}

// User is the stored user record. Password holds a bcrypt hash and never leaves the server.
type User struct {
	ID               string           `json:"id"`
	Username         string           `json:"username"`
	Email            string           `json:"email"`
	Password         string           `json:"-"`
	DisplayName      string           `json:"displayName"`
	Bio              string           `json:"bio"`
	AvatarURL        string           `json:"avatarUrl"`
	CoverURL         string           `json:"coverUrl"`
	FollowersCount   int              `json:"followersCount"`
	FollowingCount   int              `json:"followingCount"`
	PostsCount       int              `json:"postsCount"`
	Points           int              `json:"points"`
	Badges           []Badge          `json:"badges"`
	SubscriptionTier SubscriptionTier `json:"subscriptionTier"`
	CreatedAt        time.Time        `json:"createdAt"`
	IsFollowing      bool             `json:"isFollowing"`
}

// PublicUser is the password-stripped projection embedded in every response
type PublicUser struct {
	ID               string           `json:"id"`
	Username         string           `json:"username"`
	Email            string           `json:"email"`
	DisplayName      string           `json:"displayName"`
	Bio              string           `json:"bio"`
	AvatarURL        string           `json:"avatarUrl"`
	CoverURL         string           `json:"coverUrl"`
	FollowersCount   int              `json:"followersCount"`
	FollowingCount   int              `json:"followingCount"`
	PostsCount       int              `json:"postsCount"`
	Points           int              `json:"points"`
	Badges           []Badge          `json:"badges"`
	SubscriptionTier SubscriptionTier `json:"subscriptionTier"`
	CreatedAt        time.Time        `json:"createdAt"`
	IsFollowing      bool             `json:"isFollowing"`
}

// ToPublic returns the public projection of u. The badge slice is copied.
func (u *User) ToPublic() PublicUser {
	badges := make([]Badge, len(u.Badges))
	copy(badges, u.Badges)
	return PublicUser{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		DisplayName:      u.DisplayName,
		Bio:              u.Bio,
		AvatarURL:        u.AvatarURL,
		CoverURL:         u.CoverURL,
		FollowersCount:   u.FollowersCount,
		FollowingCount:   u.FollowingCount,
		PostsCount:       u.PostsCount,
		Points:           u.Points,
		Badges:           badges,
		SubscriptionTier: u.SubscriptionTier,
		CreatedAt:        u.CreatedAt,
		IsFollowing:      u.IsFollowing,
	}
}

// Clone returns a deep copy of u
func (u *User) Clone() *User {
	c := *u
	c.Badges = make([]Badge, len(u.Badges))
	copy(c.Badges, u.Badges)
	return &c
}

// LoginRequest defines the request body for signing in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest defines the request body for creating an account
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30,alphanum"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// ResetPasswordRequest defines the request body for a password reset
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateProfileRequest defines the request body for updating the caller's profile.
// Nil fields are left untouched.
type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName,omitempty" validate:"omitempty,min=1,max=50"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=160"`
	AvatarURL   *string `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	CoverURL    *string `json:"coverUrl,omitempty" validate:"omitempty,url"`
}

// AuthResponse is returned by login and register
type AuthResponse struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}
