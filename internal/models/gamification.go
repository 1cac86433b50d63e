package models

// Achievement is a global catalog entry
type Achievement struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Icon           string `json:"icon"`
	RequiredPoints int    `json:"requiredPoints"`
	Badge          Badge  `json:"badge"`
	Progress       int    `json:"progress"`
	Completed      bool   `json:"completed"`
}

// LeaderboardEntry is one ranked row of the leaderboard
type LeaderboardEntry struct {
	Rank   int         `json:"rank"`
	User   *PublicUser `json:"user"`
	Points int         `json:"points"`
}

// AddPointsRequest defines the request body for awarding points to the caller
type AddPointsRequest struct {
	Amount int `json:"amount" validate:"required,gt=0,max=100000"`
}

// PointsBalance is returned after points are awarded
type PointsBalance struct {
	Points int `json:"points"`
}
