package models

// LikeResult is the state of a like toggle for the acting user
type LikeResult struct {
	IsLiked bool `json:"isLiked"`
	Likes   int  `json:"likes"`
}

// ShareResult is the state of a share toggle for the acting user
type ShareResult struct {
	IsShared bool `json:"isShared"`
	Shares   int  `json:"shares"`
}
