package models

// SuggestionType is the kind of text suggestion requested
type SuggestionType string

const (
	SuggestionCaption SuggestionType = "caption"
	SuggestionHashtag SuggestionType = "hashtag"
	SuggestionIdea    SuggestionType = "idea"
)

// AITextSuggestion is a canned caption, hashtag set or post idea
type AITextSuggestion struct {
	ID      string         `json:"id"`
	Type    SuggestionType `json:"type"`
	Content string         `json:"content"`
}

// AIImageSuggestion is a canned image style or filter
type AIImageSuggestion struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	Preview string `json:"preview"`
}

// AIContentOptimization is a canned tip for improving a post
type AIContentOptimization struct {
	ID         string `json:"id"`
	Suggestion string `json:"suggestion"`
	Category   string `json:"category"`
}

// TextSuggestionRequest defines the request body for text suggestions
type TextSuggestionRequest struct {
	Prompt string         `json:"prompt" validate:"max=1000"`
	Type   SuggestionType `json:"type"`
}

// ContentOptimizationRequest defines the request body for content optimizations
type ContentOptimizationRequest struct {
	Content string `json:"content" validate:"max=2000"`
}
