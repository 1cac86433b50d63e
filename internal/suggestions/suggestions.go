// Package suggestions holds the canned AI assistant catalog. Nothing here
// calls a model; every list is fixed.
package suggestions

import (
	"slices"

	"github.com/anonto42/bluo/backend/internal/models"
)

var textSuggestions = map[models.SuggestionType][]models.AITextSuggestion{
	models.SuggestionCaption: {
		{ID: "ai1", Type: models.SuggestionCaption, Content: "Living my best life ✨ #goodvibes"},
		{ID: "ai2", Type: models.SuggestionCaption, Content: "Every day is a new adventure 🌟"},
		{ID: "ai3", Type: models.SuggestionCaption, Content: "Creating memories one moment at a time 📸"},
	},
	models.SuggestionHashtag: {
		{ID: "ai4", Type: models.SuggestionHashtag, Content: "#photography #nature #travel #explore #adventure"},
		{ID: "ai5", Type: models.SuggestionHashtag, Content: "#creativity #art #design #inspiration #trending"},
	},
	models.SuggestionIdea: {
		{ID: "ai6", Type: models.SuggestionIdea, Content: "Share a behind-the-scenes look at your creative process"},
		{ID: "ai7", Type: models.SuggestionIdea, Content: "Create a poll asking followers about their preferences"},
	},
}

var imageSuggestions = []models.AIImageSuggestion{
	{ID: "img1", Type: "style", Name: "Warm Vintage"},
	{ID: "img2", Type: "style", Name: "Cool Modern"},
	{ID: "img3", Type: "filter", Name: "Soft Glow"},
	{ID: "img4", Type: "filter", Name: "High Contrast"},
}

var contentOptimizations = []models.AIContentOptimization{
	{ID: "opt1", Suggestion: "Add 2-3 relevant hashtags to increase discoverability", Category: "reach"},
	{ID: "opt2", Suggestion: "Best time to post: Tuesdays and Thursdays at 10 AM", Category: "timing"},
	{ID: "opt3", Suggestion: "Include a question to boost engagement by up to 50%", Category: "engagement"},
}

// Text returns the suggestions for kind. ok is false for an unknown kind.
func Text(kind models.SuggestionType) (list []models.AITextSuggestion, ok bool) {
	list, ok = textSuggestions[kind]
	if !ok {
		return nil, false
	}
	return slices.Clone(list), true
}

func Images() []models.AIImageSuggestion {
	return slices.Clone(imageSuggestions)
}

func ContentOptimizations() []models.AIContentOptimization {
	return slices.Clone(contentOptimizations)
}
