package suggestions

import (
	"testing"

	"github.com/anonto42/bluo/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	tests := []struct {
		kind  models.SuggestionType
		count int
		ok    bool
	}{
		{kind: models.SuggestionCaption, count: 3, ok: true},
		{kind: models.SuggestionHashtag, count: 2, ok: true},
		{kind: models.SuggestionIdea, count: 2, ok: true},
		{kind: "poem", ok: false},
		{kind: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			list, ok := Text(tt.kind)
			require.Equal(t, tt.ok, ok)
			assert.Len(t, list, tt.count)
			for _, s := range list {
				assert.Equal(t, tt.kind, s.Type)
			}
		})
	}
}

func TestCatalogsAreCopies(t *testing.T) {
	list, _ := Text(models.SuggestionCaption)
	list[0].Content = "changed"
	again, _ := Text(models.SuggestionCaption)
	assert.NotEqual(t, "changed", again[0].Content)

	images := Images()
	require.Len(t, images, 4)
	images[0].Name = "changed"
	assert.Equal(t, "Warm Vintage", Images()[0].Name)

	assert.Len(t, ContentOptimizations(), 3)
}
