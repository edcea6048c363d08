package classifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vettr/internal/models"
)

func TestHeuristic_Classify_Clean(t *testing.T) {
	h := NewHeuristic()

	result, err := h.Classify(context.Background(), models.ContentItem{
		Text:     "Had a great time at the conference, learned a lot.",
		Platform: "twitter",
	}, "item_0")
	require.NoError(t, err)

	assert.Equal(t, models.RiskLow, result.RiskLevel)
	assert.Empty(t, result.Categories)
	assert.Empty(t, result.RedFlags)
	assert.Equal(t, 0.3, result.ConfidenceScore)
	assert.Equal(t, "Keyword heuristic analysis", result.Reasoning)
}

func TestHeuristic_Classify_PersonalAttack(t *testing.T) {
	h := NewHeuristic()

	result, err := h.Classify(context.Background(), models.ContentItem{
		Text: "What an idiot. Can't believe he shipped that.",
	}, "item_1")
	require.NoError(t, err)

	assert.Equal(t, models.RiskModerate, result.RiskLevel)
	assert.Equal(t, []string{"personal_attacks"}, result.Categories)
	assert.Contains(t, result.RedFlags, "Personal attack keywords detected")
	// The sentence with the keyword is surfaced, not the whole post.
	assert.Contains(t, result.RedFlags, `Flagged passage: "What an idiot."`)
}

func TestHeuristic_Classify_HateOverridesAttack(t *testing.T) {
	h := NewHeuristic()

	result, err := h.Classify(context.Background(), models.ContentItem{
		Text: "You are stupid and I hate everything you stand for.",
	}, "item_2")
	require.NoError(t, err)

	assert.Equal(t, models.RiskHigh, result.RiskLevel, "hate speech must win over personal attack")
	assert.ElementsMatch(t, []string{"personal_attacks", "hate_speech"}, result.Categories)
	assert.Contains(t, result.RedFlags, "Personal attack keywords detected")
	assert.Contains(t, result.RedFlags, "Hate speech keywords detected")
}

func TestHeuristic_Classify_HateOnly(t *testing.T) {
	h := NewHeuristic()

	result, err := h.Classify(context.Background(), models.ContentItem{
		Text: "go kill yourself",
	}, "item_5")
	require.NoError(t, err)

	assert.Equal(t, models.RiskHigh, result.RiskLevel)
	assert.Equal(t, []string{"hate_speech"}, result.Categories)
}

func TestHeuristic_Classify_CaseInsensitive(t *testing.T) {
	h := NewHeuristic()

	result, err := h.Classify(context.Background(), models.ContentItem{
		Text: "DISGUSTING behavior from the whole group",
	}, "item_3")
	require.NoError(t, err)

	assert.Equal(t, models.RiskHigh, result.RiskLevel)
	assert.Equal(t, []string{"hate_speech"}, result.Categories)
}

func TestHeuristic_Recover_RecordsCause(t *testing.T) {
	h := NewHeuristic()
	cause := errors.New("api quota exceeded")

	result := h.Recover(models.ContentItem{Text: "perfectly fine post"}, "item_4", cause)

	assert.Equal(t, "item_4", result.ContentID)
	assert.Equal(t, models.RiskLow, result.RiskLevel)
	assert.Equal(t, 0.3, result.ConfidenceScore)
	assert.Equal(t, "Fallback analysis due to error: api quota exceeded", result.Reasoning)
}
