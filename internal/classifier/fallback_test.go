package classifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vettr/internal/models"
)

// stubProvider scripts one Provider response, optionally blocking until
// the context is cancelled.
type stubProvider struct {
	result models.Classification
	err    error
	block  bool
}

func (s *stubProvider) Classify(ctx context.Context, item models.ContentItem, contentID string) (models.Classification, error) {
	if s.block {
		<-ctx.Done()
		return models.Classification{}, ctx.Err()
	}
	if s.err != nil {
		return models.Classification{}, s.err
	}
	result := s.result
	result.ContentID = contentID
	return result, nil
}

func (s *stubProvider) ModelName() string { return "stub-model" }

func TestFallback_PrimarySuccess(t *testing.T) {
	primary := &stubProvider{result: models.Classification{
		RiskLevel:       models.RiskHigh,
		Categories:      []string{"harassment_patterns"},
		ConfidenceScore: 0.9,
		Reasoning:       "Repeated targeting of one account",
	}}
	f := NewFallback(primary, NewHeuristic(), 0)

	result := f.Classify(context.Background(), models.ContentItem{Text: "stupid take"}, "item_0")

	assert.Equal(t, models.RiskHigh, result.RiskLevel)
	assert.Equal(t, 0.9, result.ConfidenceScore)
	assert.Equal(t, "Repeated targeting of one account", result.Reasoning, "heuristic must not run when the primary succeeds")
	assert.Equal(t, "stub-model", f.ModelName())
}

func TestFallback_PrimaryError(t *testing.T) {
	primary := &stubProvider{err: errors.New("rate limited")}
	f := NewFallback(primary, NewHeuristic(), 0)

	result := f.Classify(context.Background(), models.ContentItem{Text: "you absolute moron"}, "item_1")

	assert.Equal(t, models.RiskModerate, result.RiskLevel, "keyword scan should still run on fallback")
	assert.Equal(t, []string{"personal_attacks"}, result.Categories)
	assert.Contains(t, result.Reasoning, "Fallback analysis due to error:")
	assert.Contains(t, result.Reasoning, "rate limited")
}

func TestFallback_Timeout(t *testing.T) {
	primary := &stubProvider{block: true}
	f := NewFallback(primary, NewHeuristic(), 10*time.Millisecond)

	start := time.Now()
	result := f.Classify(context.Background(), models.ContentItem{Text: "fine post"}, "item_2")

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, models.RiskLow, result.RiskLevel)
	assert.Contains(t, result.Reasoning, "context deadline exceeded")
}

func TestFallback_NilPrimary(t *testing.T) {
	f := NewFallback(nil, NewHeuristic(), time.Second)

	result := f.Classify(context.Background(), models.ContentItem{Text: "anything"}, "item_3")

	assert.Equal(t, models.RiskLow, result.RiskLevel)
	assert.Contains(t, result.Reasoning, models.ErrNoClassifier.Error())
	assert.Equal(t, "keyword-heuristic", f.ModelName())
}
