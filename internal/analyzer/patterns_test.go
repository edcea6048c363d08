package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vettr/internal/models"
)

func itemAt(platform, postType string, ts time.Time) models.ContentItem {
	return models.ContentItem{Platform: platform, PostType: postType, Timestamp: ts}
}

func levelOnly(level models.RiskLevel) models.Classification {
	return models.Classification{RiskLevel: level}
}

func TestDateRange(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	items := []models.ContentItem{
		itemAt("twitter", models.PostTypeOriginal, base.AddDate(0, 0, 7)),
		itemAt("twitter", models.PostTypeOriginal, base),
		itemAt("twitter", models.PostTypeOriginal, base.AddDate(0, 0, 3)),
	}

	r := dateRange(items)
	require.NotNil(t, r.Start)
	require.NotNil(t, r.End)
	assert.Equal(t, base, *r.Start)
	assert.Equal(t, base.AddDate(0, 0, 7), *r.End)
	assert.Equal(t, 7, r.DaysSpan)
}

func TestDateRange_Empty(t *testing.T) {
	r := dateRange(nil)
	assert.Nil(t, r.Start)
	assert.Nil(t, r.End)
	assert.Equal(t, 0, r.DaysSpan)
}

func TestConsistency(t *testing.T) {
	consistent := consistency([]models.Classification{
		levelOnly(models.RiskLow),
		levelOnly(models.RiskLow),
		levelOnly(models.RiskModerate),
	})
	assert.True(t, consistent.ConsistentBehavior, "two distinct levels count as consistent")
	assert.Equal(t, []string{"low", "moderate"}, consistent.RiskLevelVariety)

	varied := consistency([]models.Classification{
		levelOnly(models.RiskCritical),
		levelOnly(models.RiskLow),
		levelOnly(models.RiskHigh),
		levelOnly(models.RiskModerate),
	})
	assert.False(t, varied.ConsistentBehavior)
	assert.Equal(t, []string{"low", "moderate", "high", "critical"}, varied.RiskLevelVariety, "variety is ordered by severity")
}

func TestPlatformDifferences(t *testing.T) {
	now := time.Now()
	items := []models.ContentItem{
		itemAt("twitter", models.PostTypeOriginal, now),
		itemAt("twitter", models.PostTypeOriginal, now),
		itemAt("reddit", models.PostTypeOriginal, now),
	}
	results := []models.Classification{
		levelOnly(models.RiskHigh),     // 0.7
		levelOnly(models.RiskLow),      // 0.1
		levelOnly(models.RiskCritical), // 1.0
	}

	stats := platformDifferences(items, results)
	require.Len(t, stats, 2)
	assert.InDelta(t, 0.4, stats["twitter"].AvgRisk, 1e-9)
	assert.Equal(t, 2, stats["twitter"].PostCount)
	assert.InDelta(t, 1.0, stats["reddit"].AvgRisk, 1e-9)
	assert.Equal(t, 1, stats["reddit"].PostCount)
}

func TestPostTypePatterns(t *testing.T) {
	now := time.Now()
	items := []models.ContentItem{
		itemAt("twitter", models.PostTypeReply, now),
		itemAt("twitter", models.PostTypeReply, now),
		itemAt("twitter", models.PostTypeReply, now),
		itemAt("twitter", models.PostTypeOriginal, now),
	}
	results := []models.Classification{
		levelOnly(models.RiskHigh),
		levelOnly(models.RiskLow),
		levelOnly(models.RiskCritical),
		levelOnly(models.RiskModerate),
	}

	stats := postTypePatterns(items, results)
	require.Len(t, stats, 2)

	replies := stats[models.PostTypeReply]
	assert.Equal(t, 3, replies.TotalCount)
	assert.Equal(t, 2, replies.HighRiskCount)
	assert.InDelta(t, 2.0/3.0, replies.HighRiskRatio, 1e-9)

	originals := stats[models.PostTypeOriginal]
	assert.Equal(t, 1, originals.TotalCount)
	assert.Equal(t, 0, originals.HighRiskCount)
	assert.Equal(t, 0.0, originals.HighRiskRatio)
}

func TestAnalyzePatterns_Deterministic(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	items := []models.ContentItem{
		itemAt("twitter", models.PostTypeOriginal, base),
		itemAt("reddit", models.PostTypeReply, base.AddDate(0, 0, 2)),
	}
	results := []models.Classification{
		levelOnly(models.RiskHigh),
		levelOnly(models.RiskLow),
	}

	first := AnalyzePatterns(items, results)
	second := AnalyzePatterns(items, results)
	assert.Equal(t, first, second)
}
