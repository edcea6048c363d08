package analyzer

import (
	"sort"
	"time"

	"vettr/internal/models"
)

// AnalyzePatterns derives cross-item behavioral signals. Items and results
// are zipped by position; the caller guarantees equal length. The function
// is pure: identical input yields identical output.
func AnalyzePatterns(items []models.ContentItem, results []models.Classification) models.PatternAnalysis {
	return models.PatternAnalysis{
		DateRange:           dateRange(items),
		Consistency:         consistency(results),
		PlatformDifferences: platformDifferences(items, results),
		PostTypePatterns:    postTypePatterns(items, results),
	}
}

func dateRange(items []models.ContentItem) models.DateRange {
	if len(items) == 0 {
		return models.DateRange{}
	}

	earliest, latest := items[0].Timestamp, items[0].Timestamp
	for _, item := range items[1:] {
		if item.Timestamp.Before(earliest) {
			earliest = item.Timestamp
		}
		if item.Timestamp.After(latest) {
			latest = item.Timestamp
		}
	}

	start, end := earliest, latest
	return models.DateRange{
		Start:    &start,
		End:      &end,
		DaysSpan: int(latest.Sub(earliest) / (24 * time.Hour)),
	}
}

// consistency flags a batch whose risk levels cluster: two or fewer
// distinct levels counts as consistent behavior. The variety list is
// sorted by severity so reports are deterministic.
func consistency(results []models.Classification) models.Consistency {
	distinct := make(map[models.RiskLevel]struct{})
	for _, result := range results {
		distinct[result.RiskLevel] = struct{}{}
	}

	levels := make([]models.RiskLevel, 0, len(distinct))
	for level := range distinct {
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Severity() < levels[j].Severity()
	})

	variety := make([]string, len(levels))
	for i, level := range levels {
		variety[i] = string(level)
	}

	return models.Consistency{
		ConsistentBehavior: len(distinct) <= 2,
		RiskLevelVariety:   variety,
	}
}

func platformDifferences(items []models.ContentItem, results []models.Classification) map[string]models.PlatformStats {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for i, item := range items {
		sums[item.Platform] += riskScore(results[i].RiskLevel)
		counts[item.Platform]++
	}

	stats := make(map[string]models.PlatformStats, len(counts))
	for platform, count := range counts {
		stats[platform] = models.PlatformStats{
			AvgRisk:   sums[platform] / float64(count),
			PostCount: count,
		}
	}
	return stats
}

func postTypePatterns(items []models.ContentItem, results []models.Classification) map[string]models.PostTypeStats {
	stats := make(map[string]models.PostTypeStats)
	for i, item := range items {
		s := stats[item.PostType]
		s.TotalCount++
		if results[i].RiskLevel.IsHighRisk() {
			s.HighRiskCount++
		}
		stats[item.PostType] = s
	}

	for postType, s := range stats {
		if s.TotalCount > 0 {
			s.HighRiskRatio = float64(s.HighRiskCount) / float64(s.TotalCount)
		}
		stats[postType] = s
	}
	return stats
}
