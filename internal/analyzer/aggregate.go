package analyzer

import (
	"math"

	"vettr/internal/models"
)

// categoryWeights is the fixed risk taxonomy. Weights are relative
// multipliers, not probabilities, and deliberately do not sum to 1.
var categoryWeights = map[string]float64{
	"personal_attacks":     0.25,
	"harassment_patterns":  0.30,
	"hate_speech":          0.30,
	"disinformation":       0.10,
	"excessive_negativity": 0.05,
}

// riskScore maps a per-item risk level to its numeric contribution.
func riskScore(level models.RiskLevel) float64 {
	switch level {
	case models.RiskLow:
		return 0.1
	case models.RiskModerate:
		return 0.4
	case models.RiskHigh:
		return 0.7
	case models.RiskCritical:
		return 1.0
	}
	return 0.1
}

// scoreToRiskLevel buckets a 0-100 aggregate score. This threshold table is
// intentionally different from the per-item mapping above; the two must not
// be conflated.
func scoreToRiskLevel(score float64) models.RiskLevel {
	switch {
	case score >= 70:
		return models.RiskCritical
	case score >= 40:
		return models.RiskHigh
	case score >= 20:
		return models.RiskModerate
	default:
		return models.RiskLow
	}
}

// AggregateScore combines per-item classifications into one weighted score.
// Categories outside the fixed taxonomy are excluded from the weighted sum
// but still counted in the breakdown. The weight total is floored at 1, so
// the effective scale depends on which categories appear in the batch;
// that behavior is load-bearing and must not be "fixed".
func AggregateScore(results []models.Classification) models.OverallScore {
	if len(results) == 0 {
		return models.OverallScore{Score: 0, RiskLevel: models.RiskLow}
	}

	var weightedSum, weightTotal float64
	categoryCounts := make(map[string]int)
	highRiskCount := 0

	for _, result := range results {
		if result.RiskLevel.IsHighRisk() {
			highRiskCount++
		}

		for _, category := range result.Categories {
			categoryCounts[category]++

			weight, ok := categoryWeights[category]
			if !ok {
				continue
			}
			weightedSum += riskScore(result.RiskLevel) * weight * result.ConfidenceScore
			weightTotal += weight
		}
	}

	baseScore := (weightedSum / math.Max(weightTotal, 1)) * 100
	multiplier := math.Min(1.5, 1+float64(highRiskCount)/float64(len(results)))
	finalScore := math.Min(100, baseScore*multiplier)

	return models.OverallScore{
		Score:              finalScore,
		RiskLevel:          scoreToRiskLevel(finalScore),
		CategoryBreakdown:  categoryCounts,
		HighRiskPostRatio:  float64(highRiskCount) / float64(len(results)),
		TotalPostsAnalyzed: len(results),
	}
}
