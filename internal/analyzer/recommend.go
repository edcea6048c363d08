package analyzer

import (
	"math"

	"vettr/internal/models"
)

// reviewRatioThreshold triggers mandatory human review independently of
// the score.
const reviewRatioThreshold = 0.3

// suggestedActions is fixed per decision label, not configurable.
var suggestedActions = map[string][]string{
	models.DecisionNotRecommended: {
		"Conduct additional behavioral interviews",
		"Require multiple professional references",
		"Consider if role involves public representation",
		"Document specific concerns for HR review",
	},
	models.DecisionProceedWithCaution: {
		"Extended probationary period (90+ days)",
		"Additional reference checks focusing on interpersonal behavior",
		"Document and monitor early workplace interactions",
		"Consider team dynamics and cultural fit",
	},
	models.DecisionAcceptableMonitoring: {
		"Standard probationary period",
		"Regular check-ins with supervisor",
		"Team integration assessment",
		"Monitor for early warning signs",
	},
	models.DecisionApproved: {
		"Standard hiring process",
		"Regular onboarding procedures",
		"No additional monitoring required",
	},
}

// Recommend maps the aggregate score to a hiring decision. It is a pure,
// total function of the score and the high-risk post ratio. Review is
// required when either trigger fires; the two are independent.
func Recommend(overall models.OverallScore) models.Recommendation {
	var decision, reason string
	switch {
	case overall.Score >= 70:
		decision = models.DecisionNotRecommended
		reason = "High risk of workplace behavioral issues based on social media patterns"
	case overall.Score >= 40:
		decision = models.DecisionProceedWithCaution
		reason = "Moderate concerns identified, recommend additional reference checks"
	case overall.Score >= 20:
		decision = models.DecisionAcceptableMonitoring
		reason = "Minor concerns, standard probationary period sufficient"
	default:
		decision = models.DecisionApproved
		reason = "No significant behavioral red flags identified"
	}

	return models.Recommendation{
		Decision:         decision,
		Reason:           reason,
		Confidence:       math.Min(1.0, overall.Score/100),
		SuggestedActions: suggestedActions[decision],
		ReviewRequired:   overall.Score >= 40 || overall.HighRiskPostRatio >= reviewRatioThreshold,
	}
}
