package models

import (
	"fmt"
	"time"
)

// RiskLevel is the per-item severity assigned by a classifier.
// Ordering: low < moderate < high < critical.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// riskOrder drives deterministic sorting of risk-level lists.
var riskOrder = map[RiskLevel]int{
	RiskLow:      0,
	RiskModerate: 1,
	RiskHigh:     2,
	RiskCritical: 3,
}

// ParseRiskLevel validates a raw classifier string against the enum.
func ParseRiskLevel(s string) (RiskLevel, error) {
	l := RiskLevel(s)
	if _, ok := riskOrder[l]; !ok {
		return "", fmt.Errorf("invalid risk level %q", s)
	}
	return l, nil
}

// Severity returns the ordinal position of the level within the enum.
func (l RiskLevel) Severity() int { return riskOrder[l] }

// IsHighRisk reports whether the level counts toward high-risk post ratios.
func (l RiskLevel) IsHighRisk() bool { return l == RiskHigh || l == RiskCritical }

// Post types derived by the normalizer.
const (
	PostTypeOriginal = "original"
	PostTypeReply    = "reply"
	PostTypeRetweet  = "retweet"
	PostTypeQuote    = "quote"
)

// ContentItem is one normalized social-media post. Items are built once by
// the normalizer and consumed read-only downstream.
type ContentItem struct {
	Text       string             `json:"text"`
	Platform   string             `json:"platform"`
	Timestamp  time.Time          `json:"timestamp"`
	PostType   string             `json:"post_type"`
	Engagement map[string]float64 `json:"engagement,omitempty"`
}

// Classification is the per-item risk assessment, 1:1 with ContentItem.
type Classification struct {
	ContentID       string    `json:"content_id"`
	RiskLevel       RiskLevel `json:"risk_level"`
	Categories      []string  `json:"categories"`
	ConfidenceScore float64   `json:"confidence_score"`
	Reasoning       string    `json:"reasoning"`
	RedFlags        []string  `json:"red_flags"`
}

// OverallScore is the weighted aggregate over a classification batch.
type OverallScore struct {
	Score              float64        `json:"score"`
	RiskLevel          RiskLevel      `json:"risk_level"`
	CategoryBreakdown  map[string]int `json:"category_breakdown"`
	HighRiskPostRatio  float64        `json:"high_risk_post_ratio"`
	TotalPostsAnalyzed int            `json:"total_posts_analyzed"`
}

// DateRange covers the earliest and latest post timestamps in a batch.
type DateRange struct {
	Start    *time.Time `json:"start"`
	End      *time.Time `json:"end"`
	DaysSpan int        `json:"days_span"`
}

// Consistency captures how uniform the risk levels were across the batch.
type Consistency struct {
	ConsistentBehavior bool     `json:"consistent_behavior"`
	RiskLevelVariety   []string `json:"risk_level_variety"`
}

// PlatformStats summarizes risk per source platform.
type PlatformStats struct {
	AvgRisk   float64 `json:"avg_risk"`
	PostCount int     `json:"post_count"`
}

// PostTypeStats summarizes risk per derived post type.
type PostTypeStats struct {
	TotalCount    int     `json:"total_count"`
	HighRiskCount int     `json:"high_risk_count"`
	HighRiskRatio float64 `json:"high_risk_ratio"`
}

// PatternAnalysis is the cross-item behavioral signal, distinct from the
// per-item classifications it is derived from.
type PatternAnalysis struct {
	DateRange           DateRange                `json:"date_range"`
	Consistency         Consistency              `json:"consistency"`
	PlatformDifferences map[string]PlatformStats `json:"platform_differences"`
	PostTypePatterns    map[string]PostTypeStats `json:"post_type_patterns"`
}

// Hiring decision labels, mutually exclusive.
const (
	DecisionNotRecommended       = "NOT_RECOMMENDED"
	DecisionProceedWithCaution   = "PROCEED_WITH_CAUTION"
	DecisionAcceptableMonitoring = "ACCEPTABLE_WITH_MONITORING"
	DecisionApproved             = "APPROVED"
)

// Recommendation is the discrete hiring decision plus rationale.
type Recommendation struct {
	Decision         string   `json:"recommendation"`
	Reason           string   `json:"reason"`
	Confidence       float64  `json:"confidence"`
	SuggestedActions []string `json:"suggested_actions"`
	ReviewRequired   bool     `json:"review_required"`
}
