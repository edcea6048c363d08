package models

// AnalysisSummary is the headline block of a report.
type AnalysisSummary struct {
	OverallScore   float64   `json:"overall_score"`
	RiskLevel      RiskLevel `json:"risk_level"`
	Recommendation string    `json:"recommendation"`
	PostsAnalyzed  int       `json:"posts_analyzed"`
}

// DetailedFindings carries the aggregate and pattern-level detail.
type DetailedFindings struct {
	CategoryBreakdown map[string]int  `json:"category_breakdown"`
	PatternAnalysis   PatternAnalysis `json:"pattern_analysis"`
	HighRiskRatio     float64         `json:"high_risk_ratio"`
}

// IndividualPost is the per-item breakdown entry of a report.
type IndividualPost struct {
	ContentID  string    `json:"content_id"`
	RiskLevel  RiskLevel `json:"risk_level"`
	Categories []string  `json:"categories"`
	Confidence float64   `json:"confidence"`
	RedFlags   []string  `json:"red_flags"`
	Reasoning  string    `json:"reasoning"`
}

// RecommendationBlock is the hiring-decision section of a report.
type RecommendationBlock struct {
	HiringDecision   string   `json:"hiring_decision"`
	Reasoning        string   `json:"reasoning"`
	SuggestedActions []string `json:"suggested_actions"`
	RequiresReview   bool     `json:"requires_review"`
}

// ReportMetadata identifies when and with what the analysis ran. The
// confidence threshold is carried for downstream consumers and is not
// enforced anywhere in the pipeline.
type ReportMetadata struct {
	AnalysisTimestamp   string  `json:"analysis_timestamp"`
	ModelVersion        string  `json:"model_version"`
	ConfidenceThreshold float64 `json:"confidence_threshold"`
}

// ScraperMetadata echoes the upstream scrape context into the report.
type ScraperMetadata struct {
	Platform          string `json:"platform"`
	TargetUser        string `json:"target_user"`
	Timeframe         string `json:"timeframe"`
	TotalPostsScraped int    `json:"total_posts_scraped"`
	ScrapedAt         string `json:"scraped_at"`
}

// ProcessingMetadata is attached by the transport layer.
type ProcessingMetadata struct {
	ProcessingTimeSeconds float64        `json:"processing_time_seconds"`
	AnalysisOptions       map[string]any `json:"analysis_options,omitempty"`
	ServiceVersion        string         `json:"service_version"`
}

// Report is the full analysis response for one candidate. Error-shaped
// results set Error and AnalysisTimestamp and leave the analysis sections
// nil; successful results do the opposite.
type Report struct {
	Candidate          string               `json:"candidate"`
	AnalysisSummary    *AnalysisSummary     `json:"analysis_summary,omitempty"`
	DetailedFindings   *DetailedFindings    `json:"detailed_findings,omitempty"`
	IndividualPosts    []IndividualPost     `json:"individual_posts,omitempty"`
	Recommendations    *RecommendationBlock `json:"recommendations,omitempty"`
	Metadata           *ReportMetadata      `json:"metadata,omitempty"`
	ScraperMetadata    *ScraperMetadata     `json:"scraper_metadata,omitempty"`
	ProcessingMetadata *ProcessingMetadata  `json:"processing_metadata,omitempty"`
	Error              string               `json:"error,omitempty"`
	AnalysisTimestamp  string               `json:"analysis_timestamp,omitempty"`
}

// Failed reports whether the report is error-shaped.
func (r *Report) Failed() bool { return r.Error != "" }
