package models

// ScrapeResult is the raw ingestion payload produced by the scraper service.
type ScrapeResult struct {
	Success bool       `json:"success"`
	Error   string     `json:"error,omitempty"`
	Data    ScrapeData `json:"data"`
}

// ScrapeData carries scrape metadata plus the raw post records.
type ScrapeData struct {
	Platform   string    `json:"platform"`
	TargetUser string    `json:"targetUser"`
	Timeframe  string    `json:"timeframe"`
	TotalPosts int       `json:"totalPosts"`
	ScrapedAt  string    `json:"scrapedAt"`
	Posts      []RawPost `json:"posts"`
}

// RawPost is one unprocessed post record. Timestamp is epoch milliseconds
// when present; Date is an ISO-8601 alternative. The normalizer prefers
// Timestamp, then Date, then the current time.
type RawPost struct {
	ID        string             `json:"id,omitempty"`
	Text      string             `json:"text"`
	Platform  string             `json:"platform,omitempty"`
	Timestamp *int64             `json:"timestamp,omitempty"`
	Date      string             `json:"date,omitempty"`
	Stats     map[string]float64 `json:"stats,omitempty"`
}

// AnalyzeRequest is the single-candidate analysis entry point payload.
type AnalyzeRequest struct {
	ScraperJSON   *ScrapeResult  `json:"scraper_json"`
	CandidateName string         `json:"candidate_name"`
	Options       map[string]any `json:"options,omitempty"`
}

// BatchCandidate is one candidate slot within a batch analysis request.
type BatchCandidate struct {
	CandidateName string         `json:"candidate_name"`
	ScraperJSON   *ScrapeResult  `json:"scraper_json"`
	Options       map[string]any `json:"options,omitempty"`
}

// BatchRequest is the multi-candidate analysis entry point payload.
type BatchRequest struct {
	Candidates []BatchCandidate `json:"candidates"`
}

// Batch item statuses.
const (
	BatchStatusCompleted = "completed"
	BatchStatusFailed    = "failed"
)

// BatchItemResult is the per-candidate outcome slot of a batch run.
type BatchItemResult struct {
	CandidateName string  `json:"candidate_name"`
	Analysis      *Report `json:"analysis,omitempty"`
	Error         string  `json:"error,omitempty"`
	Status        string  `json:"status"`
}

// BatchResult aggregates the per-candidate outcomes of a batch run.
type BatchResult struct {
	BatchResults          []BatchItemResult `json:"batch_results"`
	TotalCandidates       int               `json:"total_candidates"`
	SuccessfulAnalyses    int               `json:"successful_analyses"`
	FailedAnalyses        int               `json:"failed_analyses"`
	ProcessingTimeSeconds float64           `json:"processing_time_seconds,omitempty"`
	Timestamp             string            `json:"timestamp"`
}
