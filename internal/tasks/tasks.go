package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"vettr/internal/models"
)

// Task types handled by the background worker.
const (
	// TypeCandidateAnalysis runs the full pipeline for one candidate.
	TypeCandidateAnalysis = "analysis:candidate"
)

// CandidateAnalysisPayload carries everything one analysis needs; the task
// is self-contained and no state is read from anywhere else.
type CandidateAnalysisPayload struct {
	CandidateName string               `json:"candidate_name"`
	ScraperJSON   *models.ScrapeResult `json:"scraper_json"`
	Options       map[string]any       `json:"options,omitempty"`
}

// NewCandidateAnalysisTask marshals the payload into an asynq task.
func NewCandidateAnalysisTask(payload CandidateAnalysisPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCandidateAnalysis, data), nil
}
