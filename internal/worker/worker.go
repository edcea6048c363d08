package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"vettr/internal/analyzer"
	"vettr/internal/tasks"
)

// Deps holds what the task handlers need from the application.
type Deps struct {
	Analyzer *analyzer.Service
}

// RegisterHandlers attaches all task handlers to the mux.
func RegisterHandlers(mux *asynq.ServeMux, deps Deps) {
	mux.HandleFunc(tasks.TypeCandidateAnalysis, HandleCandidateAnalysis(deps))
}

// HandleCandidateAnalysis runs one candidate's analysis and writes the
// report JSON as the task result, where it stays retrievable for the
// task's retention window. A malformed payload is not retried.
func HandleCandidateAnalysis(deps Deps) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload tasks.CandidateAnalysisPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("unmarshal candidate analysis payload: %v: %w", err, asynq.SkipRetry)
		}

		name := payload.CandidateName
		if name == "" {
			name = "Unknown"
		}

		report := deps.Analyzer.Analyze(ctx, payload.ScraperJSON, name)
		if report.Failed() {
			log.Warnf("Candidate analysis for %q produced an error result: %s", name, report.Error)
		}

		data, err := json.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshal report for %q: %w", name, err)
		}
		if _, err := task.ResultWriter().Write(data); err != nil {
			return fmt.Errorf("write report result for %q: %w", name, err)
		}

		log.Infof("Candidate analysis complete: candidate=%q task_id=%s", name, task.ResultWriter().TaskID())
		return nil
	}
}
