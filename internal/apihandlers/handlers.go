package apihandlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"vettr/internal/app"
	"vettr/internal/models"
	"vettr/internal/tasks"
)

// AsyncResultRetention keeps finished batch task results available for
// retrieval through asynq's inspector.
const AsyncResultRetention = 24 * time.Hour

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(app *app.App) *APIHandler {
	return &APIHandler{App: app}
}

// AnalyzeHandler runs the full pipeline for one candidate. Analysis-level
// failures (failed scrape, empty batch) come back as error-shaped reports
// with HTTP 200; only malformed requests are rejected at transport level.
func (h *APIHandler) AnalyzeHandler(c *gin.Context) {
	start := time.Now()

	req, err := parseAnalyzeRequest(c)
	if err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	report := h.App.Analyzer.Analyze(c.Request.Context(), req.ScraperJSON, req.CandidateName)

	elapsed := time.Since(start)
	report.ProcessingMetadata = &models.ProcessingMetadata{
		ProcessingTimeSeconds: roundSeconds(elapsed),
		AnalysisOptions:       req.Options,
		ServiceVersion:        app.ServiceVersion,
	}

	c.Header("X-Processing-Time", strconv.FormatInt(elapsed.Milliseconds(), 10))
	c.JSON(http.StatusOK, report)
}

// parseAnalyzeRequest parses and validates the analysis request body.
func parseAnalyzeRequest(c *gin.Context) (models.AnalyzeRequest, error) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.ScraperJSON == nil {
		return req, fmt.Errorf("missing scraper_json in request")
	}
	if req.CandidateName == "" {
		req.CandidateName = "Unknown Candidate"
	}
	return req, nil
}

// BatchAnalyzeHandler runs every candidate synchronously and reports
// per-candidate status plus aggregate counts.
func (h *APIHandler) BatchAnalyzeHandler(c *gin.Context) {
	start := time.Now()

	req, err := parseBatchRequest(c)
	if err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result := h.App.Analyzer.AnalyzeBatch(c.Request.Context(), req.Candidates)
	result.ProcessingTimeSeconds = roundSeconds(time.Since(start))

	c.JSON(http.StatusOK, result)
}

// BatchAsyncHandler enqueues each candidate as a background task and
// returns the task ids. Requires a configured job queue.
func (h *APIHandler) BatchAsyncHandler(c *gin.Context) {
	if h.App.JobClient == nil {
		Unavailable(c, "Background analysis is not configured (redis.address is unset)")
		return
	}

	req, err := parseBatchRequest(c)
	if err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	type enqueued struct {
		CandidateName string `json:"candidate_name"`
		TaskID        string `json:"task_id"`
	}
	accepted := make([]enqueued, 0, len(req.Candidates))

	for _, candidate := range req.Candidates {
		task, err := tasks.NewCandidateAnalysisTask(tasks.CandidateAnalysisPayload{
			CandidateName: candidate.CandidateName,
			ScraperJSON:   candidate.ScraperJSON,
			Options:       candidate.Options,
		})
		if err != nil {
			Internal(c, fmt.Sprintf("BatchAsyncHandler: failed to build task: %v", err))
			return
		}

		info, err := h.App.JobClient.Enqueue(task,
			asynq.TaskID(uuid.NewString()),
			asynq.Retention(AsyncResultRetention),
		)
		if err != nil {
			Internal(c, fmt.Sprintf("BatchAsyncHandler: failed to enqueue candidate %q: %v", candidate.CandidateName, err))
			return
		}
		accepted = append(accepted, enqueued{CandidateName: candidate.CandidateName, TaskID: info.ID})
	}

	c.JSON(http.StatusAccepted, gin.H{
		"accepted":         accepted,
		"total_candidates": len(accepted),
	})
}

func parseBatchRequest(c *gin.Context) (models.BatchRequest, error) {
	var req models.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if len(req.Candidates) == 0 {
		return req, fmt.Errorf("no candidates provided for batch analysis")
	}
	return req, nil
}

// roundSeconds reports elapsed time rounded to two decimals, the precision
// downstream dashboards expect.
func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}
