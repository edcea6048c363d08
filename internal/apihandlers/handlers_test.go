package apihandlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vettr/internal/analyzer"
	"vettr/internal/app"
	"vettr/internal/classifier"
	"vettr/internal/config"
	"vettr/internal/models"
)

// newTestRouter builds the API on a heuristic-only classifier chain, so
// requests never leave the process.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fallback := classifier.NewFallback(nil, classifier.NewHeuristic(), time.Second)
	appInstance := &app.App{
		Config:   &config.Config{},
		Analyzer: analyzer.New(fallback, 2),
	}
	handler := NewAPIHandler(appInstance)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/analyze", handler.AnalyzeHandler)
	v1.POST("/analyze/batch", handler.BatchAnalyzeHandler)
	v1.POST("/analyze/batch/async", handler.BatchAsyncHandler)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func scrapeFixture(texts ...string) *models.ScrapeResult {
	posts := make([]models.RawPost, len(texts))
	for i, text := range texts {
		posts[i] = models.RawPost{Text: text, Date: "2024-06-01"}
	}
	return &models.ScrapeResult{
		Success: true,
		Data: models.ScrapeData{
			Platform:   "twitter",
			TargetUser: "jdoe",
			TotalPosts: len(posts),
			Posts:      posts,
		},
	}
}

func TestAnalyzeHandler_Success(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/analyze", models.AnalyzeRequest{
		ScraperJSON:   scrapeFixture("what a nice day", "you are an idiot"),
		CandidateName: "Jane Doe",
		Options:       map[string]any{"depth": "standard"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Processing-Time"))

	var report models.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))

	assert.Equal(t, "Jane Doe", report.Candidate)
	require.NotNil(t, report.AnalysisSummary)
	assert.Equal(t, 2, report.AnalysisSummary.PostsAnalyzed)
	require.NotNil(t, report.ProcessingMetadata)
	assert.Equal(t, app.ServiceVersion, report.ProcessingMetadata.ServiceVersion)
	assert.Equal(t, map[string]any{"depth": "standard"}, report.ProcessingMetadata.AnalysisOptions)
}

func TestAnalyzeHandler_MissingScraperJSON(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/analyze", map[string]any{
		"candidate_name": "Jane Doe",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing scraper_json")
}

func TestAnalyzeHandler_FailedScrapeStillHTTP200(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/analyze", models.AnalyzeRequest{
		ScraperJSON: &models.ScrapeResult{Success: false, Error: "rate limited"},
	})

	require.Equal(t, http.StatusOK, rec.Code, "analysis failures are data, not transport errors")

	var report models.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.True(t, report.Failed())
	assert.Contains(t, report.Error, "rate limited")
	assert.Equal(t, "Unknown Candidate", report.Candidate)
	assert.Nil(t, report.AnalysisSummary)
}

func TestBatchAnalyzeHandler(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/analyze/batch", models.BatchRequest{
		Candidates: []models.BatchCandidate{
			{CandidateName: "A", ScraperJSON: scrapeFixture("fine")},
			{CandidateName: "B", ScraperJSON: &models.ScrapeResult{Success: false, Error: "blocked"}},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.BatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 2, result.TotalCandidates)
	assert.Equal(t, 1, result.SuccessfulAnalyses)
	assert.Equal(t, 1, result.FailedAnalyses)
	require.Len(t, result.BatchResults, 2)
	assert.Equal(t, models.BatchStatusCompleted, result.BatchResults[0].Status)
	assert.Equal(t, models.BatchStatusFailed, result.BatchResults[1].Status)
}

func TestBatchAnalyzeHandler_NoCandidates(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/analyze/batch", models.BatchRequest{})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no candidates")
}

func TestBatchAsyncHandler_QueueNotConfigured(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/analyze/batch/async", models.BatchRequest{
		Candidates: []models.BatchCandidate{
			{CandidateName: "A", ScraperJSON: scrapeFixture("fine")},
		},
	})

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "not configured")
}
