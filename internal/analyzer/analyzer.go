package analyzer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"vettr/internal/models"
)

// confidenceThreshold is emitted in report metadata for downstream
// consumers. Nothing in the pipeline compares against it.
const confidenceThreshold = 0.6

// ItemClassifier is the adapter contract the pipeline depends on: classify
// one item, always succeed. classifier.Fallback is the production
// implementation; tests substitute deterministic stubs.
type ItemClassifier interface {
	Classify(ctx context.Context, item models.ContentItem, contentID string) models.Classification
	ModelName() string
}

// Service runs the full analysis pipeline for one candidate at a time.
// It holds no per-request state, so one Service is safe for concurrent
// requests.
type Service struct {
	classifier  ItemClassifier
	concurrency int
}

func New(classifier ItemClassifier, concurrency int) *Service {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Service{classifier: classifier, concurrency: concurrency}
}

// ModelName reports the classifier identity carried in report metadata.
func (s *Service) ModelName() string { return s.classifier.ModelName() }

// Analyze runs normalize, classify, aggregate, pattern, recommend and
// assembles the report. Errors are returned as error-shaped reports, never
// as Go errors: a failed candidate is data, not a transport failure.
func (s *Service) Analyze(ctx context.Context, scrape *models.ScrapeResult, candidateName string) *models.Report {
	items, err := NormalizeScrape(scrape)
	if err != nil {
		if !errors.Is(err, models.ErrScrapeFailed) {
			log.Warnf("Normalization failed for %q: %v", candidateName, err)
		}
		return errorReport(candidateName, fmt.Sprintf("Analysis failed: %v", err))
	}
	if len(items) == 0 {
		return errorReport(candidateName, models.ErrEmptyBatch.Error())
	}

	results := s.ClassifyBatch(ctx, items)
	overall := AggregateScore(results)
	patterns := AnalyzePatterns(items, results)
	recommendation := Recommend(overall)

	report := assembleReport(candidateName, results, overall, patterns, recommendation, s.classifier.ModelName())
	report.ScraperMetadata = scraperMetadata(scrape)
	return report
}

// ClassifyBatch classifies every item with bounded concurrency. Results
// are written into their input slot, so the returned slice zips with items
// by position regardless of completion order.
func (s *Service) ClassifyBatch(ctx context.Context, items []models.ContentItem) []models.Classification {
	results := make([]models.Classification, len(items))

	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, item models.ContentItem) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = s.classifier.Classify(ctx, item, fmt.Sprintf("item_%d", i))
		}(i, item)
	}
	wg.Wait()

	return results
}

// AnalyzeBatch runs each candidate independently. One candidate failing
// must not abort the others; failures land in that candidate's result slot.
func (s *Service) AnalyzeBatch(ctx context.Context, candidates []models.BatchCandidate) models.BatchResult {
	batch := models.BatchResult{
		BatchResults:    make([]models.BatchItemResult, 0, len(candidates)),
		TotalCandidates: len(candidates),
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}

	for _, candidate := range candidates {
		name := candidate.CandidateName
		if name == "" {
			name = "Unknown"
		}

		if candidate.ScraperJSON == nil {
			batch.BatchResults = append(batch.BatchResults, models.BatchItemResult{
				CandidateName: name,
				Error:         "Missing scraper_json",
				Status:        models.BatchStatusFailed,
			})
			batch.FailedAnalyses++
			continue
		}

		report := s.Analyze(ctx, candidate.ScraperJSON, name)
		item := models.BatchItemResult{
			CandidateName: name,
			Analysis:      report,
			Status:        models.BatchStatusCompleted,
		}
		if report.Failed() {
			item.Status = models.BatchStatusFailed
			item.Error = report.Error
			batch.FailedAnalyses++
		} else {
			batch.SuccessfulAnalyses++
		}
		batch.BatchResults = append(batch.BatchResults, item)
	}

	return batch
}

func assembleReport(candidateName string, results []models.Classification, overall models.OverallScore, patterns models.PatternAnalysis, recommendation models.Recommendation, modelName string) *models.Report {
	posts := make([]models.IndividualPost, len(results))
	for i, result := range results {
		posts[i] = models.IndividualPost{
			ContentID:  result.ContentID,
			RiskLevel:  result.RiskLevel,
			Categories: result.Categories,
			Confidence: result.ConfidenceScore,
			RedFlags:   result.RedFlags,
			Reasoning:  result.Reasoning,
		}
	}

	return &models.Report{
		Candidate: candidateName,
		AnalysisSummary: &models.AnalysisSummary{
			OverallScore:   overall.Score,
			RiskLevel:      overall.RiskLevel,
			Recommendation: recommendation.Decision,
			PostsAnalyzed:  overall.TotalPostsAnalyzed,
		},
		DetailedFindings: &models.DetailedFindings{
			CategoryBreakdown: overall.CategoryBreakdown,
			PatternAnalysis:   patterns,
			HighRiskRatio:     overall.HighRiskPostRatio,
		},
		IndividualPosts: posts,
		Recommendations: &models.RecommendationBlock{
			HiringDecision:   recommendation.Decision,
			Reasoning:        recommendation.Reason,
			SuggestedActions: recommendation.SuggestedActions,
			RequiresReview:   recommendation.ReviewRequired,
		},
		Metadata: &models.ReportMetadata{
			AnalysisTimestamp:   time.Now().UTC().Format(time.RFC3339),
			ModelVersion:        modelName,
			ConfidenceThreshold: confidenceThreshold,
		},
	}
}

func scraperMetadata(scrape *models.ScrapeResult) *models.ScraperMetadata {
	meta := &models.ScraperMetadata{
		Platform:   "unknown",
		TargetUser: "unknown",
		Timeframe:  "unknown",
		ScrapedAt:  "unknown",
	}
	if scrape.Data.Platform != "" {
		meta.Platform = scrape.Data.Platform
	}
	if scrape.Data.TargetUser != "" {
		meta.TargetUser = scrape.Data.TargetUser
	}
	if scrape.Data.Timeframe != "" {
		meta.Timeframe = scrape.Data.Timeframe
	}
	if scrape.Data.ScrapedAt != "" {
		meta.ScrapedAt = scrape.Data.ScrapedAt
	}
	meta.TotalPostsScraped = scrape.Data.TotalPosts
	return meta
}

func errorReport(candidateName, message string) *models.Report {
	return &models.Report{
		Candidate:         candidateName,
		Error:             message,
		AnalysisTimestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
