package tasks

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vettr/internal/models"
)

func TestNewCandidateAnalysisTask(t *testing.T) {
	payload := CandidateAnalysisPayload{
		CandidateName: "Jane Doe",
		ScraperJSON: &models.ScrapeResult{
			Success: true,
			Data: models.ScrapeData{Posts: []models.RawPost{{Text: "hello"}}},
		},
		Options: map[string]any{"depth": "full"},
	}

	task, err := NewCandidateAnalysisTask(payload)
	require.NoError(t, err)
	assert.Equal(t, TypeCandidateAnalysis, task.Type())

	var decoded CandidateAnalysisPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, "Jane Doe", decoded.CandidateName)
	require.NotNil(t, decoded.ScraperJSON)
	assert.True(t, decoded.ScraperJSON.Success)
	require.Len(t, decoded.ScraperJSON.Data.Posts, 1)
	assert.Equal(t, "hello", decoded.ScraperJSON.Data.Posts[0].Text)
}
