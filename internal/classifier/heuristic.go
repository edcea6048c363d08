package classifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"

	"vettr/internal/models"
)

// Keyword lists for the local fallback scan. Fixed at process start, never
// user-configurable.
var (
	personalAttackKeywords = []string{"idiot", "stupid", "moron", "loser", "pathetic"}
	hateKeywords           = []string{"hate", "disgusting", "should die", "kill yourself"}
)

// heuristicConfidence is the fixed confidence of keyword-only assessments.
const heuristicConfidence = 0.3

// Heuristic is the local keyword classifier. It backs the fallback path of
// the external providers and can also serve as the sole classifier when no
// API key is configured. It never fails.
type Heuristic struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

func NewHeuristic() *Heuristic {
	return &Heuristic{tokenizer: sentences.NewSentenceTokenizer(nil)}
}

func (h *Heuristic) ModelName() string { return "keyword-heuristic" }

// Classify satisfies Provider. The error is always nil.
func (h *Heuristic) Classify(ctx context.Context, item models.ContentItem, contentID string) (models.Classification, error) {
	result := h.scan(item, contentID)
	result.Reasoning = "Keyword heuristic analysis"
	return result, nil
}

// Recover produces the fallback classification for an item whose external
// classification failed, recording the triggering failure.
func (h *Heuristic) Recover(item models.ContentItem, contentID string, cause error) models.Classification {
	result := h.scan(item, contentID)
	result.Reasoning = fmt.Sprintf("Fallback analysis due to error: %v", cause)
	return result
}

// scan runs the keyword lists over the item text. A hate-speech match
// overrides a personal-attack match: high wins over moderate.
func (h *Heuristic) scan(item models.ContentItem, contentID string) models.Classification {
	textLower := strings.ToLower(item.Text)

	var categories []string
	var redFlags []string
	riskLevel := models.RiskLow

	if matched, keyword := matchAny(textLower, personalAttackKeywords); matched {
		categories = append(categories, "personal_attacks")
		redFlags = append(redFlags, "Personal attack keywords detected")
		redFlags = h.appendFlaggedSentence(redFlags, item.Text, keyword)
		riskLevel = models.RiskModerate
	}

	if matched, keyword := matchAny(textLower, hateKeywords); matched {
		categories = append(categories, "hate_speech")
		redFlags = append(redFlags, "Hate speech keywords detected")
		redFlags = h.appendFlaggedSentence(redFlags, item.Text, keyword)
		riskLevel = models.RiskHigh
	}

	return models.Classification{
		ContentID:       contentID,
		RiskLevel:       riskLevel,
		Categories:      categories,
		ConfidenceScore: heuristicConfidence,
		RedFlags:        redFlags,
	}
}

// appendFlaggedSentence adds the sentence containing the matched keyword as
// its own finding, so a reviewer sees the offending passage rather than the
// whole post.
func (h *Heuristic) appendFlaggedSentence(flags []string, text, keyword string) []string {
	for _, s := range h.tokenizer.Tokenize(text) {
		trimmed := strings.TrimSpace(s.Text)
		if trimmed == "" {
			continue
		}
		if strings.Contains(strings.ToLower(trimmed), keyword) {
			return append(flags, fmt.Sprintf("Flagged passage: %q", trimmed))
		}
	}
	return flags
}

func matchAny(textLower string, keywords []string) (bool, string) {
	for _, kw := range keywords {
		if strings.Contains(textLower, kw) {
			return true, kw
		}
	}
	return false, ""
}
