package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"vettr/internal/models"
)

// Provider classifies a single content item and may fail. Failures are
// recovered by the Fallback adapter, never surfaced to the pipeline.
type Provider interface {
	Classify(ctx context.Context, item models.ContentItem, contentID string) (models.Classification, error)
	ModelName() string
}

// DefaultPromptTemplate asks the model for a JSON risk assessment of one
// post. Placeholders are substituted per item.
const DefaultPromptTemplate = `Analyze this social media content for workplace-relevant behavioral concerns:

Content: "{{TEXT}}"
Platform: {{PLATFORM}}
Post Type: {{POST_TYPE}}
Engagement: {{ENGAGEMENT}}

Evaluate for these categories:
1. Personal attacks on individuals
2. Harassment patterns
3. Hate speech toward groups
4. Spreading disinformation
5. Excessive negativity

Consider context, sarcasm, cultural communication styles, and whether this is a response to provocation.

Respond in JSON format:
{
    "risk_level": "low|moderate|high|critical",
    "categories": ["list of applicable categories"],
    "confidence_score": 0.0-1.0,
    "reasoning": "detailed explanation",
    "red_flags": ["specific concerning elements"],
    "context_notes": "context considered"
}`

// BuildPrompt substitutes one item into the prompt template.
func BuildPrompt(template string, item models.ContentItem) string {
	engagement := "None"
	if len(item.Engagement) > 0 {
		keys := make([]string, 0, len(item.Engagement))
		for k := range item.Engagement {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, fmt.Sprintf("%s=%g", k, item.Engagement[k]))
		}
		engagement = strings.Join(pairs, ", ")
	}

	prompt := template
	prompt = strings.ReplaceAll(prompt, "{{TEXT}}", item.Text)
	prompt = strings.ReplaceAll(prompt, "{{PLATFORM}}", item.Platform)
	prompt = strings.ReplaceAll(prompt, "{{POST_TYPE}}", item.PostType)
	prompt = strings.ReplaceAll(prompt, "{{ENGAGEMENT}}", engagement)
	return prompt
}

// rawClassification mirrors the JSON shape the prompt requests. Pointer
// fields distinguish missing required fields from zero values.
type rawClassification struct {
	RiskLevel       string   `json:"risk_level"`
	Categories      []string `json:"categories"`
	ConfidenceScore *float64 `json:"confidence_score"`
	Reasoning       string   `json:"reasoning"`
	RedFlags        []string `json:"red_flags"`
	ContextNotes    string   `json:"context_notes"` // tolerated, unused
}

// ParseResponse extracts and validates the JSON object embedded in a raw
// model response. Models routinely wrap the JSON in prose, so the payload
// is located by brace boundaries before structured parsing.
func ParseResponse(raw, contentID string) (models.Classification, error) {
	jsonText, err := ExtractJSONObject(raw)
	if err != nil {
		return models.Classification{}, err
	}

	var parsed rawClassification
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return models.Classification{}, fmt.Errorf("failed to parse classifier response as JSON: %w", err)
	}

	level, err := models.ParseRiskLevel(parsed.RiskLevel)
	if err != nil {
		return models.Classification{}, fmt.Errorf("classifier response: %w", err)
	}
	if parsed.ConfidenceScore == nil {
		return models.Classification{}, fmt.Errorf("classifier response missing confidence_score")
	}
	if *parsed.ConfidenceScore < 0 || *parsed.ConfidenceScore > 1 {
		return models.Classification{}, fmt.Errorf("classifier confidence_score %v outside [0,1]", *parsed.ConfidenceScore)
	}

	return models.Classification{
		ContentID:       contentID,
		RiskLevel:       level,
		Categories:      dedupe(parsed.Categories),
		ConfidenceScore: *parsed.ConfidenceScore,
		Reasoning:       parsed.Reasoning,
		RedFlags:        parsed.RedFlags,
	}, nil
}

// dedupe enforces set semantics on category keys while keeping first-seen
// order for stable output.
func dedupe(categories []string) []string {
	if len(categories) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(categories))
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
