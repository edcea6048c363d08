package classifier

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"vettr/internal/models"
)

// GeminiClassifier implements Provider using the Google Gemini API, the
// same model family the scraper pipeline was originally built around.
type GeminiClassifier struct {
	client         *genai.Client
	model          string
	promptTemplate string
}

// NewGeminiClassifier creates a Gemini-backed classifier. Falls back to the
// GEMINI_API_KEY environment variable when apiKey is empty.
func NewGeminiClassifier(apiKey, model, promptTemplate string) (*GeminiClassifier, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key not provided")
	}
	if model == "" {
		model = "gemini-pro"
	}
	if promptTemplate == "" {
		promptTemplate = DefaultPromptTemplate
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	log.Infof("Gemini classifier initialized with model %s", model)

	return &GeminiClassifier{
		client:         client,
		model:          model,
		promptTemplate: promptTemplate,
	}, nil
}

func (g *GeminiClassifier) ModelName() string { return g.model }

func (g *GeminiClassifier) Classify(ctx context.Context, item models.ContentItem, contentID string) (models.Classification, error) {
	prompt := BuildPrompt(g.promptTemplate, item)

	resp, err := g.client.GenerativeModel(g.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return models.Classification{}, fmt.Errorf("Gemini API error: %w", err)
	}

	raw, err := geminiResponseText(resp)
	if err != nil {
		return models.Classification{}, err
	}
	return ParseResponse(raw, contentID)
}

// geminiResponseText concatenates the text parts of the first candidate.
func geminiResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("Gemini API returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("Gemini API returned no text content")
	}
	return sb.String(), nil
}

// Close cleans up the underlying client.
func (g *GeminiClassifier) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

var _ Provider = (*GeminiClassifier)(nil)
