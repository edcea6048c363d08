package classifier

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"vettr/internal/models"
)

// OpenAIClassifier implements Provider against any OpenAI-compatible chat
// completion endpoint.
type OpenAIClassifier struct {
	client interface {
		CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	}
	model          string
	promptTemplate string
}

// NewOpenAIClassifier accepts a narrow chat-completion client so tests can
// substitute a mock.
func NewOpenAIClassifier(client interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}, model, promptTemplate string) *OpenAIClassifier {
	if promptTemplate == "" {
		promptTemplate = DefaultPromptTemplate
	}
	return &OpenAIClassifier{
		client:         client,
		model:          model,
		promptTemplate: promptTemplate,
	}
}

func (o *OpenAIClassifier) ModelName() string { return o.model }

func (o *OpenAIClassifier) Classify(ctx context.Context, item models.ContentItem, contentID string) (models.Classification, error) {
	if o.client == nil {
		return models.Classification{}, fmt.Errorf("OpenAI classifier is not initialized with a client")
	}

	prompt := BuildPrompt(o.promptTemplate, item)

	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: o.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		return models.Classification{}, fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return models.Classification{}, fmt.Errorf("no choices returned from OpenAI")
	}

	return ParseResponse(resp.Choices[0].Message.Content, contentID)
}

var _ Provider = (*OpenAIClassifier)(nil)
