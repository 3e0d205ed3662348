package extract

import (
	"context"
	"fmt"

	"github.com/ppiankov/claimsort/internal/model"
	openai "github.com/sashabaranov/go-openai"
)

// openAIConfidence is reported for successful hosted extractions; the chat
// API does not expose a per-call confidence.
const openAIConfidence = 0.90

// OpenAIProvider extracts document text through the OpenAI chat API. It is
// the real-backend substitution point for the simulated provider.
type OpenAIProvider struct {
	client    *openai.Client
	modelName string
	maxTokens int
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(cfg model.ExtractionConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = openai.GPT4oMini
	}

	return &OpenAIProvider{
		client:    openai.NewClientWithConfig(clientConfig),
		modelName: modelName,
		maxTokens: 1000,
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the provider is properly configured and reachable
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	_, err := p.client.ListModels(ctx)
	return err == nil
}

// ExtractText asks the model to transcribe the uploaded document. The
// caller is expected to bound ctx with the configured extraction timeout.
func (p *OpenAIProvider) ExtractText(ctx context.Context, upload model.FileUpload) (*Result, error) {
	if len(upload.Content) == 0 {
		return nil, fmt.Errorf("upload %q has no content", upload.Name)
	}

	prompt := fmt.Sprintf(`Transcribe the following insurance claim document into plain text.
Preserve dates, amounts, names, and locations exactly. Do not add commentary.

Document name: %s

%s`, upload.Name, string(upload.Content))

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     p.modelName,
		MaxTokens: p.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no completion choices returned")
	}

	return &Result{
		Text:       resp.Choices[0].Message.Content,
		Confidence: openAIConfidence,
	}, nil
}
