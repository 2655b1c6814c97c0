package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GenAIProvider completes prompts with Google's Gemini API.
type GenAIProvider struct {
	client *genai.Client
	model  string
}

// NewGenAIProvider creates a Gemini provider.
func NewGenAIProvider(ctx context.Context, apiKey, model string) (*GenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GenAIProvider{client: client, model: model}, nil
}

func (p *GenAIProvider) IsAvailable() bool {
	return p.client != nil
}

func (p *GenAIProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(req.Temperature)),
		ResponseMIMEType: "application/json",
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	resp, err := p.client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	return resp.Text(), nil
}
