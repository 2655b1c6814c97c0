package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPProvider calls a completion endpoint that accepts a CompletionRequest body
// and answers {"text": "..."}.
type HTTPProvider struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
}

// NewHTTPProvider creates a provider for endpoint. A nil client gets one with timeout.
func NewHTTPProvider(endpoint, apiKey, model string, timeout time.Duration, client *http.Client) *HTTPProvider {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &HTTPProvider{endpoint: endpoint, apiKey: apiKey, model: model, client: client}
}

func (p *HTTPProvider) IsAvailable() bool {
	return p.endpoint != "" && p.apiKey != ""
}

type completionResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

func (p *HTTPProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if !p.IsAvailable() {
		return "", ErrUnavailable
	}
	if req.Model == "" {
		req.Model = p.model
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("completion endpoint returned %d", resp.StatusCode)
	}

	var out completionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("completion endpoint error: %s", out.Error)
	}
	return out.Text, nil
}
