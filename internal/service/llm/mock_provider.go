package llm

import (
	"context"
	"sync"
)

// MockProvider returns a canned completion. It records the requests it receives.
type MockProvider struct {
	mu        sync.Mutex
	available bool
	response  string
	err       error
	requests  []CompletionRequest
}

// NewMockProvider creates an available mock that answers response.
func NewMockProvider(response string) *MockProvider {
	return &MockProvider{available: true, response: response}
}

func (m *MockProvider) IsAvailable() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.available
}

func (m *MockProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if !m.available {
		return "", ErrUnavailable
	}
	return m.response, m.err
}

// SetAvailable controls whether the mock provider is available (for testing)
func (m *MockProvider) SetAvailable(available bool) {
	m.mu.Lock()
	m.available = available
	m.mu.Unlock()
}

// SetError makes every following call fail with err.
func (m *MockProvider) SetError(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

// Requests returns the requests seen so far.
func (m *MockProvider) Requests() []CompletionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]CompletionRequest(nil), m.requests...)
}
