package testutil

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Dxne-Dev/Bet-predict/internal/service"
)

// MockInferencer is a canned service.Inferencer for tests.
type MockInferencer struct {
	mu       sync.Mutex
	Response json.RawMessage
	Err      error
	// Handler, when set, takes precedence over Response/Err.
	Handler  func(req service.InferRequest) (json.RawMessage, error)
	Requests []service.InferRequest
}

// Infer implements service.Inferencer.
func (m *MockInferencer) Infer(_ context.Context, req service.InferRequest) (json.RawMessage, error) {
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	m.mu.Unlock()

	if m.Handler != nil {
		return m.Handler(req)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

// CallCount returns how many calls the mock has served.
func (m *MockInferencer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}
