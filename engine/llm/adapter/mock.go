package llmadapter

import "context"

// MockClient is a test double for LLMClient. Responses are returned in
// order; the last one repeats once the queue drains.
type MockClient struct {
	Responses []string
	Err       error
	Requests  []*LLMRequest
	calls     int
}

func (m *MockClient) GenerateContent(_ context.Context, req *LLMRequest) (*LLMResponse, error) {
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Responses) == 0 {
		return &LLMResponse{}, nil
	}
	idx := m.calls
	if idx >= len(m.Responses) {
		idx = len(m.Responses) - 1
	}
	m.calls++
	return &LLMResponse{Content: m.Responses[idx]}, nil
}

func (m *MockClient) Close() error {
	return nil
}
