package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	llmadapter "github.com/aicopilotvisual/aicopilot-visual/engine/llm/adapter"
	"github.com/aicopilotvisual/aicopilot-visual/engine/workflow"
	"github.com/aicopilotvisual/aicopilot-visual/pkg/logger"
)

// Service turns a free-text automation request into a total, fully
// populated workflow.Analysis. It issues exactly one completion request
// per call and never retries; retry policy belongs to the caller.
type Service struct {
	client  llmadapter.LLMClient
	timeout time.Duration
}

// NewService creates an analysis service on top of the given completion
// client. timeout bounds each completion call; zero disables the bound.
func NewService(client llmadapter.LLMClient, timeout time.Duration) *Service {
	return &Service{client: client, timeout: timeout}
}

// Analyze sends the prompt to the completion provider in JSON mode and
// normalizes the reply. The result always satisfies the model
// invariants: steps is never empty and every step field is populated.
func (s *Service) Analyze(ctx context.Context, prompt string) (*workflow.Analysis, error) {
	log := logger.FromContext(ctx)
	log.Debug("Analyzing automation request", "prompt_length", len(prompt))
	content, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, ErrEmptyResponse
	}
	var parsed any
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		log.Warn("Completion content is not valid JSON", "error", err)
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, err)
	}
	result := normalize(parsed, prompt)
	log.Debug("Analysis complete", "steps", len(result.Steps))
	return result, nil
}

func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	resp, err := s.client.GenerateContent(ctx, &llmadapter.LLMRequest{
		SystemPrompt: systemPrompt,
		Messages:     []llmadapter.Message{{Role: llmadapter.RoleUser, Content: prompt}},
		Options:      llmadapter.CallOptions{UseJSONMode: true},
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if resp == nil {
		return "", nil
	}
	return resp.Content, nil
}

// normalize coerces the decoded provider reply into a total analysis.
// A missing or non-array steps field produces the single fallback step
// carrying the original prompt.
func normalize(parsed any, prompt string) *workflow.Analysis {
	result := &workflow.Analysis{}
	obj, _ := parsed.(map[string]any)
	if raws, ok := workflow.RawStepsFromValue(obj["steps"]); ok && len(raws) > 0 {
		result.Steps = workflow.NormalizeSteps(raws)
	} else {
		result.Steps = []workflow.Step{fallbackStep(prompt)}
	}
	result.Recommendations = workflow.NormalizeRecommendations(obj["recommendations"])
	return result
}

// fallbackStep is synthesized when the provider returns no usable step
// list; its description embeds the original prompt verbatim.
func fallbackStep(prompt string) workflow.Step {
	return workflow.Step{
		ID:          "step-1",
		Title:       "Analyze Requirements",
		Description: fmt.Sprintf(`Analyze and plan automation for: "%s"`, prompt),
		Tools:       []string{"Documentation tools"},
		Complexity:  workflow.ComplexityMedium,
		Module:      "custom:AnalyzeRequirements",
		Version:     1,
		Parameters:  map[string]any{},
		Mapper:      map[string]any{},
	}
}
