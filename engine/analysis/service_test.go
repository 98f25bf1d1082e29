package analysis

import (
	"context"
	"errors"
	"testing"

	llmadapter "github.com/aicopilotvisual/aicopilot-visual/engine/llm/adapter"
	"github.com/aicopilotvisual/aicopilot-visual/engine/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(responses ...string) (*Service, *llmadapter.MockClient) {
	client := &llmadapter.MockClient{Responses: responses}
	return NewService(client, 0), client
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()
	t.Run("Should request JSON mode with the fixed system prompt", func(t *testing.T) {
		svc, client := newService(`{"steps":[{"title":"A"}]}`)
		_, err := svc.Analyze(ctx, "automate invoices")
		require.NoError(t, err)
		require.Len(t, client.Requests, 1)
		req := client.Requests[0]
		assert.True(t, req.Options.UseJSONMode)
		assert.Contains(t, req.SystemPrompt, "AI automation expert")
		require.Len(t, req.Messages, 1)
		assert.Equal(t, llmadapter.RoleUser, req.Messages[0].Role)
		assert.Equal(t, "automate invoices", req.Messages[0].Content)
	})
	t.Run("Should default missing step fields", func(t *testing.T) {
		svc, _ := newService(`{"steps":[{"title":"Send welcome email"}],` +
			`"recommendations":{"platforms":["Make"],"considerations":[]}}`)
		result, err := svc.Analyze(ctx, "automate customer onboarding")
		require.NoError(t, err)
		require.Len(t, result.Steps, 1)
		step := result.Steps[0]
		assert.Equal(t, "step-1", step.ID)
		assert.Equal(t, "Send welcome email", step.Title)
		assert.Equal(t, "No description provided", step.Description)
		assert.Equal(t, []string{}, step.Tools)
		assert.Equal(t, workflow.ComplexityMedium, step.Complexity)
		assert.Equal(t, "custom:Module", step.Module)
		assert.Equal(t, workflow.Designer{X: 0, Y: 0}, step.Metadata.Designer)
		assert.Equal(t, []string{"Make"}, result.Recommendations.Platforms)
		assert.Equal(t, []string{}, result.Recommendations.Considerations)
	})
	t.Run("Should synthesize a fallback step for non-array steps fields", func(t *testing.T) {
		for _, content := range []string{
			`{}`,
			`{"steps":null}`,
			`{"steps":{"first":true}}`,
			`{"steps":"none"}`,
			`{"steps":[]}`,
			`"just a string"`,
		} {
			svc, _ := newService(content)
			result, err := svc.Analyze(ctx, "automate customer onboarding")
			require.NoError(t, err, content)
			require.Len(t, result.Steps, 1, content)
			step := result.Steps[0]
			assert.Equal(t, "step-1", step.ID)
			assert.Equal(t, "Analyze Requirements", step.Title)
			assert.Contains(t, step.Description, "automate customer onboarding")
			assert.Equal(t, "custom:AnalyzeRequirements", step.Module)
			assert.Equal(t, workflow.Designer{X: 0, Y: 0}, step.Metadata.Designer)
		}
	})
	t.Run("Should produce one step per source element with positional defaults", func(t *testing.T) {
		svc, _ := newService(`{"steps":[{"id":"a"},{"complexity":"low"},{}]}`)
		result, err := svc.Analyze(ctx, "automate reports")
		require.NoError(t, err)
		require.Len(t, result.Steps, 3)
		assert.Equal(t, "a", result.Steps[0].ID)
		assert.Equal(t, "step-2", result.Steps[1].ID)
		assert.Equal(t, workflow.ComplexityLow, result.Steps[1].Complexity)
		assert.Equal(t, float64(600), result.Steps[2].Metadata.Designer.X)
	})
	t.Run("Should preserve supplied designer coordinates", func(t *testing.T) {
		svc, _ := newService(`{"steps":[{"metadata":{"designer":{"x":50,"y":10}}}]}`)
		result, err := svc.Analyze(ctx, "automate")
		require.NoError(t, err)
		assert.Equal(t, workflow.Designer{X: 50, Y: 10}, result.Steps[0].Metadata.Designer)
	})
	t.Run("Should return ErrEmptyResponse for empty content", func(t *testing.T) {
		svc, _ := newService("")
		_, err := svc.Analyze(ctx, "automate onboarding")
		require.ErrorIs(t, err, ErrEmptyResponse)
	})
	t.Run("Should return ErrMalformedResponse for invalid JSON", func(t *testing.T) {
		svc, _ := newService("not json")
		_, err := svc.Analyze(ctx, "automate onboarding")
		require.ErrorIs(t, err, ErrMalformedResponse)
	})
	t.Run("Should wrap upstream errors without retrying", func(t *testing.T) {
		upstream := errors.New("rate limited")
		client := &llmadapter.MockClient{Err: upstream}
		svc := NewService(client, 0)
		_, err := svc.Analyze(ctx, "automate onboarding")
		require.ErrorIs(t, err, upstream)
		assert.Len(t, client.Requests, 1)
	})
	t.Run("Should populate empty recommendations for a missing object", func(t *testing.T) {
		svc, _ := newService(`{"steps":[{"title":"A"}],"recommendations":{}}`)
		result, err := svc.Analyze(ctx, "automate")
		require.NoError(t, err)
		assert.Equal(t, []string{}, result.Recommendations.Platforms)
		assert.Equal(t, []string{}, result.Recommendations.Considerations)
	})
}
