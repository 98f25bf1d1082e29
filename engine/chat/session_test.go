package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/aicopilotvisual/aicopilot-visual/engine/auth"
	"github.com/aicopilotvisual/aicopilot-visual/engine/auth/quota"
	"github.com/aicopilotvisual/aicopilot-visual/engine/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyzer struct {
	result *workflow.Analysis
	err    error
	calls  int
}

func (a *stubAnalyzer) Analyze(context.Context, string) (*workflow.Analysis, error) {
	a.calls++
	return a.result, a.err
}

func sampleAnalysis() *workflow.Analysis {
	return &workflow.Analysis{
		Steps: []workflow.Step{
			{
				ID:          "step-1",
				Title:       "Send welcome email",
				Description: "Email each new customer",
				Tools:       []string{"Make", "Gmail"},
				Complexity:  workflow.ComplexityLow,
			},
		},
		Recommendations: workflow.Recommendations{
			Platforms:      []string{"Make"},
			Considerations: []string{},
		},
	}
}

func newTestSession(analyzer Analyzer, limit int) *Session {
	mgr := quota.NewManager(quota.NewMemoryStore(), limit)
	return NewSession(auth.NewStaticSession("user-1"), mgr, analyzer)
}

func TestSend(t *testing.T) {
	ctx := context.Background()
	t.Run("Should reject blank input", func(t *testing.T) {
		session := newTestSession(&stubAnalyzer{}, 2)
		_, err := session.Send(ctx, "   ")
		require.ErrorIs(t, err, ErrEmptyInput)
	})
	t.Run("Should require a signed-in user before any call", func(t *testing.T) {
		analyzer := &stubAnalyzer{result: sampleAnalysis()}
		mgr := quota.NewManager(quota.NewMemoryStore(), 2)
		session := NewSession(auth.NewStaticSession(""), mgr, analyzer)
		_, err := session.Send(ctx, "automate onboarding")
		require.ErrorIs(t, err, ErrNotSignedIn)
		assert.Zero(t, analyzer.calls)
	})
	t.Run("Should block at the message limit without calling upstream", func(t *testing.T) {
		analyzer := &stubAnalyzer{result: sampleAnalysis()}
		session := newTestSession(analyzer, 1)
		_, err := session.Send(ctx, "automate customer onboarding")
		require.NoError(t, err)
		_, err = session.Send(ctx, "automate invoice approvals")
		require.ErrorIs(t, err, ErrMessageLimit)
		assert.Equal(t, 1, analyzer.calls)
	})
	t.Run("Should answer short prompts with guidance and no analysis", func(t *testing.T) {
		analyzer := &stubAnalyzer{result: sampleAnalysis()}
		session := newTestSession(analyzer, 2)
		result, err := session.Send(ctx, "hi")
		require.NoError(t, err)
		assert.Zero(t, analyzer.calls)
		assert.Equal(t, RoleAssistant, result.Reply.Role)
		assert.Contains(t, result.Reply.Content, "Please provide more details")
		assert.Nil(t, result.Steps)
	})
	t.Run("Should consume quota even for guidance replies", func(t *testing.T) {
		session := newTestSession(&stubAnalyzer{result: sampleAnalysis()}, 2)
		_, err := session.Send(ctx, "hey")
		require.NoError(t, err)
		label, err := session.RemainingLabel(ctx)
		require.NoError(t, err)
		assert.Equal(t, "1 message remaining", label)
	})
	t.Run("Should format the analysis into the assistant reply", func(t *testing.T) {
		session := newTestSession(&stubAnalyzer{result: sampleAnalysis()}, 2)
		result, err := session.Send(ctx, "automate customer onboarding")
		require.NoError(t, err)
		assert.Contains(t, result.Reply.Content, "broken it down into 1 steps")
		assert.Contains(t, result.Reply.Content, "1. Send welcome email")
		assert.Contains(t, result.Reply.Content, "Complexity: low")
		assert.Contains(t, result.Reply.Content, "Tools: Make, Gmail")
		assert.Contains(t, result.Reply.Content, "Recommended Platforms:\nMake")
		assert.Contains(t, result.Reply.Content, "No specific considerations provided")
		require.Len(t, result.Steps, 1)
	})
	t.Run("Should record both sides of the conversation", func(t *testing.T) {
		session := newTestSession(&stubAnalyzer{result: sampleAnalysis()}, 2)
		_, err := session.Send(ctx, "automate customer onboarding")
		require.NoError(t, err)
		messages := session.Messages()
		require.Len(t, messages, 2)
		assert.Equal(t, RoleUser, messages[0].Role)
		assert.Equal(t, RoleAssistant, messages[1].Role)
		assert.NotEmpty(t, messages[0].ID)
		assert.NotEqual(t, messages[0].ID, messages[1].ID)
	})
	t.Run("Should recover from analysis failures with an apology reply", func(t *testing.T) {
		session := newTestSession(&stubAnalyzer{err: errors.New("upstream down")}, 2)
		result, err := session.Send(ctx, "automate customer onboarding")
		require.NoError(t, err)
		assert.Contains(t, result.Reply.Content, "I apologize")
		assert.Nil(t, result.Steps)
		// A later message still goes through.
		session.analyzer = &stubAnalyzer{result: sampleAnalysis()}
		result, err = session.Send(ctx, "automate invoice approvals")
		require.NoError(t, err)
		require.Len(t, result.Steps, 1)
	})
}

func TestRemainingLabel(t *testing.T) {
	ctx := context.Background()
	t.Run("Should prompt anonymous visitors to sign in", func(t *testing.T) {
		mgr := quota.NewManager(quota.NewMemoryStore(), 2)
		session := NewSession(auth.NewStaticSession(""), mgr, &stubAnalyzer{})
		label, err := session.RemainingLabel(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Sign in to send messages", label)
	})
	t.Run("Should pluralize the remaining count", func(t *testing.T) {
		session := newTestSession(&stubAnalyzer{}, 2)
		label, err := session.RemainingLabel(ctx)
		require.NoError(t, err)
		assert.Equal(t, "2 messages remaining", label)
	})
	t.Run("Should report a reached limit", func(t *testing.T) {
		session := newTestSession(&stubAnalyzer{result: sampleAnalysis()}, 1)
		_, err := session.Send(ctx, "automate reports")
		require.NoError(t, err)
		label, err := session.RemainingLabel(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Message limit reached", label)
	})
}
