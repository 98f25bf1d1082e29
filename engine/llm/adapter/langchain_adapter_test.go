package llmadapter

import (
	"testing"

	"github.com/aicopilotvisual/aicopilot-visual/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

func TestNewLangChainAdapter(t *testing.T) {
	t.Run("Should reject nil config", func(t *testing.T) {
		_, err := NewLangChainAdapter(nil)
		require.Error(t, err)
	})
	t.Run("Should create an adapter from a populated config", func(t *testing.T) {
		adapter, err := NewLangChainAdapter(&config.OpenAIConfig{
			APIKey:          "sk-test",
			CompletionModel: "gpt-4-turbo-preview",
		})
		require.NoError(t, err)
		assert.NotNil(t, adapter.model)
	})
}

func TestConvertMessages(t *testing.T) {
	adapter := &LangChainAdapter{}
	t.Run("Should prepend the system prompt", func(t *testing.T) {
		req := &LLMRequest{
			SystemPrompt: "You are an automation expert.",
			Messages:     []Message{{Role: RoleUser, Content: "automate onboarding"}},
		}
		messages := adapter.convertMessages(req)
		require.Len(t, messages, 2)
		assert.Equal(t, llms.ChatMessageTypeSystem, messages[0].Role)
		assert.Equal(t, llms.ChatMessageTypeHuman, messages[1].Role)
	})
	t.Run("Should default unknown roles to human", func(t *testing.T) {
		assert.Equal(t, llms.ChatMessageTypeHuman, adapter.mapMessageRole("robot"))
	})
}

func TestBuildCallOptions(t *testing.T) {
	adapter := &LangChainAdapter{}
	t.Run("Should include JSON mode when requested", func(t *testing.T) {
		req := &LLMRequest{Options: CallOptions{UseJSONMode: true}}
		assert.Len(t, adapter.buildCallOptions(req), 1)
	})
	t.Run("Should return no options for a zero-valued request", func(t *testing.T) {
		assert.Empty(t, adapter.buildCallOptions(&LLMRequest{}))
	})
}

func TestConvertResponse(t *testing.T) {
	adapter := &LangChainAdapter{}
	t.Run("Should error on a response without choices", func(t *testing.T) {
		_, err := adapter.convertResponse(&llms.ContentResponse{})
		require.Error(t, err)
	})
	t.Run("Should take the first choice content", func(t *testing.T) {
		resp, err := adapter.convertResponse(&llms.ContentResponse{
			Choices: []*llms.ContentChoice{{Content: `{"steps":[]}`}},
		})
		require.NoError(t, err)
		assert.Equal(t, `{"steps":[]}`, resp.Content)
	})
}
