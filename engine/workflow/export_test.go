package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSteps() []Step {
	return []Step{
		{
			ID:          "step-1",
			Title:       "Watch RSS feed",
			Description: "Trigger on new articles",
			Tools:       []string{"Make"},
			Complexity:  ComplexityLow,
			Module:      "rss:TriggerNewArticle",
			Version:     1,
			Parameters:  map[string]any{"url": "https://example.com/rss"},
			Mapper:      map[string]any{},
			Metadata:    Metadata{Designer: Designer{X: 0, Y: 0}},
		},
		{
			ID:          "step-2",
			Title:       "Summarize article",
			Description: "Create a completion per article",
			Tools:       []string{"OpenAI"},
			Complexity:  ComplexityMedium,
			Module:      "openai-gpt-3:CreateCompletion",
			Version:     1,
			Parameters:  map[string]any{},
			Mapper:      map[string]any{"prompt": "{{1.title}}"},
			Metadata:    Metadata{Designer: Designer{X: 300, Y: 0}},
		},
	}
}

func TestMakeBlueprint(t *testing.T) {
	t.Run("Should number flow modules from one and keep step order", func(t *testing.T) {
		blueprint := MakeBlueprint(sampleSteps())
		require.Len(t, blueprint.Flow, 2)
		assert.Equal(t, 1, blueprint.Flow[0].ID)
		assert.Equal(t, 2, blueprint.Flow[1].ID)
		assert.Equal(t, "rss:TriggerNewArticle", blueprint.Flow[0].Module)
		assert.Equal(t, "openai-gpt-3:CreateCompletion", blueprint.Flow[1].Module)
	})
	t.Run("Should carry designer coordinates into the flow", func(t *testing.T) {
		blueprint := MakeBlueprint(sampleSteps())
		assert.Equal(t, float64(300), blueprint.Flow[1].Metadata.Designer.X)
	})
	t.Run("Should fall back on zero-valued module and version", func(t *testing.T) {
		blueprint := MakeBlueprint([]Step{{}})
		assert.Equal(t, "custom:Module", blueprint.Flow[0].Module)
		assert.Equal(t, 1, blueprint.Flow[0].Version)
		assert.NotNil(t, blueprint.Flow[0].Parameters)
		assert.NotNil(t, blueprint.Flow[0].Mapper)
	})
	t.Run("Should build the scenario metadata envelope", func(t *testing.T) {
		blueprint := MakeBlueprint(sampleSteps())
		assert.Equal(t, "AI Copilot Workflow", blueprint.Name)
		assert.Equal(t, "eu2.make.com", blueprint.Metadata.Zone)
		assert.Equal(t, 3, blueprint.Metadata.Scenario.MaxErrors)
		assert.True(t, blueprint.Metadata.Scenario.AutoCommit)
		assert.False(t, blueprint.Metadata.Scenario.Sequential)
		require.Len(t, blueprint.Metadata.Notes, 1)
		assert.Equal(t, "AI Copilot generated workflow with 2 steps", blueprint.Metadata.Notes[0])
	})
}

func TestMarkdownDocument(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	t.Run("Should include overview, step sections and execution notes", func(t *testing.T) {
		doc := MarkdownDocument(sampleSteps(), now)
		assert.Contains(t, doc, "# AI Copilot Workflow Documentation")
		assert.Contains(t, doc, "This workflow contains 2 automation steps.")
		assert.Contains(t, doc, "### Step 1: rss:TriggerNewArticle")
		assert.Contains(t, doc, "### Step 2: openai-gpt-3:CreateCompletion")
		assert.Contains(t, doc, "- Max Errors: 3")
		assert.Contains(t, doc, "- Auto Commit: Enabled")
	})
	t.Run("Should render parameters and mappings as JSON values", func(t *testing.T) {
		doc := MarkdownDocument(sampleSteps(), now)
		assert.Contains(t, doc, "#### Parameters:")
		assert.Contains(t, doc, `- url: "https://example.com/rss"`)
		assert.Contains(t, doc, "#### Mappings:")
		assert.Contains(t, doc, `- prompt → "{{1.title}}"`)
	})
	t.Run("Should omit empty parameter and mapping sections", func(t *testing.T) {
		doc := MarkdownDocument([]Step{{Module: "custom:Module"}}, now)
		assert.NotContains(t, doc, "#### Parameters:")
		assert.NotContains(t, doc, "#### Mappings:")
	})
}
