package chat

import (
	"fmt"
	"strings"

	"github.com/aicopilotvisual/aicopilot-visual/engine/workflow"
)

// guidanceReply is sent instead of an analysis when the request is too
// short to mean anything.
const guidanceReply = "Please provide more details about what you'd like to automate. " +
	"For example: 'I want to automate my customer onboarding process' or " +
	"'Help me create an automation for processing invoice approvals.'"

// analysisFailedReply is the recoverable notification shown when the
// completion pipeline fails; detail goes to the log, not the user.
const analysisFailedReply = "I apologize, but I encountered an error while analyzing your request. " +
	"Please try again with more details about what you'd like to automate."

// formatAnalysisReply renders the assistant summary of an analysis:
// numbered steps with complexity and tools, then the recommended
// platforms and key considerations.
func formatAnalysisReply(result *workflow.Analysis) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"I've analyzed your automation request and broken it down into %d steps. Here are my recommendations:\n",
		len(result.Steps),
	)
	for i, step := range result.Steps {
		fmt.Fprintf(&b, "\n%d. %s\n   %s\n   Complexity: %s\n", i+1, step.Title, step.Description, step.Complexity)
		if len(step.Tools) > 0 {
			fmt.Fprintf(&b, "   Tools: %s\n", strings.Join(step.Tools, ", "))
		}
	}
	b.WriteString("\nRecommended Platforms:\n")
	if len(result.Recommendations.Platforms) > 0 {
		b.WriteString(strings.Join(result.Recommendations.Platforms, ", "))
	} else {
		b.WriteString("No specific platforms recommended")
	}
	b.WriteString("\n\nKey Considerations:\n")
	if len(result.Recommendations.Considerations) > 0 {
		b.WriteString(strings.Join(result.Recommendations.Considerations, "\n"))
	} else {
		b.WriteString("No specific considerations provided")
	}
	return b.String()
}
