package workflow

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Blueprint is the Make-compatible import envelope built from a step
// list. Each step becomes a numbered flow module with positional
// metadata.
type Blueprint struct {
	Name     string            `json:"name"`
	Flow     []BlueprintModule `json:"flow"`
	Metadata BlueprintMetadata `json:"metadata"`
}

// BlueprintModule is a single flow node in the Make import schema.
type BlueprintModule struct {
	ID         int            `json:"id"`
	Module     string         `json:"module"`
	Version    int            `json:"version"`
	Parameters map[string]any `json:"parameters"`
	Mapper     map[string]any `json:"mapper"`
	Metadata   Metadata       `json:"metadata"`
}

// ScenarioSettings mirrors Make's scenario execution flags.
type ScenarioSettings struct {
	Roundtrips            int  `json:"roundtrips"`
	MaxErrors             int  `json:"maxErrors"`
	AutoCommit            bool `json:"autoCommit"`
	AutoCommitTriggerLast bool `json:"autoCommitTriggerLast"`
	Sequential            bool `json:"sequential"`
	Confidential          bool `json:"confidential"`
	Dataloss              bool `json:"dataloss"`
	DLQ                   bool `json:"dlq"`
	FreshVariables        bool `json:"freshVariables"`
}

// BlueprintDesigner carries scenario-level designer state.
type BlueprintDesigner struct {
	Orphans []any `json:"orphans"`
}

// BlueprintMetadata is the scenario metadata block of the export.
type BlueprintMetadata struct {
	Instant  bool              `json:"instant"`
	Version  int               `json:"version"`
	Scenario ScenarioSettings  `json:"scenario"`
	Designer BlueprintDesigner `json:"designer"`
	Zone     string            `json:"zone"`
	Notes    []string          `json:"notes"`
}

const (
	blueprintName = "AI Copilot Workflow"
	blueprintZone = "eu2.make.com"
)

// MakeBlueprint builds the Make import envelope for the given steps.
// Steps are expected to be normalized already; zero-valued module and
// version fields still fall back so hand-crafted lists export cleanly.
func MakeBlueprint(steps []Step) Blueprint {
	flow := make([]BlueprintModule, len(steps))
	for i, step := range steps {
		module := step.Module
		if module == "" {
			module = "custom:Module"
		}
		version := step.Version
		if version <= 0 {
			version = 1
		}
		parameters := step.Parameters
		if parameters == nil {
			parameters = map[string]any{}
		}
		mapper := step.Mapper
		if mapper == nil {
			mapper = map[string]any{}
		}
		flow[i] = BlueprintModule{
			ID:         i + 1,
			Module:     module,
			Version:    version,
			Parameters: parameters,
			Mapper:     mapper,
			Metadata:   step.Metadata,
		}
	}
	return Blueprint{
		Name: blueprintName,
		Flow: flow,
		Metadata: BlueprintMetadata{
			Instant: false,
			Version: 1,
			Scenario: ScenarioSettings{
				Roundtrips:            1,
				MaxErrors:             3,
				AutoCommit:            true,
				AutoCommitTriggerLast: true,
			},
			Designer: BlueprintDesigner{Orphans: []any{}},
			Zone:     blueprintZone,
			Notes:    []string{fmt.Sprintf("AI Copilot generated workflow with %d steps", len(steps))},
		},
	}
}

// MarkdownDocument renders the steps as a human-readable workflow
// document: overview, per-step details with parameters and mappings,
// and execution notes.
func MarkdownDocument(steps []Step, now time.Time) string {
	var b strings.Builder
	b.WriteString("# AI Copilot Workflow Documentation\n\n")
	fmt.Fprintf(&b, "Generated on: %s\n\n", now.Format("1/2/2006, 3:04:05 PM"))
	b.WriteString("## Workflow Overview\n\n")
	fmt.Fprintf(&b, "This workflow contains %d automation steps.\n\n", len(steps))
	b.WriteString("## Step Details\n\n")
	for i, step := range steps {
		module := step.Module
		if module == "" {
			module = "Custom Module"
		}
		fmt.Fprintf(&b, "### Step %d: %s\n\n", i+1, module)
		version := step.Version
		if version <= 0 {
			version = 1
		}
		fmt.Fprintf(&b, "- **Version:** %d\n", version)
		description := step.Description
		if description == "" {
			description = defaultDescription
		}
		fmt.Fprintf(&b, "- **Description:** %s\n\n", description)
		writeMappingSection(&b, "Parameters", step.Parameters, "%s: %s")
		writeMappingSection(&b, "Mappings", step.Mapper, "%s → %s")
		b.WriteString("---\n\n")
	}
	b.WriteString("## Execution Notes\n\n")
	b.WriteString("- Max Errors: 3\n")
	b.WriteString("- Auto Commit: Enabled\n")
	b.WriteString("- Sequential Execution: Disabled\n")
	return b.String()
}

func writeMappingSection(b *strings.Builder, title string, values map[string]any, format string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, "#### %s:\n\n", title)
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(b, "- "+format+"\n", key, jsonValue(values[key]))
	}
	b.WriteString("\n")
}
