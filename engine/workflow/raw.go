package workflow

import "fmt"

// RawStep is the loosely-typed wire shape of a step as emitted by the
// completion provider. Every field is optional and may carry the wrong
// JSON type; nothing downstream touches it except NormalizeStep.
type RawStep struct {
	ID          any `json:"id"`
	Title       any `json:"title"`
	Description any `json:"description"`
	Tools       any `json:"tools"`
	Complexity  any `json:"complexity"`
	Module      any `json:"module"`
	Version     any `json:"version"`
	Parameters  any `json:"parameters"`
	Mapper      any `json:"mapper"`
	Metadata    any `json:"metadata"`
}

const defaultDescription = "No description provided"

// NormalizeStep maps a raw step into a fully populated Step. index is
// the 0-based position of the step in the source array; it drives the
// generated id, title and designer coordinate defaults.
func NormalizeStep(raw RawStep, index int) Step {
	step := Step{
		ID:          stringOr(raw.ID, fmt.Sprintf("step-%d", index+1)),
		Title:       stringOr(raw.Title, fmt.Sprintf("Step %d", index+1)),
		Description: stringOr(raw.Description, defaultDescription),
		Tools:       stringSlice(raw.Tools),
		Complexity:  Complexity(stringOr(raw.Complexity, string(ComplexityMedium))),
		Module:      stringOr(raw.Module, "custom:Module"),
		Version:     intOr(raw.Version, 1),
		Parameters:  mapOr(raw.Parameters),
		Mapper:      mapOr(raw.Mapper),
	}
	step.Metadata.Designer = designerFor(raw.Metadata, index)
	return step
}

// NormalizeSteps maps each raw step through NormalizeStep, preserving
// source order.
func NormalizeSteps(raws []RawStep) []Step {
	steps := make([]Step, len(raws))
	for i, raw := range raws {
		steps[i] = NormalizeStep(raw, i)
	}
	return steps
}

// RawStepsFromValue extracts the raw step list out of a decoded JSON
// value. The second return is false when the value is not an array, in
// which case callers synthesize a fallback step instead.
func RawStepsFromValue(v any) ([]RawStep, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	raws := make([]RawStep, len(items))
	for i, item := range items {
		raws[i] = rawStepFromValue(item)
	}
	return raws, true
}

// rawStepFromValue lifts a decoded JSON element into the raw step
// shape. Non-object elements produce an all-defaults step.
func rawStepFromValue(v any) RawStep {
	m, ok := v.(map[string]any)
	if !ok {
		return RawStep{}
	}
	return RawStep{
		ID:          m["id"],
		Title:       m["title"],
		Description: m["description"],
		Tools:       m["tools"],
		Complexity:  m["complexity"],
		Module:      m["module"],
		Version:     m["version"],
		Parameters:  m["parameters"],
		Mapper:      m["mapper"],
		Metadata:    m["metadata"],
	}
}

// NormalizeRecommendations maps the loosely-typed recommendations
// object into total form. Fields are populated only when present and
// array-shaped; everything else yields empty sequences.
func NormalizeRecommendations(v any) Recommendations {
	rec := Recommendations{Platforms: []string{}, Considerations: []string{}}
	m, ok := v.(map[string]any)
	if !ok {
		return rec
	}
	rec.Platforms = stringSlice(m["platforms"])
	rec.Considerations = stringSlice(m["considerations"])
	return rec
}

// designerFor computes canvas coordinates: x = index*300, y = 0 unless
// the source supplies its own values, which win over the defaults.
func designerFor(metadata any, index int) Designer {
	designer := Designer{X: float64(index) * 300, Y: 0}
	meta, ok := metadata.(map[string]any)
	if !ok {
		return designer
	}
	raw, ok := meta["designer"].(map[string]any)
	if !ok {
		return designer
	}
	if x, ok := floatValue(raw["x"]); ok {
		designer.X = x
	}
	if y, ok := floatValue(raw["y"]); ok {
		designer.Y = y
	}
	return designer
}

func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

func intOr(v any, fallback int) int {
	switch n := v.(type) {
	case float64:
		if n != 0 {
			return int(n)
		}
	case int:
		if n != 0 {
			return n
		}
	}
	return fallback
}

func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// stringSlice keeps only arrays; any other shape collapses to an empty
// slice. Non-string elements inside an array are dropped.
func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		if typed, ok := v.([]string); ok {
			out := make([]string, len(typed))
			copy(out, typed)
			return out
		}
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func mapOr(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}
