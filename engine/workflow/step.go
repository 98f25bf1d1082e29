package workflow

// Complexity classifies how involved a single automation step is.
// Unrecognized values reported by the model are preserved as-is; only
// an absent value falls back to ComplexityMedium.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Designer holds the canvas position of a step in the flow chart and in
// the exported automation-platform schema.
type Designer struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Metadata carries display-oriented step attributes.
type Metadata struct {
	Designer Designer `json:"designer"`
}

// Step is one normalized unit of an automation plan, shaped for both
// display and export. Every field is populated once a step leaves the
// normalization boundary.
type Step struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Tools       []string       `json:"tools"`
	Complexity  Complexity     `json:"complexity"`
	Module      string         `json:"module"`
	Version     int            `json:"version"`
	Parameters  map[string]any `json:"parameters"`
	Mapper      map[string]any `json:"mapper"`
	Metadata    Metadata       `json:"metadata"`
}

// Recommendations aggregates platform suggestions and caveats produced
// alongside the step breakdown.
type Recommendations struct {
	Platforms      []string `json:"platforms"`
	Considerations []string `json:"considerations"`
}

// Analysis is the complete result of one automation analysis. Steps is
// never empty: when the model yields nothing usable a single fallback
// step carrying the original prompt is synthesized in its place.
type Analysis struct {
	Steps           []Step          `json:"steps"`
	Recommendations Recommendations `json:"recommendations"`
}
