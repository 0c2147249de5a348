package workflow

import (
	"encoding/json"
	"fmt"

	"github.com/redlinehq/redline/internal/prompts"
	"github.com/redlinehq/redline/pkg/formatting"
)

// StageResult is the tagged outcome of one analysis stage: either a decoded
// payload or a degraded placeholder preserving the unparseable response.
// The zero value represents a field its owning stage has not written yet.
type StageResult struct {
	// Payload holds the decoded structured value exactly as extracted.
	// Any well-formed JSON value is accepted; no shape is enforced.
	Payload any `json:"payload,omitempty"`
	// Error names the stage whose response could not be parsed.
	Error string `json:"error,omitempty"`
	// Raw carries the full original response text when parsing failed,
	// so the evidence survives for downstream stages and human review.
	Raw string `json:"raw_result,omitempty"`
}

// Degraded reports whether this result is a parse-failure placeholder.
func (r StageResult) Degraded() bool {
	return r.Error != ""
}

// Display returns the canonical text form used when embedding this result in
// a later stage's prompt. Structured payloads re-encode as JSON; degraded
// results serialize their error and raw text so the unparsed evidence is
// passed along rather than silently dropped.
func (r StageResult) Display() string {
	if r.Degraded() {
		encoded, err := json.Marshal(map[string]string{
			"error":      r.Error,
			"raw_result": r.Raw,
		})
		if err != nil {
			return fmt.Sprintf("error: %s\nraw result: %s", r.Error, r.Raw)
		}
		return string(encoded)
	}

	encoded, err := json.Marshal(r.Payload)
	if err != nil {
		return fmt.Sprintf("%v", r.Payload)
	}
	return string(encoded)
}

// Extract decodes the structured payload embedded in a stage response,
// accepting either bare JSON or the first json-fenced block. Parse failures
// degrade rather than fail: the result names the producing stage and carries
// the full original text.
func Extract(stage prompts.Stage, content string) StageResult {
	payload, err := formatting.Parse[any](content)
	if err != nil {
		return StageResult{
			Error: fmt.Sprintf("failed to parse %s result", stage),
			Raw:   content,
		}
	}
	return StageResult{Payload: payload}
}

// ComparisonState is the single record threaded through the pipeline.
// The document contents are set once at initialization and never mutated;
// each remaining field is written exactly once, by exactly one stage, in
// pipeline order.
type ComparisonState struct {
	Doc1Content string `json:"doc1_content"`
	Doc2Content string `json:"doc2_content"`

	StructuralComparison StageResult `json:"structural_comparison"`
	SemanticComparison   StageResult `json:"semantic_comparison"`
	FinalComparison      StageResult `json:"final_comparison"`
	RiskAnalysis         StageResult `json:"risk_analysis"`

	// Summary is the human-readable report produced by the final stage.
	// It is free text, never parsed as structured data.
	Summary string `json:"summary"`
}

// DegradedFields lists the state fields holding degraded results, in
// pipeline order. Callers persisting or presenting a completed state use
// this to mark which analyses require manual review.
func (s *ComparisonState) DegradedFields() []string {
	fields := []string{}
	for _, f := range []struct {
		name   string
		result StageResult
	}{
		{"structural_comparison", s.StructuralComparison},
		{"semantic_comparison", s.SemanticComparison},
		{"final_comparison", s.FinalComparison},
		{"risk_analysis", s.RiskAnalysis},
	} {
		if f.result.Degraded() {
			fields = append(fields, f.name)
		}
	}
	return fields
}
