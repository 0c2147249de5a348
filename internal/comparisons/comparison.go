// Package comparisons implements the contract comparison domain for Redline.
// It runs the comparison pipeline over a pair of uploaded documents and
// stores, queries, and serves the resulting analyses and summary report.
package comparisons

import (
	"time"

	"github.com/google/uuid"

	"github.com/redlinehq/redline/internal/workflow"
)

// Comparison represents a stored comparison result for a document pair.
// The four analysis fields carry the pipeline's stage results, degraded or
// structured, exactly as produced; DegradedFields names the analyses that
// failed to parse and require manual review.
type Comparison struct {
	ID     uuid.UUID `json:"id"`
	Doc1ID uuid.UUID `json:"doc1_id"`
	Doc2ID uuid.UUID `json:"doc2_id"`

	StructuralComparison workflow.StageResult `json:"structural_comparison"`
	SemanticComparison   workflow.StageResult `json:"semantic_comparison"`
	FinalComparison      workflow.StageResult `json:"final_comparison"`
	RiskAnalysis         workflow.StageResult `json:"risk_analysis"`

	// Summary is the markdown report produced by the final pipeline stage.
	Summary string `json:"summary"`

	DegradedFields []string  `json:"degraded_fields"`
	ModelName      string    `json:"model_name"`
	ProviderName   string    `json:"provider_name"`
	ComparedAt     time.Time `json:"compared_at"`
}
