package comparisons

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/redlinehq/redline/internal/workflow"
	"github.com/redlinehq/redline/pkg/query"
	"github.com/redlinehq/redline/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "comparisons", "c").
	Project("id", "ID").
	Project("doc1_id", "Doc1ID").
	Project("doc2_id", "Doc2ID").
	Project("structural_comparison", "StructuralComparison").
	Project("semantic_comparison", "SemanticComparison").
	Project("final_comparison", "FinalComparison").
	Project("risk_analysis", "RiskAnalysis").
	Project("summary", "Summary").
	Project("degraded_fields", "DegradedFields").
	Project("model_name", "ModelName").
	Project("provider_name", "ProviderName").
	Project("compared_at", "ComparedAt")

var defaultSort = query.SortField{
	Field:      "ComparedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for comparison queries.
// Nil fields are ignored. All fields use exact matching.
type Filters struct {
	Doc1ID       *uuid.UUID `json:"doc1_id,omitempty"`
	Doc2ID       *uuid.UUID `json:"doc2_id,omitempty"`
	ModelName    *string    `json:"model_name,omitempty"`
	ProviderName *string    `json:"provider_name,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Doc1ID", f.Doc1ID).
		WhereEquals("Doc2ID", f.Doc2ID).
		WhereEquals("ModelName", f.ModelName).
		WhereEquals("ProviderName", f.ProviderName)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if d := values.Get("doc1_id"); d != "" {
		if id, err := uuid.Parse(d); err == nil {
			f.Doc1ID = &id
		}
	}

	if d := values.Get("doc2_id"); d != "" {
		if id, err := uuid.Parse(d); err == nil {
			f.Doc2ID = &id
		}
	}

	if m := values.Get("model_name"); m != "" {
		f.ModelName = &m
	}

	if p := values.Get("provider_name"); p != "" {
		f.ProviderName = &p
	}

	return f
}

func scanComparison(s repository.Scanner) (Comparison, error) {
	var c Comparison
	var structuralRaw, semanticRaw, finalRaw, riskRaw, degradedRaw []byte

	err := s.Scan(
		&c.ID,
		&c.Doc1ID,
		&c.Doc2ID,
		&structuralRaw,
		&semanticRaw,
		&finalRaw,
		&riskRaw,
		&c.Summary,
		&degradedRaw,
		&c.ModelName,
		&c.ProviderName,
		&c.ComparedAt,
	)
	if err != nil {
		return c, err
	}

	for _, field := range []struct {
		name string
		raw  []byte
		dest *workflow.StageResult
	}{
		{"structural_comparison", structuralRaw, &c.StructuralComparison},
		{"semantic_comparison", semanticRaw, &c.SemanticComparison},
		{"final_comparison", finalRaw, &c.FinalComparison},
		{"risk_analysis", riskRaw, &c.RiskAnalysis},
	} {
		if len(field.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(field.raw, field.dest); err != nil {
			return c, fmt.Errorf("unmarshal %s: %w", field.name, err)
		}
	}

	if len(degradedRaw) > 0 {
		if err := json.Unmarshal(degradedRaw, &c.DegradedFields); err != nil {
			return c, fmt.Errorf("unmarshal degraded_fields: %w", err)
		}
	}

	if c.DegradedFields == nil {
		c.DegradedFields = []string{}
	}

	return c, nil
}
