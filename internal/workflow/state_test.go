package workflow_test

import (
	"strings"
	"testing"

	"github.com/redlinehq/redline/internal/prompts"
	"github.com/redlinehq/redline/internal/workflow"
)

func TestExtract(t *testing.T) {
	t.Run("bare JSON", func(t *testing.T) {
		result := workflow.Extract(prompts.StageStructural, `{"added_sections":[]}`)
		if result.Degraded() {
			t.Fatalf("degraded: %s", result.Error)
		}
		payload, ok := result.Payload.(map[string]any)
		if !ok {
			t.Fatalf("payload type = %T", result.Payload)
		}
		if _, ok := payload["added_sections"]; !ok {
			t.Error("payload missing added_sections")
		}
	})

	t.Run("fenced JSON", func(t *testing.T) {
		content := "Analysis follows.\n```json\n{\"term_changes\":[]}\n```"
		result := workflow.Extract(prompts.StageSemantic, content)
		if result.Degraded() {
			t.Fatalf("degraded: %s", result.Error)
		}
	})

	t.Run("unparseable content degrades", func(t *testing.T) {
		content := "The documents appear broadly similar."
		result := workflow.Extract(prompts.StageRisk, content)
		if !result.Degraded() {
			t.Fatal("expected degraded result")
		}
		if result.Error != "failed to parse risk_analysis result" {
			t.Errorf("Error = %q", result.Error)
		}
		if result.Raw != content {
			t.Errorf("Raw = %q, want original content", result.Raw)
		}
		if result.Payload != nil {
			t.Errorf("Payload = %v, want nil", result.Payload)
		}
	})
}

func TestStageResultDisplay(t *testing.T) {
	t.Run("payload re-encodes as JSON", func(t *testing.T) {
		result := workflow.StageResult{Payload: map[string]any{"overall_assessment": "minor"}}
		if got := result.Display(); got != `{"overall_assessment":"minor"}` {
			t.Errorf("Display = %q", got)
		}
	})

	t.Run("degraded result carries error and raw text", func(t *testing.T) {
		result := workflow.StageResult{
			Error: "failed to parse final_analysis result",
			Raw:   "not json",
		}
		got := result.Display()
		if !strings.Contains(got, `"error":"failed to parse final_analysis result"`) {
			t.Errorf("Display missing error: %q", got)
		}
		if !strings.Contains(got, `"raw_result":"not json"`) {
			t.Errorf("Display missing raw text: %q", got)
		}
	})

	t.Run("zero value", func(t *testing.T) {
		var result workflow.StageResult
		if got := result.Display(); got != "null" {
			t.Errorf("Display = %q, want null", got)
		}
	})
}

func TestDegradedFields(t *testing.T) {
	t.Run("none degraded", func(t *testing.T) {
		state := &workflow.ComparisonState{
			StructuralComparison: workflow.StageResult{Payload: map[string]any{}},
		}
		got := state.DegradedFields()
		if got == nil {
			t.Fatal("DegradedFields returned nil, want empty slice")
		}
		if len(got) != 0 {
			t.Errorf("DegradedFields = %v, want none", got)
		}
	})

	t.Run("listed in pipeline order", func(t *testing.T) {
		state := &workflow.ComparisonState{
			SemanticComparison: workflow.StageResult{Error: "failed to parse semantic_analysis result"},
			RiskAnalysis:       workflow.StageResult{Error: "failed to parse risk_analysis result"},
		}
		got := state.DegradedFields()
		want := []string{"semantic_comparison", "risk_analysis"}
		if len(got) != len(want) {
			t.Fatalf("DegradedFields = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("DegradedFields[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})
}
