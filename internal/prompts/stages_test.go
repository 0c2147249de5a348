package prompts_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/redlinehq/redline/internal/prompts"
)

func TestStages(t *testing.T) {
	want := []prompts.Stage{
		prompts.StageStructural,
		prompts.StageSemantic,
		prompts.StageFinal,
		prompts.StageRisk,
		prompts.StageSummary,
	}

	got := prompts.Stages()
	if len(got) != len(want) {
		t.Fatalf("len(Stages) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Stages[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestParseStage(t *testing.T) {
	t.Run("valid stage", func(t *testing.T) {
		got, err := prompts.ParseStage("risk_analysis")
		if err != nil {
			t.Fatalf("ParseStage error: %v", err)
		}
		if got != prompts.StageRisk {
			t.Errorf("ParseStage = %s, want %s", got, prompts.StageRisk)
		}
	})

	t.Run("unknown stage", func(t *testing.T) {
		_, err := prompts.ParseStage("sentiment_analysis")
		if !errors.Is(err, prompts.ErrInvalidStage) {
			t.Errorf("error = %v, want ErrInvalidStage", err)
		}
	})

	t.Run("empty string", func(t *testing.T) {
		if _, err := prompts.ParseStage(""); !errors.Is(err, prompts.ErrInvalidStage) {
			t.Errorf("error = %v, want ErrInvalidStage", err)
		}
	})
}

func TestStageUnmarshalJSON(t *testing.T) {
	t.Run("valid value", func(t *testing.T) {
		var s prompts.Stage
		if err := json.Unmarshal([]byte(`"summary_generation"`), &s); err != nil {
			t.Fatalf("Unmarshal error: %v", err)
		}
		if s != prompts.StageSummary {
			t.Errorf("stage = %s, want %s", s, prompts.StageSummary)
		}
	})

	t.Run("unknown value", func(t *testing.T) {
		var s prompts.Stage
		err := json.Unmarshal([]byte(`"translation"`), &s)
		if !errors.Is(err, prompts.ErrInvalidStage) {
			t.Errorf("error = %v, want ErrInvalidStage", err)
		}
	})

	t.Run("rejected inside command decode", func(t *testing.T) {
		var cmd prompts.CreateCommand
		err := json.Unmarshal([]byte(`{"name":"x","stage":"bogus","instructions":"y"}`), &cmd)
		if !errors.Is(err, prompts.ErrInvalidStage) {
			t.Errorf("error = %v, want ErrInvalidStage", err)
		}
	})
}

func TestDefaults(t *testing.T) {
	source := prompts.Defaults()
	ctx := context.Background()

	for _, stage := range prompts.Stages() {
		instructions, err := source.Instructions(ctx, stage)
		if err != nil {
			t.Fatalf("Instructions(%s) error: %v", stage, err)
		}
		if strings.TrimSpace(instructions) == "" {
			t.Errorf("Instructions(%s) is empty", stage)
		}

		spec, err := source.Spec(ctx, stage)
		if err != nil {
			t.Fatalf("Spec(%s) error: %v", stage, err)
		}
		if strings.TrimSpace(spec) == "" {
			t.Errorf("Spec(%s) is empty", stage)
		}
	}
}

func TestAnalysisSpecsDemandJSON(t *testing.T) {
	// Every analysis stage must instruct the model to emit the JSON shape the
	// extractor expects. The summary stage is free text and is excluded.
	analysis := []prompts.Stage{
		prompts.StageStructural,
		prompts.StageSemantic,
		prompts.StageFinal,
		prompts.StageRisk,
	}

	for _, stage := range analysis {
		spec, err := prompts.Spec(stage)
		if err != nil {
			t.Fatalf("Spec(%s) error: %v", stage, err)
		}
		if !strings.Contains(spec, "JSON") {
			t.Errorf("Spec(%s) never mentions JSON", stage)
		}
	}
}
