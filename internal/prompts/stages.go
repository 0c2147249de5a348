package prompts

import (
	"encoding/json"
	"slices"
)

// Stage represents a comparison pipeline stage that a prompt override targets.
type Stage string

// Pipeline stages in execution order.
const (
	StageStructural Stage = "structural_analysis"
	StageSemantic   Stage = "semantic_analysis"
	StageFinal      Stage = "final_analysis"
	StageRisk       Stage = "risk_analysis"
	StageSummary    Stage = "summary_generation"
)

var stages = []Stage{
	StageStructural,
	StageSemantic,
	StageFinal,
	StageRisk,
	StageSummary,
}

// Stages returns the list of valid pipeline stages in execution order.
func Stages() []Stage {
	return slices.Clone(stages)
}

// UnmarshalJSON validates that the decoded string is a known stage value.
func (s *Stage) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Stage(raw)
	if !slices.Contains(stages, v) {
		return ErrInvalidStage
	}
	*s = v
	return nil
}

// ParseStage validates a string as a known pipeline stage.
// Returns ErrInvalidStage if the value is not recognized.
func ParseStage(s string) (Stage, error) {
	v := Stage(s)
	if !slices.Contains(stages, v) {
		return "", ErrInvalidStage
	}
	return v, nil
}
