package workflow

import (
	"context"
	"strings"

	"github.com/redlinehq/redline/internal/prompts"
)

// Stage binds one pipeline step: the state fields it reads through its
// renderer, and the single state field its installer writes. Every stage
// makes exactly one text-generation call per application.
type Stage struct {
	Name prompts.Stage

	// Render produces the full prompt for this stage from prior state.
	// It must be deterministic: the same state yields an identical prompt.
	Render func(ctx context.Context, rt *Runtime, s *ComparisonState) (string, error)

	// Install writes the stage's response into its declared output field.
	// No other field may be touched.
	Install func(s *ComparisonState, response string)
}

// Stages returns the five pipeline stages in required execution order:
// structural → semantic → final → risk → summary. Each stage's input is
// entirely the accumulated output of its predecessors.
func Stages() []Stage {
	return []Stage{
		{
			Name:   prompts.StageStructural,
			Render: renderStructural,
			Install: func(s *ComparisonState, response string) {
				s.StructuralComparison = Extract(prompts.StageStructural, response)
			},
		},
		{
			Name:   prompts.StageSemantic,
			Render: renderSemantic,
			Install: func(s *ComparisonState, response string) {
				s.SemanticComparison = Extract(prompts.StageSemantic, response)
			},
		},
		{
			Name:   prompts.StageFinal,
			Render: renderFinal,
			Install: func(s *ComparisonState, response string) {
				s.FinalComparison = Extract(prompts.StageFinal, response)
			},
		},
		{
			Name:   prompts.StageRisk,
			Render: renderRisk,
			Install: func(s *ComparisonState, response string) {
				s.RiskAnalysis = Extract(prompts.StageRisk, response)
			},
		},
		{
			Name:   prompts.StageSummary,
			Render: renderSummary,
			Install: func(s *ComparisonState, response string) {
				// The summary is the report itself, not structured data.
				s.Summary = strings.TrimSpace(response)
			},
		},
	}
}

func renderStructural(ctx context.Context, rt *Runtime, s *ComparisonState) (string, error) {
	base, err := ComposePrompt(ctx, rt.Prompts, prompts.StageStructural)
	if err != nil {
		return "", err
	}

	return appendSections(base,
		section{"Document 1", s.Doc1Content},
		section{"Document 2", s.Doc2Content},
	), nil
}

func renderSemantic(ctx context.Context, rt *Runtime, s *ComparisonState) (string, error) {
	base, err := ComposePrompt(ctx, rt.Prompts, prompts.StageSemantic)
	if err != nil {
		return "", err
	}

	return appendSections(base,
		section{"Document 1", s.Doc1Content},
		section{"Document 2", s.Doc2Content},
	), nil
}

func renderFinal(ctx context.Context, rt *Runtime, s *ComparisonState) (string, error) {
	base, err := ComposePrompt(ctx, rt.Prompts, prompts.StageFinal)
	if err != nil {
		return "", err
	}

	return appendSections(base,
		section{"Structural Analysis", s.StructuralComparison.Display()},
		section{"Semantic Analysis", s.SemanticComparison.Display()},
	), nil
}

func renderRisk(ctx context.Context, rt *Runtime, s *ComparisonState) (string, error) {
	base, err := ComposePrompt(ctx, rt.Prompts, prompts.StageRisk)
	if err != nil {
		return "", err
	}

	return appendSections(base,
		section{"Document 1", s.Doc1Content},
		section{"Document 2", s.Doc2Content},
		section{"Structural Comparison", s.StructuralComparison.Display()},
		section{"Semantic Comparison", s.SemanticComparison.Display()},
		section{"Final Comparison", s.FinalComparison.Display()},
	), nil
}

func renderSummary(ctx context.Context, rt *Runtime, s *ComparisonState) (string, error) {
	base, err := ComposePrompt(ctx, rt.Prompts, prompts.StageSummary)
	if err != nil {
		return "", err
	}

	return appendSections(base,
		section{"Final Comparison", s.FinalComparison.Display()},
		section{"Risk Analysis", s.RiskAnalysis.Display()},
	), nil
}
