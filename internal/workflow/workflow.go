package workflow

import (
	"context"
	"fmt"
	"strings"
)

// Run executes the full comparison pipeline over the two document texts and
// returns the completed state. Stages execute strictly in order, each one
// issuing exactly one generation call. A failed generation call aborts the
// run: the error wraps ErrCancelled when the context was cancelled and
// ErrGenerateFailed otherwise, and no later stage is rendered or called.
func Run(
	ctx context.Context,
	rt *Runtime,
	doc1 string,
	doc2 string,
) (*ComparisonState, error) {
	state := &ComparisonState{
		Doc1Content: doc1,
		Doc2Content: doc2,
	}

	for _, stage := range Stages() {
		if err := apply(ctx, rt, stage, state); err != nil {
			return nil, err
		}
	}

	if degraded := state.DegradedFields(); len(degraded) > 0 {
		rt.Logger.Warn(
			"comparison completed with degraded stages",
			"fields", strings.Join(degraded, ","),
		)
	}

	return state, nil
}

func apply(
	ctx context.Context,
	rt *Runtime,
	stage Stage,
	state *ComparisonState,
) error {
	logger := rt.Logger.With("stage", string(stage.Name))
	logger.Info("executing stage")

	prompt, err := stage.Render(ctx, rt, state)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRenderFailed, stage.Name, err)
	}

	response, err := rt.Generator.Generate(ctx, prompt)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %s: %v", ErrCancelled, stage.Name, err)
		}
		return fmt.Errorf("%w: %s: %v", ErrGenerateFailed, stage.Name, err)
	}

	stage.Install(state, response)
	logger.Info("stage complete")

	return nil
}
