// Package workflow implements the contract comparison pipeline for Redline.
// It threads a single ComparisonState through five sequential stages, each of
// which renders a prompt from prior state, calls the text-generation client,
// and installs the extracted result before the next stage runs. Unparseable
// responses degrade in place; failed generation calls abort the run.
package workflow

import "errors"

// Sentinel errors for pipeline execution. ErrGenerateFailed and ErrCancelled
// are fatal: no stage after the failing one executes. A response that merely
// fails to parse is never an error; it produces a degraded StageResult.
var (
	ErrGenerateFailed = errors.New("text generation failed")
	ErrCancelled      = errors.New("comparison cancelled")
	ErrRenderFailed   = errors.New("prompt rendering failed")
)
