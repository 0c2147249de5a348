package workflow

import (
	"log/slog"

	"github.com/redlinehq/redline/internal/prompts"
)

// Runtime bundles the dependencies that comparison stages require.
// It is constructed by higher-level composition code: the comparisons domain
// for the service, or main directly for the CLI.
type Runtime struct {
	Generator TextGenerator
	Prompts   prompts.Source
	Logger    *slog.Logger
}
