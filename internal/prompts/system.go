package prompts

import (
	"context"

	"github.com/google/uuid"

	"github.com/redlinehq/redline/pkg/pagination"
)

// Source supplies the effective instructions and output specification for a
// pipeline stage. The workflow engine depends only on this narrow contract.
type Source interface {
	// Instructions returns the active override for the stage, or the
	// hardcoded default when no override is active.
	Instructions(ctx context.Context, stage Stage) (string, error)
	// Spec returns the immutable output specification for the stage.
	Spec(ctx context.Context, stage Stage) (string, error)
}

// System defines the public contract for prompt domain operations.
type System interface {
	Source

	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Prompt], error)

	Find(ctx context.Context, id uuid.UUID) (*Prompt, error)
	Create(ctx context.Context, cmd CreateCommand) (*Prompt, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Prompt, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) (*Prompt, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*Prompt, error)
}

type static struct{}

// Defaults returns a Source that always serves the hardcoded stage
// instructions and specifications, with no override storage behind it.
// Used by the CLI, which runs without a database.
func Defaults() Source {
	return static{}
}

func (static) Instructions(_ context.Context, stage Stage) (string, error) {
	return Instructions(stage)
}

func (static) Spec(_ context.Context, stage Stage) (string, error) {
	return Spec(stage)
}
