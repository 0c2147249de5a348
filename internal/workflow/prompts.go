package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/redlinehq/redline/internal/prompts"
)

// ComposePrompt builds the base prompt for a stage by combining its tunable
// instructions with its immutable output specification. Stage renderers
// append their input sections to this base.
func ComposePrompt(
	ctx context.Context,
	ps prompts.Source,
	stage prompts.Stage,
) (string, error) {
	instructions, err := ps.Instructions(ctx, stage)
	if err != nil {
		return "", fmt.Errorf("load instructions for %s: %w", stage, err)
	}

	spec, err := ps.Spec(ctx, stage)
	if err != nil {
		return "", fmt.Errorf("load spec for %s: %w", stage, err)
	}

	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\n")
	sb.WriteString(spec)

	return sb.String(), nil
}

// section is one titled input block appended to a stage prompt.
type section struct {
	title string
	body  string
}

func appendSections(base string, sections ...section) string {
	var sb strings.Builder
	sb.WriteString(base)
	for _, s := range sections {
		sb.WriteString("\n\n# ")
		sb.WriteString(s.title)
		sb.WriteString(":\n\n")
		sb.WriteString(s.body)
	}
	return sb.String()
}
