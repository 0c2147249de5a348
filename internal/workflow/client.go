package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents/pkg/agent"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// TextGenerator is the single point of contact with the external
// text-generation service. One call is one attempt: no retries, no caching,
// no streaming. Implementations must honor context cancellation.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type agentGenerator struct {
	cfg gaconfig.AgentConfig
}

// NewAgentGenerator returns a TextGenerator backed by a go-agents chat agent
// built from the given configuration.
func NewAgentGenerator(cfg gaconfig.AgentConfig) TextGenerator {
	return &agentGenerator{cfg: cfg}
}

func (g *agentGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	a, err := agent.New(&g.cfg)
	if err != nil {
		return "", fmt.Errorf("create agent: %w", err)
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("chat call: %w", err)
	}

	return resp.Text(), nil
}
