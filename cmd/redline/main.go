// Command redline runs the contract comparison pipeline from the command
// line, without the service or its database. Documents are read from local
// files, prompts come from the hardcoded defaults, and the agent is
// configured entirely through REDLINE_AGENT_* environment variables.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/redlinehq/redline/internal/config"
	"github.com/redlinehq/redline/internal/prompts"
	"github.com/redlinehq/redline/internal/workflow"
	"github.com/redlinehq/redline/pkg/loader"
)

func main() {
	var (
		output    = flag.String("o", "", "Write the summary report to this file (default stdout)")
		stateFile = flag.String("state", "", "Write the full comparison state as JSON to this file")
	)
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: redline [-o report.md] [-state state.json] <document1> <document2>")
		os.Exit(2)
	}

	agent := gaconfig.AgentConfig{Name: "redline"}
	if err := config.FinalizeAgent(&agent); err != nil {
		log.Fatal("agent config failed:", err)
	}

	doc1, err := loader.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("load %s: %v", flag.Arg(0), err)
	}

	doc2, err := loader.Load(flag.Arg(1))
	if err != nil {
		log.Fatalf("load %s: %v", flag.Arg(1), err)
	}

	rt := &workflow.Runtime{
		Generator: workflow.NewAgentGenerator(agent),
		Prompts:   prompts.Defaults(),
		Logger:    slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}

	ctx := signalContext()
	state, err := workflow.Run(ctx, rt, doc1, doc2)
	if err != nil {
		log.Fatal("comparison failed:", err)
	}

	if *stateFile != "" {
		encoded, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			log.Fatal("encode state:", err)
		}
		if err := os.WriteFile(*stateFile, encoded, 0o644); err != nil {
			log.Fatal("write state:", err)
		}
	}

	if *output == "" {
		fmt.Println(state.Summary)
		return
	}

	if err := os.WriteFile(*output, []byte(state.Summary), 0o644); err != nil {
		log.Fatal("write report:", err)
	}
}
