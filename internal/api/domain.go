package api

import (
	"github.com/redlinehq/redline/internal/comparisons"
	"github.com/redlinehq/redline/internal/documents"
	"github.com/redlinehq/redline/internal/prompts"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Comparisons comparisons.System
	Documents   documents.System
	Prompts     prompts.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	docsSystem := documents.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
	)

	promptsSystem := prompts.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	comparisonsSystem := comparisons.New(
		runtime.Database.Connection(),
		runtime.Agent,
		runtime.Logger,
		runtime.Pagination,
		runtime.Storage,
		docsSystem,
		promptsSystem,
	)

	return &Domain{
		Comparisons: comparisonsSystem,
		Documents:   docsSystem,
		Prompts:     promptsSystem,
	}
}
