package prompts

import (
	"net/url"

	"github.com/redlinehq/redline/pkg/query"
	"github.com/redlinehq/redline/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "prompts", "p").
	Project("id", "ID").
	Project("name", "Name").
	Project("stage", "Stage").
	Project("instructions", "Instructions").
	Project("description", "Description").
	Project("active", "Active")

var defaultSort = query.SortField{
	Field: "Name",
}

// Filters contains optional filtering criteria for prompt queries.
// Nil fields are ignored.
type Filters struct {
	Stage  *Stage `json:"stage,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Stage", f.Stage).
		WhereEquals("Active", f.Active)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("stage"); s != "" {
		if stage, err := ParseStage(s); err == nil {
			f.Stage = &stage
		}
	}

	if a := values.Get("active"); a != "" {
		active := a == "true"
		f.Active = &active
	}

	return f
}

func scanPrompt(s repository.Scanner) (Prompt, error) {
	var p Prompt
	err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Stage,
		&p.Instructions,
		&p.Description,
		&p.Active,
	)
	return p, err
}
