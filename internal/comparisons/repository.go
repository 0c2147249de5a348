package comparisons

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/redlinehq/redline/internal/documents"
	"github.com/redlinehq/redline/internal/prompts"
	"github.com/redlinehq/redline/internal/workflow"
	"github.com/redlinehq/redline/pkg/loader"
	"github.com/redlinehq/redline/pkg/pagination"
	"github.com/redlinehq/redline/pkg/query"
	"github.com/redlinehq/redline/pkg/repository"
	"github.com/redlinehq/redline/pkg/storage"
)

type repo struct {
	db         *sql.DB
	rt         *workflow.Runtime
	agent      gaconfig.AgentConfig
	storage    storage.System
	docs       documents.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a comparison repository implementing the System interface.
// It internally constructs the pipeline runtime from the provided
// dependencies.
func New(
	db *sql.DB,
	agent gaconfig.AgentConfig,
	logger *slog.Logger,
	pagination pagination.Config,
	store storage.System,
	docs documents.System,
	ps prompts.Source,
) System {
	rt := &workflow.Runtime{
		Generator: workflow.NewAgentGenerator(agent),
		Prompts:   ps,
		Logger:    logger.With("workflow", "compare"),
	}
	return &repo{
		db:         db,
		rt:         rt,
		agent:      agent,
		storage:    store,
		docs:       docs,
		logger:     logger.With("system", "comparisons"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Comparison], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Summary", "ModelName")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count comparisons: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanComparison)
	if err != nil {
		return nil, fmt.Errorf("query comparisons: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Comparison, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanComparison)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) FindByDocuments(ctx context.Context, doc1ID, doc2ID uuid.UUID) (*Comparison, error) {
	q, args := query.
		NewBuilder(projection).
		WhereEquals("Doc1ID", doc1ID).
		WhereEquals("Doc2ID", doc2ID).
		BuildSingleOrNull()

	c, err := repository.QueryOne(ctx, r.db, q, args, scanComparison)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

// Compare loads both documents' text, runs the full comparison pipeline,
// and upserts the result for the document pair. Re-comparing a pair
// overwrites the previous result.
func (r *repo) Compare(ctx context.Context, doc1ID, doc2ID uuid.UUID) (*Comparison, error) {
	if doc1ID == doc2ID {
		return nil, ErrSameDocument
	}

	doc1Text, err := r.loadDocumentText(ctx, doc1ID)
	if err != nil {
		return nil, err
	}

	doc2Text, err := r.loadDocumentText(ctx, doc2ID)
	if err != nil {
		return nil, err
	}

	state, err := workflow.Run(ctx, r.rt, doc1Text, doc2Text)
	if err != nil {
		return nil, fmt.Errorf("compare documents %s and %s: %w", doc1ID, doc2ID, err)
	}

	upsertArgs, err := buildUpsertArgs(doc1ID, doc2ID, state, r.agent)
	if err != nil {
		return nil, err
	}

	upsertQ := `
		INSERT INTO comparisons(
			doc1_id, doc2_id, structural_comparison, semantic_comparison,
			final_comparison, risk_analysis, summary, degraded_fields,
			model_name, provider_name
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (doc1_id, doc2_id) DO UPDATE SET
			structural_comparison = EXCLUDED.structural_comparison,
			semantic_comparison = EXCLUDED.semantic_comparison,
			final_comparison = EXCLUDED.final_comparison,
			risk_analysis = EXCLUDED.risk_analysis,
			summary = EXCLUDED.summary,
			degraded_fields = EXCLUDED.degraded_fields,
			model_name = EXCLUDED.model_name,
			provider_name = EXCLUDED.provider_name,
			compared_at = NOW()
		RETURNING id, doc1_id, doc2_id, structural_comparison,
				  semantic_comparison, final_comparison, risk_analysis,
				  summary, degraded_fields, model_name, provider_name,
				  compared_at`

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Comparison, error) {
		return repository.QueryOne(ctx, tx, upsertQ, upsertArgs, scanComparison)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("documents compared",
		"id", c.ID,
		"doc1_id", doc1ID,
		"doc2_id", doc2ID,
		"degraded_fields", len(c.DegradedFields),
	)
	return &c, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM comparisons WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("comparison deleted", "id", id)
	return nil
}

func (r *repo) loadDocumentText(ctx context.Context, id uuid.UUID) (string, error) {
	doc, err := r.docs.Find(ctx, id)
	if err != nil {
		return "", fmt.Errorf("find document %s: %w", id, err)
	}

	rc, err := r.storage.Download(ctx, doc.StorageKey)
	if err != nil {
		return "", fmt.Errorf("download document %s: %w", id, err)
	}
	defer rc.Close()

	text, err := loader.LoadReader(rc, doc.Filename)
	if err != nil {
		return "", fmt.Errorf("load document %s: %w", id, err)
	}

	return text, nil
}

func buildUpsertArgs(
	doc1ID, doc2ID uuid.UUID,
	state *workflow.ComparisonState,
	agent gaconfig.AgentConfig,
) ([]any, error) {
	args := []any{doc1ID, doc2ID}

	for _, field := range []struct {
		name   string
		result workflow.StageResult
	}{
		{"structural_comparison", state.StructuralComparison},
		{"semantic_comparison", state.SemanticComparison},
		{"final_comparison", state.FinalComparison},
		{"risk_analysis", state.RiskAnalysis},
	} {
		encoded, err := json.Marshal(field.result)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", field.name, err)
		}
		args = append(args, encoded)
	}

	degraded, err := json.Marshal(state.DegradedFields())
	if err != nil {
		return nil, fmt.Errorf("marshal degraded_fields: %w", err)
	}

	args = append(args, state.Summary, degraded, agent.Model.Name, agent.Provider.Name)
	return args, nil
}
