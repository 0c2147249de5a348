package comparisons

import (
	"context"

	"github.com/google/uuid"

	"github.com/redlinehq/redline/pkg/pagination"
)

// System defines the public contract for comparison domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Comparison], error)

	Find(ctx context.Context, id uuid.UUID) (*Comparison, error)
	FindByDocuments(ctx context.Context, doc1ID, doc2ID uuid.UUID) (*Comparison, error)
	Compare(ctx context.Context, doc1ID, doc2ID uuid.UUID) (*Comparison, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
