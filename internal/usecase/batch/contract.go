package batch

import (
	"context"

	"github.com/kailas-cloud/attiodex/internal/domain/record"
	"github.com/kailas-cloud/attiodex/internal/domain/search/query"
)

// Searcher is the consumer interface for running one search (ISP).
type Searcher interface {
	Search(ctx context.Context, q query.Query) ([]record.Record, error)
}
