package search

import (
	"context"

	"github.com/kailas-cloud/attiodex/internal/domain/record"
	"github.com/kailas-cloud/attiodex/internal/domain/resource"
	"github.com/kailas-cloud/attiodex/internal/domain/search/filter"
)

// Repository defines the remote-store contract for search operations.
// One call is one records-query POST; the repository owns transport
// concerns (auth, timeouts) but no retry policy.
type Repository interface {
	QueryRecords(
		ctx context.Context, rt resource.Type,
		f filter.Node, limit, offset int,
	) ([]record.Record, error)
}
