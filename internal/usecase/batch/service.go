// Package batch fans independent searches out over a bounded worker pool.
// Item failures are isolated: one bad query never aborts its siblings, and
// results come back in submission order regardless of completion order.
package batch

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/kailas-cloud/attiodex/internal/domain"
	dombatch "github.com/kailas-cloud/attiodex/internal/domain/batch"
	"github.com/kailas-cloud/attiodex/internal/domain/record"
	"github.com/kailas-cloud/attiodex/internal/domain/resource"
	"github.com/kailas-cloud/attiodex/internal/domain/search/query"
)

// Pool and batch size defaults.
const (
	DefaultConcurrency = 5
	DefaultMaxItems    = 25
)

// SearchOutcome pairs one item's status with its records.
type SearchOutcome struct {
	Outcome dombatch.Result
	Records []record.Record
}

// Service runs batch searches over a shared worker pool.
type Service struct {
	searcher Searcher
	pool     *ants.Pool
	maxItems int
}

// New creates the batch service with a pool of the given size. Non-positive
// arguments fall back to the defaults.
func New(searcher Searcher, concurrency, maxItems int) (*Service, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}

	pool, err := ants.NewPool(concurrency)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	return &Service{searcher: searcher, pool: pool, maxItems: maxItems}, nil
}

// Release shuts the worker pool down. The service must not be used after.
func (s *Service) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}

// SearchAll runs every query against one resource type concurrently. The
// returned slice is index-aligned with the input; per-item errors land in the
// item's outcome, only batch-level misuse returns an error.
func (s *Service) SearchAll(
	ctx context.Context, rt resource.Type, queries []string, limit int,
) ([]SearchOutcome, error) {
	if s.searcher == nil {
		return nil, domain.ErrNotInitialized
	}
	if len(queries) == 0 {
		return nil, fmt.Errorf("%w: batch is empty", domain.ErrInvalidInput)
	}
	if len(queries) > s.maxItems {
		return nil, fmt.Errorf("%w: batch of %d exceeds the maximum of %d",
			domain.ErrInvalidInput, len(queries), s.maxItems)
	}

	outcomes := make([]SearchOutcome, len(queries))
	var wg sync.WaitGroup

	for i, raw := range queries {
		wg.Add(1)
		job := func() {
			defer wg.Done()
			outcomes[i] = s.searchOne(ctx, rt, i, raw, limit)
		}
		if err := s.pool.Submit(job); err != nil {
			// Pool released mid-flight; fail the item, not the batch.
			outcomes[i] = SearchOutcome{Outcome: dombatch.NewError(i, raw, err)}
			wg.Done()
		}
	}
	wg.Wait()

	return outcomes, nil
}

func (s *Service) searchOne(
	ctx context.Context, rt resource.Type, index int, raw string, limit int,
) SearchOutcome {
	q, err := query.New(raw, rt, limit, 0)
	if err != nil {
		return SearchOutcome{Outcome: dombatch.NewError(index, raw, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err))}
	}

	records, err := s.searcher.Search(ctx, q)
	if err != nil {
		return SearchOutcome{Outcome: dombatch.NewError(index, raw, err)}
	}
	return SearchOutcome{Outcome: dombatch.NewOK(index, raw), Records: records}
}
