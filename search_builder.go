package attiodex

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/attiodex/internal/domain/resource"
	"github.com/kailas-cloud/attiodex/internal/domain/search/query"
)

// SearchBuilder is a fluent builder for one search call.
type SearchBuilder struct {
	client   *Client
	resource string

	query  string
	limit  int
	offset int
}

// Query sets the free-text query: words, an email address, a phone number,
// or a mix.
func (b *SearchBuilder) Query(q string) *SearchBuilder {
	b.query = q
	return b
}

// Limit sets the maximum number of results (default 20, max 100).
func (b *SearchBuilder) Limit(n int) *SearchBuilder {
	b.limit = n
	return b
}

// Offset sets the pagination offset.
func (b *SearchBuilder) Offset(n int) *SearchBuilder {
	b.offset = n
	return b
}

// Do executes the search.
func (b *SearchBuilder) Do(ctx context.Context) ([]Record, error) {
	rt, err := resource.Parse(b.resource)
	if err != nil {
		return nil, fmt.Errorf("attiodex: %w", err)
	}
	q, err := query.New(b.query, rt, b.limit, b.offset)
	if err != nil {
		return nil, fmt.Errorf("attiodex: %w", err)
	}

	records, err := b.client.searchSvc.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("attiodex: %w", err)
	}
	return toPublicRecords(records), nil
}

// BatchSearch runs several queries against one resource type concurrently.
// The returned slice is query-aligned; per-item failures land in the item.
func (c *Client) BatchSearch(ctx context.Context, resourceSlug string, queries []string, limit int) ([]BatchItem, error) {
	rt, err := resource.Parse(resourceSlug)
	if err != nil {
		return nil, fmt.Errorf("attiodex: %w", err)
	}

	outcomes, err := c.batchSvc.SearchAll(ctx, rt, queries, limit)
	if err != nil {
		return nil, fmt.Errorf("attiodex: %w", err)
	}

	items := make([]BatchItem, len(outcomes))
	for i, out := range outcomes {
		items[i] = BatchItem{
			Query:   out.Outcome.Ref(),
			Records: toPublicRecords(out.Records),
			Err:     out.Outcome.Err(),
		}
	}
	return items, nil
}
