// Package query holds the validated search request value.
package query

import (
	"fmt"

	"github.com/kailas-cloud/attiodex/internal/domain/resource"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength = 2048
	DefaultLimit   = 20
	MaxLimit       = 100
)

// Query is a validated search request. Immutable for the duration of one
// search call.
type Query struct {
	raw      string
	resource resource.Type
	limit    int
	offset   int
}

// New validates and normalizes search parameters. The raw query may be blank
// or whitespace-only; that case is meaningful downstream (legacy single-field
// fallback), so it is preserved verbatim rather than rejected or trimmed.
func New(raw string, rt resource.Type, limit, offset int) (Query, error) {
	if len(raw) > MaxQueryLength {
		return Query{}, fmt.Errorf("query too long (max %d chars)", MaxQueryLength)
	}
	if _, err := resource.Parse(string(rt)); err != nil {
		return Query{}, err
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Query{raw: raw, resource: rt, limit: limit, offset: offset}, nil
}

// Raw returns the query text exactly as received.
func (q Query) Raw() string { return q.raw }

// Resource returns the target resource type.
func (q Query) Resource() resource.Type { return q.resource }

// Limit returns the maximum results to return.
func (q Query) Limit() int { return q.limit }

// Offset returns the pagination offset.
func (q Query) Offset() int { return q.offset }
